package suggest

import (
	"reflect"
	"testing"

	"github.com/blackwell-systems/funnelscout/internal/catalog"
	"github.com/blackwell-systems/funnelscout/internal/intent"
)

func TestSuggest_OrderAndLimit(t *testing.T) {
	e := NewDefaultEngine()

	for _, goal := range allGoals {
		got := e.Suggest(intent.UserIntent{Goal: goal})
		if len(got) != DefaultTuning().MaxSuggestions {
			t.Fatalf("goal %q: got %d suggestions, want %d", goal, len(got), DefaultTuning().MaxSuggestions)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Score > got[i-1].Score {
				t.Errorf("goal %q: suggestions not in descending order: %d before %d",
					goal, got[i-1].Score, got[i].Score)
			}
		}
	}
}

func TestSuggest_StableTieBreak(t *testing.T) {
	// With no intent signals every template scores zero, so the ranking
	// must preserve catalog order exactly.
	e := NewDefaultEngine()
	got := e.Suggest(intent.UserIntent{})

	all := catalog.All()
	for i, s := range got {
		if s.Score != 0 {
			t.Errorf("suggestion %d: score = %d, want 0", i, s.Score)
		}
		if s.Template.ID != all[i].ID {
			t.Errorf("suggestion %d: id = %s, want catalog order %s", i, s.Template.ID, all[i].ID)
		}
	}
}

func TestSuggest_AlternativesAreNextRanked(t *testing.T) {
	e := NewDefaultEngine()
	got := e.Suggest(intent.Detect("I want to build my email list"))

	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(got))
	}
	wantAlts := []string{got[1].Template.ID, got[2].Template.ID}
	var gotAlts []string
	for _, alt := range got[0].Alternatives {
		gotAlts = append(gotAlts, alt.ID)
	}
	if !reflect.DeepEqual(gotAlts, wantAlts) {
		t.Errorf("alternatives = %v, want %v", gotAlts, wantAlts)
	}
	for i, s := range got[1:] {
		if len(s.Alternatives) != 0 {
			t.Errorf("suggestion %d carries alternatives; only the top entry should", i+1)
		}
	}
}

func TestSuggest_Deterministic(t *testing.T) {
	e := NewDefaultEngine()
	in := intent.Detect("I am hosting a webinar to sell my $997 course")

	first := e.Suggest(in)
	for i := 0; i < 5; i++ {
		if again := e.Suggest(in); !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestSuggestText_EmailListScenario(t *testing.T) {
	e := NewDefaultEngine()
	got := e.SuggestText("I want to build my email list")

	if got[0].Template.ID != "lead-magnet-basic" {
		t.Fatalf("top suggestion = %s, want lead-magnet-basic", got[0].Template.ID)
	}
	if got[0].Score <= 30 {
		t.Errorf("top score = %d, want > 30", got[0].Score)
	}
	if got[0].Reason == "" {
		t.Error("top suggestion has empty reason")
	}
	if len(got[0].Alternatives) != 2 {
		t.Errorf("got %d alternatives, want 2", len(got[0].Alternatives))
	}
}

func TestSuggestText_WebinarCourseScenario(t *testing.T) {
	e := NewDefaultEngine()
	got := e.SuggestText("I am hosting a webinar to sell my $997 course")

	if got[0].Template.ID != "webinar-basic" {
		t.Fatalf("top suggestion = %s, want webinar-basic", got[0].Template.ID)
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("webinar score %d does not beat runner-up %d", got[0].Score, got[1].Score)
	}
}

func TestSuggestText_GarbageInputStillRanks(t *testing.T) {
	e := NewDefaultEngine()
	for _, text := range []string{"", "asdf qwerty zxcv", "!!!???"} {
		got := e.SuggestText(text)
		if len(got) == 0 {
			t.Errorf("SuggestText(%q) returned no suggestions", text)
		}
	}
}

func TestSuggest_SmallCatalog(t *testing.T) {
	// Fewer templates than MaxSuggestions: return what exists, and the
	// single alternative is the second entry.
	two := catalog.All()[:2]
	e := NewEngine(two, DefaultTuning())

	got := e.Suggest(intent.UserIntent{Goal: intent.GoalBuildEmailList})
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if len(got[0].Alternatives) != 1 {
		t.Fatalf("got %d alternatives, want 1", len(got[0].Alternatives))
	}
	if got[0].Alternatives[0].ID != got[1].Template.ID {
		t.Errorf("alternative = %s, want %s", got[0].Alternatives[0].ID, got[1].Template.ID)
	}
}

func TestSuggest_EmptyCatalog(t *testing.T) {
	e := NewEngine(nil, DefaultTuning())
	if got := e.Suggest(intent.UserIntent{Goal: intent.GoalWebinar}); len(got) != 0 {
		t.Errorf("got %d suggestions from empty catalog, want 0", len(got))
	}
}

func TestSuggest_CustomTuningLimit(t *testing.T) {
	tn := DefaultTuning()
	tn.MaxSuggestions = 5
	tn.MaxAlternatives = 4
	e := NewEngine(catalog.All(), tn)

	got := e.Suggest(intent.UserIntent{Goal: intent.GoalSellProduct})
	if len(got) != 5 {
		t.Fatalf("got %d suggestions, want 5", len(got))
	}
	if len(got[0].Alternatives) != 4 {
		t.Errorf("got %d alternatives, want 4", len(got[0].Alternatives))
	}
}
