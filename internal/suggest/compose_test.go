package suggest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestRecommend_EmailList(t *testing.T) {
	e := NewDefaultEngine()
	rec := e.Recommend("I want to build my email list")

	if rec.Primary.Template.ID != "lead-magnet-basic" {
		t.Fatalf("primary = %s, want lead-magnet-basic", rec.Primary.Template.ID)
	}
	if len(rec.Alternatives) != 2 {
		t.Fatalf("got %d alternatives, want 2", len(rec.Alternatives))
	}

	if !strings.Contains(rec.Explanation, "Classic Lead Magnet") {
		t.Errorf("explanation does not name the template: %q", rec.Explanation)
	}
	if !strings.Contains(rec.Explanation, rec.Primary.Reason) {
		t.Errorf("explanation does not embed the reason: %q", rec.Explanation)
	}
	want := fmt.Sprintf("This %s funnel has %d pages and typically takes %s to set up.",
		rec.Primary.Template.Complexity, len(rec.Primary.Template.Steps), rec.Primary.Template.EstimatedSetupTime)
	if !strings.HasSuffix(rec.Explanation, want) {
		t.Errorf("explanation = %q, want suffix %q", rec.Explanation, want)
	}
}

func TestRecommend_NextSteps(t *testing.T) {
	e := NewDefaultEngine()
	rec := e.Recommend("I want to build my email list") // 3-page template

	steps := rec.NextSteps
	if len(steps) != 5 {
		t.Fatalf("got %d next steps, want 5: %v", len(steps), steps)
	}
	if steps[0] != "Review the 3-page funnel structure" {
		t.Errorf("step 0 = %q", steps[0])
	}
	first := rec.Primary.Template.Steps[0].Name
	if want := "Customize the copy on the " + first; steps[1] != want {
		t.Errorf("step 1 = %q, want %q", steps[1], want)
	}
	second := rec.Primary.Template.Steps[1].Name
	if want := "Set up the " + second; steps[2] != want {
		t.Errorf("step 2 = %q, want %q", steps[2], want)
	}
	if steps[len(steps)-1] != "Test the complete flow before driving traffic" {
		t.Errorf("last step = %q", steps[len(steps)-1])
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	e := NewDefaultEngine()
	text := "launching a new course to advanced marketers"

	first := e.Recommend(text)
	for i := 0; i < 3; i++ {
		if again := e.Recommend(text); !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestRecommend_GarbageInput(t *testing.T) {
	// Nothing detectable: every template scores zero, but ranking still
	// returns the top of the catalog rather than the fallback.
	e := NewDefaultEngine()
	rec := e.Recommend("zzz qqq")

	if rec.Primary.Template.ID == "" {
		t.Fatal("no primary template for undetectable input")
	}
	if rec.Explanation == "" || len(rec.NextSteps) == 0 {
		t.Error("recommendation missing explanation or next steps")
	}
}

func TestRecommend_EmptyCatalogFallback(t *testing.T) {
	e := NewEngine(nil, DefaultTuning())
	rec := e.Recommend("I want to build my email list")

	if rec.Primary.Template.ID != "" {
		t.Errorf("fallback primary = %q, want zero template", rec.Primary.Template.ID)
	}
	if len(rec.Alternatives) != 0 {
		t.Errorf("fallback has %d alternatives, want 0", len(rec.Alternatives))
	}
	if !strings.Contains(rec.Explanation, "could not match") {
		t.Errorf("fallback explanation = %q", rec.Explanation)
	}
	if len(rec.NextSteps) == 0 {
		t.Error("fallback has no next steps")
	}
}
