package suggest

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/funnelscout/internal/catalog"
	"github.com/blackwell-systems/funnelscout/internal/intent"
)

// allGoals enumerates every detectable goal, including unknown.
var allGoals = []intent.Goal{
	intent.GoalBuildEmailList, intent.GoalInteractiveLeadGen, intent.GoalProductLaunch,
	intent.GoalWebinar, intent.GoalSellProduct, intent.GoalMembership,
	intent.GoalSummit, intent.GoalUnknown,
}

func TestScoreTemplate_BoundsForAllPairs(t *testing.T) {
	tn := DefaultTuning()
	prices := []intent.PricePoint{"", intent.PriceLow, intent.PriceMedium, intent.PriceHigh}
	experiences := []intent.Experience{"", intent.ExperienceBeginner, intent.ExperienceIntermediate, intent.ExperienceAdvanced}
	timelines := []intent.Timeline{"", intent.TimelineQuick, intent.TimelineNormal, intent.TimelineComprehensive}

	for _, tmpl := range catalog.All() {
		for _, goal := range allGoals {
			for _, price := range prices {
				for _, exp := range experiences {
					for _, tl := range timelines {
						in := intent.UserIntent{
							Goal: goal, PricePoint: price, Experience: exp, Timeline: tl,
							Keywords: []string{"email", "quiz", "checkout"},
						}
						score := ScoreTemplate(tmpl, in, tn)
						if score < 0 || score > 100 {
							t.Fatalf("score %d outside [0,100] for template=%s goal=%s price=%s exp=%s tl=%s",
								score, tmpl.ID, goal, price, exp, tl)
						}
					}
				}
			}
		}
	}
}

func TestScoreTemplate_Deterministic(t *testing.T) {
	tn := DefaultTuning()
	in := intent.Detect("I want to build my email list quickly, I'm a beginner")
	for _, tmpl := range catalog.All() {
		a := ScoreTemplate(tmpl, in, tn)
		b := ScoreTemplate(tmpl, in, tn)
		if a != b {
			t.Errorf("%s: score not deterministic (%d vs %d)", tmpl.ID, a, b)
		}
	}
}

func TestScoreTemplate_GoalPoints(t *testing.T) {
	tn := DefaultTuning()
	in := intent.UserIntent{Goal: intent.GoalBuildEmailList}

	basic := *catalog.ByID("lead-magnet-basic")
	quiz := *catalog.ByID("lead-magnet-quiz")
	summit := *catalog.ByID("virtual-summit")

	if got := ScoreTemplate(basic, in, tn); got != 40 {
		t.Errorf("lead-magnet-basic = %d, want 40", got)
	}
	if got := ScoreTemplate(quiz, in, tn); got != 35 {
		t.Errorf("lead-magnet-quiz = %d, want 35", got)
	}
	if got := ScoreTemplate(summit, in, tn); got != 30 {
		t.Errorf("virtual-summit = %d, want 30", got)
	}
}

func TestScoreTemplate_ExperienceMatch(t *testing.T) {
	tn := DefaultTuning()
	simple := *catalog.ByID("lead-magnet-basic")  // simple
	medium := *catalog.ByID("lead-magnet-quiz")   // medium
	advanced := *catalog.ByID("membership-site")  // advanced

	tests := []struct {
		name string
		tmpl catalog.Template
		exp  intent.Experience
		want int
	}{
		{"beginner exact", simple, intent.ExperienceBeginner, tn.ExperienceExact},
		{"intermediate exact", medium, intent.ExperienceIntermediate, tn.ExperienceExact},
		{"advanced exact", advanced, intent.ExperienceAdvanced, tn.ExperienceExact},
		{"beginner to medium", medium, intent.ExperienceBeginner, tn.ExperienceNear},
		{"intermediate to simple", simple, intent.ExperienceIntermediate, tn.ExperienceStretch},
		{"beginner to advanced", advanced, intent.ExperienceBeginner, 0},
		{"advanced to simple", simple, intent.ExperienceAdvanced, 0},
		{"no experience", simple, "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := intent.UserIntent{Goal: intent.GoalUnknown, Experience: tc.exp}
			if got := ScoreTemplate(tc.tmpl, in, tn); got != tc.want {
				t.Errorf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreTemplate_TimelineMatch(t *testing.T) {
	tn := DefaultTuning()
	quick := *catalog.ByID("lead-magnet-basic") // 30 minutes
	hour := *catalog.ByID("lead-magnet-quiz")   // 60 minutes
	long := *catalog.ByID("virtual-summit")     // 6 hours

	tests := []struct {
		name string
		tmpl catalog.Template
		tl   intent.Timeline
		want int
	}{
		{"quick within 30", quick, intent.TimelineQuick, tn.TimelinePoints},
		{"quick rejects 60", hour, intent.TimelineQuick, 0},
		{"normal within 60", hour, intent.TimelineNormal, tn.TimelinePoints},
		{"normal rejects hours", long, intent.TimelineNormal, 0},
		{"comprehensive accepts anything", long, intent.TimelineComprehensive, tn.TimelinePoints},
		{"no timeline", quick, "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := intent.UserIntent{Goal: intent.GoalUnknown, Timeline: tc.tl}
			if got := ScoreTemplate(tc.tmpl, in, tn); got != tc.want {
				t.Errorf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreTemplate_PriceMembershipIsFlat(t *testing.T) {
	tn := DefaultTuning()
	webinar := *catalog.ByID("webinar-basic")

	in := intent.UserIntent{Goal: intent.GoalUnknown, PricePoint: intent.PriceHigh}
	if got := ScoreTemplate(webinar, in, tn); got != tn.PricePoints {
		t.Errorf("high-tier webinar = %d, want flat %d", got, tn.PricePoints)
	}

	in.PricePoint = intent.PriceLow
	if got := ScoreTemplate(webinar, in, tn); got != 0 {
		t.Errorf("low-tier webinar = %d, want 0", got)
	}
}

func TestScoreTemplate_KeywordOverlapCapped(t *testing.T) {
	tn := DefaultTuning()
	basic := *catalog.ByID("lead-magnet-basic") // tags: lead-magnet, email, opt-in, beginner

	// Three overlapping keywords, but only two may count.
	in := intent.UserIntent{
		Goal:     intent.GoalUnknown,
		Keywords: []string{"email", "lead-magnet", "opt-in"},
	}
	if got := ScoreTemplate(basic, in, tn); got != tn.KeywordCap {
		t.Errorf("score = %d, want cap %d", got, tn.KeywordCap)
	}

	// Substring in either direction counts: "mail" is a substring of the
	// "email" tag, and "email-marketing" contains it.
	in.Keywords = []string{"mail"}
	if got := ScoreTemplate(basic, in, tn); got != tn.KeywordPoints {
		t.Errorf("substring keyword = %d, want %d", got, tn.KeywordPoints)
	}
	in.Keywords = []string{"email-marketing"}
	if got := ScoreTemplate(basic, in, tn); got != tn.KeywordPoints {
		t.Errorf("superstring keyword = %d, want %d", got, tn.KeywordPoints)
	}
}

func TestScoreTemplate_Boosts(t *testing.T) {
	tn := DefaultTuning()
	webinar := *catalog.ByID("webinar-basic")
	shop := *catalog.ByID("ecommerce-simple")

	highTicket := intent.UserIntent{Goal: intent.GoalSellProduct, PricePoint: intent.PriceHigh}
	base := goalPointsFor(intent.GoalSellProduct, webinar.ID) + tn.PricePoints
	if got := ScoreTemplate(webinar, highTicket, tn); got != base+tn.WebinarHighTicketBoost {
		t.Errorf("high-ticket webinar = %d, want %d", got, base+tn.WebinarHighTicketBoost)
	}

	lowTicket := intent.UserIntent{Goal: intent.GoalSellProduct, PricePoint: intent.PriceLow}
	base = goalPointsFor(intent.GoalSellProduct, shop.ID) + tn.PricePoints
	if got := ScoreTemplate(shop, lowTicket, tn); got != base+tn.EcommerceLowTicketBoost {
		t.Errorf("low-ticket checkout = %d, want %d", got, base+tn.EcommerceLowTicketBoost)
	}

	// Boosts apply only to product-sale intents.
	webinarGoal := intent.UserIntent{Goal: intent.GoalWebinar, PricePoint: intent.PriceHigh}
	want := goalPointsFor(intent.GoalWebinar, webinar.ID) + tn.PricePoints
	if got := ScoreTemplate(webinar, webinarGoal, tn); got != want {
		t.Errorf("webinar goal = %d, want %d (no boost)", got, want)
	}
}

func goalPointsFor(g intent.Goal, id string) int {
	return goalPoints[g][id]
}

func TestReason_Components(t *testing.T) {
	basic := *catalog.ByID("lead-magnet-basic")

	in := intent.UserIntent{
		Goal:       intent.GoalBuildEmailList,
		Experience: intent.ExperienceBeginner,
		Timeline:   intent.TimelineQuick,
	}
	reason := Reason(basic, in)

	if !strings.Contains(reason, goalReasons[intent.GoalBuildEmailList]["lead-magnet-basic"]) {
		t.Errorf("reason missing goal sentence: %q", reason)
	}
	if !strings.Contains(reason, "experience level") {
		t.Errorf("reason missing experience note: %q", reason)
	}
	if !strings.Contains(reason, "30 minutes") {
		t.Errorf("reason missing setup note: %q", reason)
	}
	if !strings.Contains(reason, "45%") {
		t.Errorf("reason missing conversion callout: %q", reason)
	}
}

func TestReason_Fallback(t *testing.T) {
	shop := *catalog.ByID("ecommerce-simple") // 30% conversion, below callout

	in := intent.UserIntent{Goal: intent.GoalBuildEmailList}
	if got := Reason(shop, in); got != "Good match for build email list" {
		t.Errorf("fallback reason = %q", got)
	}
}

func TestReason_NeverEmpty(t *testing.T) {
	for _, tmpl := range catalog.All() {
		for _, goal := range allGoals {
			if r := Reason(tmpl, intent.UserIntent{Goal: goal}); r == "" {
				t.Errorf("empty reason for template=%s goal=%s", tmpl.ID, goal)
			}
		}
	}
}
