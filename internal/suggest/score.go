package suggest

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/funnelscout/internal/catalog"
	"github.com/blackwell-systems/funnelscout/internal/intent"
)

// highConversionCallout is the benchmark rate at or above which the reason
// text calls out the conversion rate.
const highConversionCallout = 40

// ScoreTemplate computes the 0-100 match score for one template against
// one intent. It is a pure function: identical inputs always produce the
// same score. The rubric is additive (goal, experience, timeline, price,
// keywords, boosts) and clamped at 100.
func ScoreTemplate(t catalog.Template, in intent.UserIntent, tn Tuning) int {
	score := goalPoints[in.Goal][t.ID]
	score += experiencePoints(t.Complexity, in.Experience, tn)
	if timelineSatisfied(t, in.Timeline) {
		score += tn.TimelinePoints
	}
	if priceTierTemplates[in.PricePoint][t.ID] {
		score += tn.PricePoints
	}
	score += keywordPoints(t, in.Keywords, tn)
	score += boostPoints(t, in, tn)

	if score > 100 {
		score = 100
	}
	return score
}

// experienceExact reports whether the template's complexity is the exact
// fit for the stated experience tier.
func experienceExact(c catalog.Complexity, exp intent.Experience) bool {
	switch exp {
	case intent.ExperienceBeginner:
		return c == catalog.ComplexitySimple
	case intent.ExperienceIntermediate:
		return c == catalog.ComplexityMedium
	case intent.ExperienceAdvanced:
		return c == catalog.ComplexityAdvanced
	default:
		return false
	}
}

// experiencePoints scores how well the template's complexity fits the
// stated experience tier. An exact fit scores highest; a beginner can
// stretch to medium, and an intermediate finds simple templates easy.
func experiencePoints(c catalog.Complexity, exp intent.Experience, tn Tuning) int {
	switch {
	case experienceExact(c, exp):
		return tn.ExperienceExact
	case exp == intent.ExperienceBeginner && c == catalog.ComplexityMedium:
		return tn.ExperienceNear
	case exp == intent.ExperienceIntermediate && c == catalog.ComplexitySimple:
		return tn.ExperienceStretch
	default:
		return 0
	}
}

// timelineSatisfied reports whether the template's setup time fits the
// stated timeline. A comprehensive timeline never penalizes long setups.
func timelineSatisfied(t catalog.Template, tl intent.Timeline) bool {
	switch tl {
	case intent.TimelineQuick:
		m, ok := catalog.SetupMinutes(t.EstimatedSetupTime)
		return ok && m <= 30
	case intent.TimelineNormal:
		m, ok := catalog.SetupMinutes(t.EstimatedSetupTime)
		return ok && m <= 60
	case intent.TimelineComprehensive:
		return true
	default:
		return false
	}
}

// keywordPoints awards credit for each intent keyword that overlaps a
// template tag in either direction (substring or superstring), capped.
func keywordPoints(t catalog.Template, keywords []string, tn Tuning) int {
	points := 0
	for _, kw := range keywords {
		if points >= tn.KeywordCap {
			break
		}
		for _, tag := range t.Tags {
			if strings.Contains(tag, kw) || strings.Contains(kw, tag) {
				points += tn.KeywordPoints
				break
			}
		}
	}
	if points > tn.KeywordCap {
		points = tn.KeywordCap
	}
	return points
}

// boostPoints applies the two hard-coded rubric exceptions: webinars are
// unusually effective for high-ticket product sales, and the simple
// checkout shines for low-ticket impulse buys.
func boostPoints(t catalog.Template, in intent.UserIntent, tn Tuning) int {
	if in.Goal != intent.GoalSellProduct {
		return 0
	}
	if in.PricePoint == intent.PriceHigh && t.ID == "webinar-basic" {
		return tn.WebinarHighTicketBoost
	}
	if in.PricePoint == intent.PriceLow && t.ID == "ecommerce-simple" {
		return tn.EcommerceLowTicketBoost
	}
	return 0
}

// Reason builds the human-readable justification for a (template, intent)
// pair. It mirrors the scoring rubric: a goal-specific sentence, an
// experience note when complexity matches the stated tier, a setup-time
// note when the timeline fits, and a conversion callout for strong
// benchmarks. Falls back to a generic line when nothing applies.
func Reason(t catalog.Template, in intent.UserIntent) string {
	var parts []string

	if sentence, ok := goalReasons[in.Goal][t.ID]; ok {
		parts = append(parts, sentence)
	}

	if experienceExact(t.Complexity, in.Experience) {
		parts = append(parts, fmt.Sprintf("The %s build suits your %s experience level.", t.Complexity, in.Experience))
	}

	if in.Timeline != "" && timelineSatisfied(t, in.Timeline) {
		parts = append(parts, fmt.Sprintf("Setup takes about %s, within your timeline.", t.EstimatedSetupTime))
	}

	if t.ConversionRate >= highConversionCallout {
		parts = append(parts, fmt.Sprintf("Its %d%% benchmark conversion rate is among the strongest in the catalog.", t.ConversionRate))
	}

	if len(parts) == 0 {
		return "Good match for " + strings.ReplaceAll(string(in.Goal), "-", " ")
	}
	return strings.Join(parts, " ")
}
