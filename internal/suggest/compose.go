package suggest

import "fmt"

// fallbackScore is the score assigned to the defensive default
// recommendation when ranking produced nothing.
const fallbackScore = 50

// Recommend detects the intent behind text and composes a full
// recommendation: the top suggestion with explanatory prose, the remaining
// ranked suggestions as alternatives, and ordered next steps. With a
// non-empty catalog ranking always yields a result, but an empty result is
// still handled with a hard-coded fallback.
func (e *Engine) Recommend(text string) Recommendation {
	suggestions := e.SuggestText(text)
	if len(suggestions) == 0 {
		return e.fallbackRecommendation()
	}

	primary := suggestions[0]
	t := primary.Template

	return Recommendation{
		Primary:      primary,
		Alternatives: suggestions[1:],
		Explanation: fmt.Sprintf(
			"Based on your goals, the %s template is your best fit. %s This %s funnel has %d pages and typically takes %s to set up.",
			t.Name, primary.Reason, t.Complexity, len(t.Steps), t.EstimatedSetupTime,
		),
		NextSteps: nextSteps(primary),
	}
}

// nextSteps builds the ordered launch checklist for a suggestion.
func nextSteps(s TemplateSuggestion) []string {
	t := s.Template

	steps := []string{
		fmt.Sprintf("Review the %d-page funnel structure", len(t.Steps)),
	}
	if len(t.Steps) > 0 {
		steps = append(steps, fmt.Sprintf("Customize the copy on the %s", t.Steps[0].Name))
	}
	if len(t.Steps) > 2 {
		steps = append(steps, fmt.Sprintf("Set up the %s", t.Steps[1].Name))
	}
	steps = append(steps,
		"Configure your brand colors and styling",
		"Test the complete flow before driving traffic",
	)
	return steps
}

// fallbackRecommendation points at the first catalog entry with a neutral
// score. Reachable only with an empty suggestion list.
func (e *Engine) fallbackRecommendation() Recommendation {
	rec := Recommendation{
		Explanation: "We could not match your goal to a specific template, so start with a versatile option and adjust from there.",
		NextSteps: []string{
			"Browse the template catalog",
			"Pick the template closest to your goal",
			"Test the complete flow before driving traffic",
		},
	}

	if len(e.templates) > 0 {
		first := e.templates[0]
		rec.Primary = TemplateSuggestion{
			Template: first,
			Score:    fallbackScore,
			Reason:   "A flexible starting point that works for most goals.",
		}
		rec.Explanation = fmt.Sprintf(
			"We could not match your goal to a specific template, so start with the versatile %s template and adjust from there.",
			first.Name,
		)
		rec.NextSteps = nextSteps(rec.Primary)
	}

	return rec
}
