package suggest

import (
	"sort"

	"github.com/blackwell-systems/funnelscout/internal/intent"
)

// Suggest scores every template against the intent, sorts descending by
// score, and returns the top suggestions. The sort is stable, so equal
// scores keep catalog order. The top suggestion carries the next-ranked
// templates as alternatives.
func (e *Engine) Suggest(in intent.UserIntent) []TemplateSuggestion {
	suggestions := make([]TemplateSuggestion, 0, len(e.templates))
	for _, t := range e.templates {
		suggestions = append(suggestions, TemplateSuggestion{
			Template: t,
			Score:    ScoreTemplate(t, in, e.tuning),
			Reason:   Reason(t, in),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	limit := e.tuning.MaxSuggestions
	if limit <= 0 || limit > len(suggestions) {
		limit = len(suggestions)
	}
	top := suggestions[:limit]

	if len(top) > 0 {
		for _, alt := range top[1:] {
			if len(top[0].Alternatives) >= e.tuning.MaxAlternatives {
				break
			}
			top[0].Alternatives = append(top[0].Alternatives, alt.Template)
		}
	}

	return top
}
