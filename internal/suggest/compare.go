package suggest

import (
	"fmt"

	"github.com/blackwell-systems/funnelscout/internal/catalog"
)

// complexityRank orders complexity tiers for comparison.
var complexityRank = map[catalog.Complexity]int{
	catalog.ComplexitySimple:   0,
	catalog.ComplexityMedium:   1,
	catalog.ComplexityAdvanced: 2,
}

// bestForUseCases is how many of a template's own suggested use cases are
// always carried into its comparison best-for list.
const bestForUseCases = 2

// Compare produces a structured diff of two templates. Returns nil when
// either id is not in the catalog; callers must treat nil as "not found".
func (e *Engine) Compare(id1, id2 string) *TemplateComparison {
	t1 := e.byID(id1)
	t2 := e.byID(id2)
	if t1 == nil || t2 == nil {
		return nil
	}

	cmp := &TemplateComparison{
		Template1: *t1,
		Template2: *t2,
	}

	if t1.Complexity != t2.Complexity {
		cmp.Differences = append(cmp.Differences, fmt.Sprintf(
			"Complexity: %s is %s, %s is %s",
			t1.Name, t1.Complexity, t2.Name, t2.Complexity,
		))
		if complexityRank[t1.Complexity] < complexityRank[t2.Complexity] {
			cmp.BestForTemplate1 = append(cmp.BestForTemplate1, "Beginner-friendly setup")
		} else {
			cmp.BestForTemplate2 = append(cmp.BestForTemplate2, "Beginner-friendly setup")
		}
	}

	m1, ok1 := catalog.SetupMinutes(t1.EstimatedSetupTime)
	m2, ok2 := catalog.SetupMinutes(t2.EstimatedSetupTime)
	if ok1 && ok2 && m1 != m2 {
		cmp.Differences = append(cmp.Differences, fmt.Sprintf(
			"Setup time: %s needs %s, %s needs %s",
			t1.Name, t1.EstimatedSetupTime, t2.Name, t2.EstimatedSetupTime,
		))
		if m1 < m2 {
			cmp.BestForTemplate1 = append(cmp.BestForTemplate1, "Faster launch")
		} else {
			cmp.BestForTemplate2 = append(cmp.BestForTemplate2, "Faster launch")
		}
	}

	if t1.ConversionRate != t2.ConversionRate {
		cmp.Differences = append(cmp.Differences, fmt.Sprintf(
			"Conversion rate: %s averages %d%%, %s averages %d%%",
			t1.Name, t1.ConversionRate, t2.Name, t2.ConversionRate,
		))
		if t1.ConversionRate > t2.ConversionRate {
			cmp.BestForTemplate1 = append(cmp.BestForTemplate1, "Higher conversion benchmark")
		} else {
			cmp.BestForTemplate2 = append(cmp.BestForTemplate2, "Higher conversion benchmark")
		}
	}

	if len(t1.Steps) != len(t2.Steps) {
		cmp.Differences = append(cmp.Differences, fmt.Sprintf(
			"Funnel length: %s has %d pages, %s has %d pages",
			t1.Name, len(t1.Steps), t2.Name, len(t2.Steps),
		))
		if len(t1.Steps) < len(t2.Steps) {
			cmp.BestForTemplate1 = append(cmp.BestForTemplate1, "Simpler funnel flow")
		} else {
			cmp.BestForTemplate2 = append(cmp.BestForTemplate2, "Simpler funnel flow")
		}
	}

	if t1.Category != t2.Category {
		cmp.Differences = append(cmp.Differences, fmt.Sprintf(
			"Category: %s is %s, %s is %s",
			t1.Name, t1.Category, t2.Name, t2.Category,
		))
	}

	cmp.BestForTemplate1 = append(cmp.BestForTemplate1, firstN(t1.SuggestedFor, bestForUseCases)...)
	cmp.BestForTemplate2 = append(cmp.BestForTemplate2, firstN(t2.SuggestedFor, bestForUseCases)...)

	return cmp
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
