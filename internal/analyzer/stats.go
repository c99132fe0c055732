// Package analyzer computes aggregate statistics over the template catalog.
package analyzer

import (
	"github.com/blackwell-systems/funnelscout/internal/catalog"
)

// CatalogStats summarizes the template catalog for the stats command.
type CatalogStats struct {
	TotalTemplates int `json:"total_templates"`

	// ByCategory and ByComplexity map each value to its template count.
	ByCategory   map[catalog.Category]int   `json:"by_category"`
	ByComplexity map[catalog.Complexity]int `json:"by_complexity"`

	AvgConversionRate float64 `json:"avg_conversion_rate"`
	MinConversionRate int     `json:"min_conversion_rate"`
	MaxConversionRate int     `json:"max_conversion_rate"`

	AvgSetupMinutes float64 `json:"avg_setup_minutes"`
	MinSetupMinutes int     `json:"min_setup_minutes"`
	MaxSetupMinutes int     `json:"max_setup_minutes"`

	AvgStepCount float64 `json:"avg_step_count"`

	// Counts under the configured filter thresholds.
	BeginnerCount       int `json:"beginner_count"`
	QuickCount          int `json:"quick_count"`
	HighConvertingCount int `json:"high_converting_count"`
}

// AnalyzeCatalog computes catalog statistics using the given filter
// thresholds for the quick and high-converting counts.
func AnalyzeCatalog(templates []catalog.Template, quickMaxMinutes, highConversionRate int) CatalogStats {
	stats := CatalogStats{
		TotalTemplates: len(templates),
		ByCategory:     make(map[catalog.Category]int),
		ByComplexity:   make(map[catalog.Complexity]int),
	}

	if len(templates) == 0 {
		return stats
	}

	var totalConversion, totalSteps, totalMinutes, timedCount int
	stats.MinConversionRate = templates[0].ConversionRate
	stats.MaxConversionRate = templates[0].ConversionRate

	for _, t := range templates {
		stats.ByCategory[t.Category]++
		stats.ByComplexity[t.Complexity]++

		totalConversion += t.ConversionRate
		if t.ConversionRate < stats.MinConversionRate {
			stats.MinConversionRate = t.ConversionRate
		}
		if t.ConversionRate > stats.MaxConversionRate {
			stats.MaxConversionRate = t.ConversionRate
		}
		if t.ConversionRate >= highConversionRate {
			stats.HighConvertingCount++
		}

		totalSteps += len(t.Steps)

		if m, ok := catalog.SetupMinutes(t.EstimatedSetupTime); ok {
			totalMinutes += m
			timedCount++
			if stats.MinSetupMinutes == 0 || m < stats.MinSetupMinutes {
				stats.MinSetupMinutes = m
			}
			if m > stats.MaxSetupMinutes {
				stats.MaxSetupMinutes = m
			}
			if m <= quickMaxMinutes {
				stats.QuickCount++
			}
		}

		if t.Complexity == catalog.ComplexitySimple {
			stats.BeginnerCount++
		}
	}

	n := float64(len(templates))
	stats.AvgConversionRate = float64(totalConversion) / n
	stats.AvgStepCount = float64(totalSteps) / n
	if timedCount > 0 {
		stats.AvgSetupMinutes = float64(totalMinutes) / float64(timedCount)
	}

	return stats
}
