// Package suggest implements the template recommendation engine: scoring,
// ranking, comparison, and recommendation composition over the catalog.
package suggest

import (
	"github.com/blackwell-systems/funnelscout/internal/catalog"
)

// TemplateSuggestion pairs a template with its match score and a
// human-readable justification. Alternatives is populated only on the
// top-ranked suggestion.
type TemplateSuggestion struct {
	Template catalog.Template `json:"template"`

	// Score is 0-100, deterministic for a given (template, intent) pair.
	Score int `json:"score"`

	Reason       string             `json:"reason"`
	Alternatives []catalog.Template `json:"alternatives,omitempty"`
}

// Recommendation wraps the top suggestion with explanatory prose and an
// ordered list of next-step instructions for presentation to the user.
type Recommendation struct {
	Primary      TemplateSuggestion   `json:"primary"`
	Alternatives []TemplateSuggestion `json:"alternatives"`
	Explanation  string               `json:"explanation"`
	NextSteps    []string             `json:"next_steps"`
}

// TemplateComparison is a structured diff of two templates across
// complexity, setup time, conversion rate, page count, and category.
type TemplateComparison struct {
	Template1 catalog.Template `json:"template1"`
	Template2 catalog.Template `json:"template2"`

	// Differences holds one human-readable line per dimension that differs.
	Differences []string `json:"differences"`

	// BestForTemplate1 and BestForTemplate2 combine attribution lines from
	// numeric advantages with each template's own suggested use cases.
	BestForTemplate1 []string `json:"best_for_template1"`
	BestForTemplate2 []string `json:"best_for_template2"`
}

// Tuning holds the adjustable scoring constants. The values are tuning
// knobs rather than load-bearing business rules; DefaultTuning matches the
// shipped behavior and config can override individual knobs.
type Tuning struct {
	// ExperienceExact is awarded when complexity exactly matches the
	// stated experience tier.
	ExperienceExact int `json:"experience_exact"`

	// ExperienceNear is awarded for a beginner looking at a medium template.
	ExperienceNear int `json:"experience_near"`

	// ExperienceStretch is awarded for an intermediate looking at a simple
	// template.
	ExperienceStretch int `json:"experience_stretch"`

	// TimelinePoints is awarded when the setup time fits the stated timeline.
	TimelinePoints int `json:"timeline_points"`

	// PricePoints is awarded flat when the template belongs to the
	// detected price tier.
	PricePoints int `json:"price_points"`

	// KeywordPoints is awarded per keyword/tag overlap, capped at KeywordCap.
	KeywordPoints int `json:"keyword_points"`
	KeywordCap    int `json:"keyword_cap"`

	// WebinarHighTicketBoost is the extra credit for a high-ticket product
	// sale matched against the webinar template.
	WebinarHighTicketBoost int `json:"webinar_high_ticket_boost"`

	// EcommerceLowTicketBoost is the extra credit for a low-ticket product
	// sale matched against the simple checkout template.
	EcommerceLowTicketBoost int `json:"ecommerce_low_ticket_boost"`

	// MaxSuggestions is how many ranked suggestions Suggest returns.
	MaxSuggestions int `json:"max_suggestions"`

	// MaxAlternatives is how many alternative templates attach to the top
	// suggestion.
	MaxAlternatives int `json:"max_alternatives"`
}

// DefaultTuning returns the shipped scoring constants.
func DefaultTuning() Tuning {
	return Tuning{
		ExperienceExact:         20,
		ExperienceNear:          10,
		ExperienceStretch:       15,
		TimelinePoints:          15,
		PricePoints:             15,
		KeywordPoints:           5,
		KeywordCap:              10,
		WebinarHighTicketBoost:  20,
		EcommerceLowTicketBoost: 10,
		MaxSuggestions:          3,
		MaxAlternatives:         2,
	}
}
