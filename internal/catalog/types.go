// Package catalog provides the static funnel template catalog and lookups.
package catalog

// Category classifies a template by the kind of funnel it builds.
type Category string

// The six template categories.
const (
	CategoryLeadGen       Category = "lead-gen"
	CategoryProductLaunch Category = "product-launch"
	CategoryWebinar       Category = "webinar"
	CategoryEcommerce     Category = "ecommerce"
	CategoryMembership    Category = "membership"
	CategorySummit        Category = "summit"
)

// Complexity describes how involved a template is to configure.
type Complexity string

// Complexity tiers from easiest to hardest.
const (
	ComplexitySimple   Complexity = "simple"
	ComplexityMedium   Complexity = "medium"
	ComplexityAdvanced Complexity = "advanced"
)

// Step is a single page in a template's funnel flow.
type Step struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// Template is an immutable funnel blueprint. Templates are defined once in
// this package and never mutated; callers treat them as read-only.
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`

	// Complexity is one of simple, medium, advanced.
	Complexity Complexity `json:"complexity"`

	// ConversionRate is the benchmark conversion percentage (10-60).
	ConversionRate int `json:"conversion_rate"`

	// EstimatedSetupTime is a human-readable duration, e.g. "45 minutes"
	// or "2 hours". Use SetupMinutes to get a comparable number.
	EstimatedSetupTime string `json:"estimated_setup_time"`

	Tags         []string `json:"tags"`
	SuggestedFor []string `json:"suggested_for"`
	Steps        []Step   `json:"steps"`
}
