// Package intent parses free-text user goals into a structured UserIntent.
package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Goal is the primary objective detected from the user's text.
type Goal string

// Detectable goals. GoalUnknown is returned when no goal keywords match.
const (
	GoalBuildEmailList     Goal = "build-email-list"
	GoalInteractiveLeadGen Goal = "interactive-lead-gen"
	GoalProductLaunch      Goal = "product-launch"
	GoalWebinar            Goal = "webinar"
	GoalSellProduct        Goal = "sell-product"
	GoalMembership         Goal = "membership"
	GoalSummit             Goal = "summit"
	GoalUnknown            Goal = "unknown"
)

// PricePoint buckets the price the user mentioned, if any.
type PricePoint string

// Price tiers. The empty string means no price signal was found.
const (
	PriceLow    PricePoint = "low"
	PriceMedium PricePoint = "medium"
	PriceHigh   PricePoint = "high"
)

// Experience is the user's self-described skill level, if stated.
type Experience string

// Experience tiers. The empty string means no experience signal was found.
const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Timeline is how fast the user wants to launch, if stated.
type Timeline string

// Timeline preferences. The empty string means no timeline signal was found.
const (
	TimelineQuick         Timeline = "quick"
	TimelineNormal        Timeline = "normal"
	TimelineComprehensive Timeline = "comprehensive"
)

// UserIntent is the structured interpretation of a user's stated goal.
// It is created fresh per request and never persisted by the engine.
type UserIntent struct {
	Goal       Goal       `json:"goal"`
	PricePoint PricePoint `json:"price_point,omitempty"`
	Experience Experience `json:"experience,omitempty"`
	Timeline   Timeline   `json:"timeline,omitempty"`
	Keywords   []string   `json:"keywords,omitempty"`
}

// goalRule maps a set of trigger substrings to a goal and the keyword tags
// that goal contributes to the intent.
type goalRule struct {
	patterns []string
	goal     Goal
	keywords []string
}

// goalRules is evaluated in order and the first match wins, so more
// specific intents must appear before generic ones: "create a quiz for
// leads" is interactive lead-gen, not list building, even though "leads"
// also matches the email-list rule.
var goalRules = []goalRule{
	{
		patterns: []string{"quiz", "assessment", "survey"},
		goal:     GoalInteractiveLeadGen,
		keywords: []string{"quiz", "engagement", "segmentation"},
	},
	{
		patterns: []string{"summit", "conference", "multi-speaker", "event"},
		goal:     GoalSummit,
		keywords: []string{"summit", "event", "speakers"},
	},
	{
		patterns: []string{"webinar", "workshop", "training", "masterclass"},
		goal:     GoalWebinar,
		keywords: []string{"webinar", "presentation", "high-ticket"},
	},
	{
		patterns: []string{"launch", "pre-launch", "coming soon", "waitlist"},
		goal:     GoalProductLaunch,
		keywords: []string{"launch", "waitlist", "anticipation"},
	},
	{
		patterns: []string{"membership", "subscription", "recurring", "trial"},
		goal:     GoalMembership,
		keywords: []string{"membership", "recurring"},
	},
	{
		patterns: []string{"email", "list", "leads", "subscribers"},
		goal:     GoalBuildEmailList,
		keywords: []string{"email", "lead-magnet", "opt-in"},
	},
	{
		patterns: []string{"sell", "product", "ecommerce", "store", "shop"},
		goal:     GoalSellProduct,
		keywords: []string{"checkout", "product"},
	},
}

// priceRule maps trigger substrings to a price tier. Used only when no
// literal dollar amount appears in the text.
type priceRule struct {
	patterns []string
	price    PricePoint
}

var priceRules = []priceRule{
	{patterns: []string{"cheap", "low price", "under $50", "tripwire"}, price: PriceLow},
	{patterns: []string{"expensive", "high ticket", "premium", "over $500"}, price: PriceHigh},
	{patterns: []string{"mid price", "$100-$500"}, price: PriceMedium},
}

type experienceRule struct {
	patterns []string
	level    Experience
}

var experienceRules = []experienceRule{
	{patterns: []string{"beginner", "first time", "new to", "simple"}, level: ExperienceBeginner},
	{patterns: []string{"advanced", "complex", "sophisticated"}, level: ExperienceAdvanced},
	{patterns: []string{"intermediate", "some experience"}, level: ExperienceIntermediate},
}

type timelineRule struct {
	patterns []string
	timeline Timeline
}

var timelineRules = []timelineRule{
	{patterns: []string{"quick", "fast", "asap", "today"}, timeline: TimelineQuick},
	{patterns: []string{"detailed", "comprehensive", "complete"}, timeline: TimelineComprehensive},
}

var dollarAmount = regexp.MustCompile(`\$(\d+)`)

// Detect parses arbitrary text into a UserIntent. It never fails: absent
// signals leave the corresponding field zero-valued, and an unmatched goal
// is GoalUnknown.
func Detect(text string) UserIntent {
	lower := strings.ToLower(text)

	out := UserIntent{Goal: GoalUnknown}

	for _, rule := range goalRules {
		if containsAny(lower, rule.patterns) {
			out.Goal = rule.goal
			out.Keywords = append(out.Keywords, rule.keywords...)
			break
		}
	}

	out.PricePoint = detectPrice(lower)
	out.Experience = detectExperience(lower)
	out.Timeline = detectTimeline(lower)

	return out
}

// detectPrice extracts a price tier. A literal dollar amount takes
// precedence over keyword heuristics.
func detectPrice(lower string) PricePoint {
	if m := dollarAmount.FindStringSubmatch(lower); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case amount < 100:
				return PriceLow
			case amount < 500:
				return PriceMedium
			default:
				return PriceHigh
			}
		}
	}

	for _, rule := range priceRules {
		if containsAny(lower, rule.patterns) {
			return rule.price
		}
	}
	return ""
}

func detectExperience(lower string) Experience {
	for _, rule := range experienceRules {
		if containsAny(lower, rule.patterns) {
			return rule.level
		}
	}
	return ""
}

func detectTimeline(lower string) Timeline {
	for _, rule := range timelineRules {
		if containsAny(lower, rule.patterns) {
			return rule.timeline
		}
	}
	return ""
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
