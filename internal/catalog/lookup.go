package catalog

import (
	"strconv"
	"strings"
	"unicode"
)

// ByID returns the template with the given id, or nil if no template
// matches. A nil return signals "not found" and must be handled by the
// caller; it is not an error.
func ByID(id string) *Template {
	for i := range templates {
		if templates[i].ID == id {
			return &templates[i]
		}
	}
	return nil
}

// ByCategory returns all templates in the given category, in catalog order.
func ByCategory(c Category) []Template {
	var out []Template
	for _, t := range templates {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// ByComplexity returns all templates with the given complexity, in catalog order.
func ByComplexity(c Complexity) []Template {
	var out []Template
	for _, t := range templates {
		if t.Complexity == c {
			out = append(out, t)
		}
	}
	return out
}

// Search returns templates whose name, description, tags, or use cases
// contain the query, case-insensitively. An empty query matches nothing.
func Search(query string) []Template {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Template
	for _, t := range templates {
		if matchesQuery(t, q) {
			out = append(out, t)
		}
	}
	return out
}

func matchesQuery(t Template, q string) bool {
	if strings.Contains(strings.ToLower(t.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, use := range t.SuggestedFor {
		if strings.Contains(strings.ToLower(use), q) {
			return true
		}
	}
	return false
}

// BeginnerTemplates returns templates suitable for first-time builders:
// anything simple, plus medium templates explicitly tagged "beginner".
func BeginnerTemplates() []Template {
	var out []Template
	for _, t := range templates {
		if t.Complexity == ComplexitySimple {
			out = append(out, t)
			continue
		}
		if t.Complexity == ComplexityMedium && hasTag(t, "beginner") {
			out = append(out, t)
		}
	}
	return out
}

// QuickTemplates returns templates whose setup fits within maxMinutes.
func QuickTemplates(maxMinutes int) []Template {
	var out []Template
	for _, t := range templates {
		if m, ok := SetupMinutes(t.EstimatedSetupTime); ok && m <= maxMinutes {
			out = append(out, t)
		}
	}
	return out
}

// HighConverting returns templates with a benchmark conversion rate of at
// least minRate percent.
func HighConverting(minRate int) []Template {
	var out []Template
	for _, t := range templates {
		if t.ConversionRate >= minRate {
			out = append(out, t)
		}
	}
	return out
}

func hasTag(t Template, tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// SetupMinutes parses an estimated setup time like "45 minutes" or
// "2 hours" into a minute count. It reads the leading integer and scales
// by 60 when the unit mentions hours. Returns false if no leading number
// is present.
func SetupMinutes(setupTime string) (int, bool) {
	s := strings.TrimSpace(setupTime)
	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	if strings.Contains(strings.ToLower(s), "hour") {
		return n * 60, true
	}
	return n, true
}
