// Package config provides configuration loading and defaults for funnelscout.
package config

// DefaultConfigDir is the default location for funnelscout configuration.
const DefaultConfigDir = "~/.config/funnelscout"

// DefaultDBName is the filename for the SQLite history database.
const DefaultDBName = "funnelscout.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultScoring holds the shipped scoring constants.
var DefaultScoring = Scoring{
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

// DefaultFilters holds the shipped catalog filter thresholds: templates
// that set up within 45 minutes count as quick, and a 35% benchmark
// conversion rate counts as high-converting.
var DefaultFilters = Filters{
	QuickSetupMinutes:  45,
	HighConversionRate: 35,
}

// DefaultHistory enables recommendation history by default.
var DefaultHistory = History{
	Enabled: true,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
