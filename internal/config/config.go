package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/funnelscout/internal/suggest"
)

// Config is the top-level funnelscout configuration.
type Config struct {
	Scoring Scoring `mapstructure:"scoring"`
	Filters Filters `mapstructure:"filters"`
	History History `mapstructure:"history"`
	Output  Output  `mapstructure:"output"`
}

// Scoring holds the adjustable scoring constants. These are tuning knobs,
// not business rules; the defaults reproduce the shipped rubric exactly.
type Scoring struct {
	ExperienceExact         int `mapstructure:"experience_exact"`
	ExperienceNear          int `mapstructure:"experience_near"`
	ExperienceStretch       int `mapstructure:"experience_stretch"`
	TimelinePoints          int `mapstructure:"timeline_points"`
	PricePoints             int `mapstructure:"price_points"`
	KeywordPoints           int `mapstructure:"keyword_points"`
	KeywordCap              int `mapstructure:"keyword_cap"`
	WebinarHighTicketBoost  int `mapstructure:"webinar_high_ticket_boost"`
	EcommerceLowTicketBoost int `mapstructure:"ecommerce_low_ticket_boost"`
	MaxSuggestions          int `mapstructure:"max_suggestions"`
	MaxAlternatives         int `mapstructure:"max_alternatives"`
}

// Tuning converts the configured scoring constants into engine tuning.
func (s Scoring) Tuning() suggest.Tuning {
	return suggest.Tuning{
		ExperienceExact:         s.ExperienceExact,
		ExperienceNear:          s.ExperienceNear,
		ExperienceStretch:       s.ExperienceStretch,
		TimelinePoints:          s.TimelinePoints,
		PricePoints:             s.PricePoints,
		KeywordPoints:           s.KeywordPoints,
		KeywordCap:              s.KeywordCap,
		WebinarHighTicketBoost:  s.WebinarHighTicketBoost,
		EcommerceLowTicketBoost: s.EcommerceLowTicketBoost,
		MaxSuggestions:          s.MaxSuggestions,
		MaxAlternatives:         s.MaxAlternatives,
	}
}

// Filters holds the fixed thresholds behind the quick and high-converting
// catalog views. They are configuration constants, not computed percentiles.
type Filters struct {
	QuickSetupMinutes  int `mapstructure:"quick_setup_minutes"`
	HighConversionRate int `mapstructure:"high_conversion_rate"`
}

// History controls recommendation history persistence.
type History struct {
	Enabled bool `mapstructure:"enabled"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("scoring.experience_exact", DefaultScoring.ExperienceExact)
	v.SetDefault("scoring.experience_near", DefaultScoring.ExperienceNear)
	v.SetDefault("scoring.experience_stretch", DefaultScoring.ExperienceStretch)
	v.SetDefault("scoring.timeline_points", DefaultScoring.TimelinePoints)
	v.SetDefault("scoring.price_points", DefaultScoring.PricePoints)
	v.SetDefault("scoring.keyword_points", DefaultScoring.KeywordPoints)
	v.SetDefault("scoring.keyword_cap", DefaultScoring.KeywordCap)
	v.SetDefault("scoring.webinar_high_ticket_boost", DefaultScoring.WebinarHighTicketBoost)
	v.SetDefault("scoring.ecommerce_low_ticket_boost", DefaultScoring.EcommerceLowTicketBoost)
	v.SetDefault("scoring.max_suggestions", DefaultScoring.MaxSuggestions)
	v.SetDefault("scoring.max_alternatives", DefaultScoring.MaxAlternatives)
	v.SetDefault("filters.quick_setup_minutes", DefaultFilters.QuickSetupMinutes)
	v.SetDefault("filters.high_conversion_rate", DefaultFilters.HighConversionRate)
	v.SetDefault("history.enabled", DefaultHistory.Enabled)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite history database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
