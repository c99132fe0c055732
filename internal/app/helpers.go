package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/blackwell-systems/funnelscout/internal/catalog"
	"github.com/blackwell-systems/funnelscout/internal/config"
	"github.com/blackwell-systems/funnelscout/internal/intent"
	"github.com/blackwell-systems/funnelscout/internal/output"
	"github.com/blackwell-systems/funnelscout/internal/store"
	"github.com/blackwell-systems/funnelscout/internal/suggest"
)

// loadConfig loads configuration and applies global output flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	return cfg, nil
}

// newEngine builds the recommendation engine from the full catalog and the
// configured tuning.
func newEngine(cfg *config.Config) *suggest.Engine {
	return suggest.NewEngine(catalog.All(), cfg.Scoring.Tuning())
}

// saveHistory records the top suggestion for an input. History failures are
// reported but should not abort the command that produced the suggestion.
func saveHistory(text string, in intent.UserIntent, top suggest.TemplateSuggestion) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer func() { _ = db.Close() }()

	_, err = db.SaveRecommendation(store.HistoryEntry{
		InputText:    text,
		Goal:         string(in.Goal),
		TemplateID:   top.Template.ID,
		TemplateName: top.Template.Name,
		Score:        top.Score,
		Reason:       top.Reason,
	})
	if err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// warnHistory prints a non-fatal history warning to stderr.
func warnHistory(err error) {
	fmt.Fprintln(os.Stderr, "warning:", err)
}
