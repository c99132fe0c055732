package suggest

import (
	"github.com/blackwell-systems/funnelscout/internal/catalog"
	"github.com/blackwell-systems/funnelscout/internal/intent"
)

// Engine ranks catalog templates against user intents. It holds only
// read-only state, so a single Engine is safe for concurrent callers.
type Engine struct {
	templates []catalog.Template
	tuning    Tuning
}

// NewEngine creates an engine over the given templates. The slice is
// treated as immutable; ranking ties break by its order.
func NewEngine(templates []catalog.Template, tuning Tuning) *Engine {
	return &Engine{
		templates: templates,
		tuning:    tuning,
	}
}

// NewDefaultEngine creates an engine over the full catalog with default
// tuning.
func NewDefaultEngine() *Engine {
	return NewEngine(catalog.All(), DefaultTuning())
}

// SuggestText detects the intent behind text and returns ranked
// suggestions for it.
func (e *Engine) SuggestText(text string) []TemplateSuggestion {
	return e.Suggest(intent.Detect(text))
}

// byID finds a template in the engine's slice, or nil if absent.
func (e *Engine) byID(id string) *catalog.Template {
	for i := range e.templates {
		if e.templates[i].ID == id {
			return &e.templates[i]
		}
	}
	return nil
}
