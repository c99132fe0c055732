package mcp

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/blackwell-systems/funnelscout/internal/catalog"
)

// textArgs is the argument shape for tools that take a free-text goal.
type textArgs struct {
	Text string `json:"text"`
}

// compareArgs is the argument shape for compare_templates.
type compareArgs struct {
	Template1 string `json:"template1"`
	Template2 string `json:"template2"`
}

// queryArgs is the argument shape for search_templates.
type queryArgs struct {
	Query string `json:"query"`
}

var (
	textSchema = json.RawMessage(`{"type":"object","properties":{"text":{"type":"string","description":"The user's goal in their own words"}},"required":["text"],"additionalProperties":false}`)

	compareSchema = json.RawMessage(`{"type":"object","properties":{"template1":{"type":"string","description":"First template id"},"template2":{"type":"string","description":"Second template id"}},"required":["template1","template2"],"additionalProperties":false}`)

	querySchema = json.RawMessage(`{"type":"object","properties":{"query":{"type":"string","description":"Case-insensitive search over names, descriptions, tags, and use cases"}},"required":["query"],"additionalProperties":false}`)
)

// addTools registers all MCP tool handlers on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "suggest_templates",
		Description: "Rank funnel templates against a free-text goal, with match scores and reasons.",
		InputSchema: textSchema,
		Handler:     s.handleSuggestTemplates,
	})
	s.registerTool(toolDef{
		Name:        "get_recommendation",
		Description: "Full recommendation for a free-text goal: best template, explanation, and next steps.",
		InputSchema: textSchema,
		Handler:     s.handleGetRecommendation,
	})
	s.registerTool(toolDef{
		Name:        "compare_templates",
		Description: "Structured diff of two templates by id: complexity, setup time, conversion, pages, category.",
		InputSchema: compareSchema,
		Handler:     s.handleCompareTemplates,
	})
	s.registerTool(toolDef{
		Name:        "search_templates",
		Description: "Search the template catalog by keyword.",
		InputSchema: querySchema,
		Handler:     s.handleSearchTemplates,
	})
}

// handleSuggestTemplates returns ranked suggestions for a goal.
func (s *Server) handleSuggestTemplates(args json.RawMessage) (any, error) {
	var a textArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if strings.TrimSpace(a.Text) == "" {
		return nil, errors.New("text is required")
	}
	return s.engine.SuggestText(a.Text), nil
}

// handleGetRecommendation returns the composed recommendation for a goal.
func (s *Server) handleGetRecommendation(args json.RawMessage) (any, error) {
	var a textArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if strings.TrimSpace(a.Text) == "" {
		return nil, errors.New("text is required")
	}
	return s.engine.Recommend(a.Text), nil
}

// handleCompareTemplates compares two templates by id.
func (s *Server) handleCompareTemplates(args json.RawMessage) (any, error) {
	var a compareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cmp := s.engine.Compare(a.Template1, a.Template2)
	if cmp == nil {
		return nil, errors.New("one or both template ids not found")
	}
	return cmp, nil
}

// handleSearchTemplates searches the catalog by keyword.
func (s *Server) handleSearchTemplates(args json.RawMessage) (any, error) {
	var a queryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	results := catalog.Search(a.Query)
	if results == nil {
		results = []catalog.Template{}
	}
	return map[string]any{"templates": results}, nil
}
