// Package mcp implements a Model Context Protocol stdio server that
// exposes the recommendation engine as MCP tools.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/blackwell-systems/funnelscout/internal/suggest"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "funnelscout"
	serverVersion   = "0.1.0"
)

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Server is an MCP stdio server. It reads JSON-RPC requests from r and
// writes JSON-RPC responses to w. Calls are dispatched to registered tools.
type Server struct {
	tools  []toolDef
	engine *suggest.Engine
}

// toolDef describes a registered MCP tool.
type toolDef struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     toolHandler
}

// toolHandler is the function signature for MCP tool handlers.
type toolHandler func(args json.RawMessage) (any, error)

// jsonrpcRequest is a JSON-RPC 2.0 request message.
type jsonrpcRequest struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

// jsonrpcResponse is a JSON-RPC 2.0 response message.
type jsonrpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Result  any              `json:"result,omitempty"`
	Error   *jsonrpcError    `json:"error,omitempty"`
}

// jsonrpcError represents a JSON-RPC 2.0 error object.
type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toolsCallParams is the params structure for tools/call requests.
type toolsCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// toolsCallResult wraps a tool result as an MCP content response.
type toolsCallResult struct {
	Content []mcpContent `json:"content"`
	IsError bool         `json:"isError"`
}

// mcpContent is a single content item in an MCP tool response.
type mcpContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// toolListEntry is the shape of a single tool in a tools/list response.
type toolListEntry struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// NewServer constructs a Server around the given recommendation engine.
func NewServer(engine *suggest.Engine) *Server {
	s := &Server{
		engine: engine,
	}
	addTools(s)
	return s
}

// registerTool appends a toolDef to s.tools.
func (s *Server) registerTool(def toolDef) {
	s.tools = append(s.tools, def)
}

// Run blocks, reading JSON-RPC 2.0 messages from r and writing responses to w,
// until ctx is cancelled or r returns EOF. Returns nil on clean shutdown,
// or a non-nil error for unexpected I/O failures.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)

	lineCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		for scanner.Scan() {
			select {
			case lineCh <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errCh <- err
		}
		close(lineCh)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			return err
		case line, ok := <-lineCh:
			if !ok {
				// EOF — clean shutdown
				return nil
			}
			if err := s.handleLine(line, bw); err != nil {
				return err
			}
		}
	}
}

// handleLine processes a single JSON-RPC line and writes the response, if
// the line warrants one. Notifications (no id) are consumed silently.
func (s *Server) handleLine(line string, bw *bufio.Writer) error {
	var req jsonrpcRequest
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return s.write(bw, jsonrpcResponse{
			JSONRPC: "2.0",
			Error:   &jsonrpcError{Code: codeParseError, Message: "Parse error"},
		})
	}

	if req.ID == nil {
		return nil
	}

	resp := jsonrpcResponse{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "initialize":
		resp.Result = s.handleInitialize()
	case "tools/list":
		resp.Result = s.handleToolsList()
	case "tools/call":
		resp.Result, resp.Error = s.handleToolsCall(req.Params)
	default:
		resp.Error = &jsonrpcError{Code: codeMethodNotFound, Message: "Method not found"}
	}

	return s.write(bw, resp)
}

func (s *Server) handleInitialize() any {
	return map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    serverName,
			"version": serverVersion,
		},
	}
}

func (s *Server) handleToolsList() any {
	entries := make([]toolListEntry, 0, len(s.tools))
	for _, t := range s.tools {
		entries = append(entries, toolListEntry{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	return map[string]any{"tools": entries}
}

// handleToolsCall dispatches to a registered tool. Tool-level failures
// (unknown tool, handler error) come back as isError content rather than a
// JSON-RPC error; only malformed params are a protocol error.
func (s *Server) handleToolsCall(params json.RawMessage) (any, *jsonrpcError) {
	var call toolsCallParams
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, &jsonrpcError{Code: codeInvalidParams, Message: "Invalid params"}
	}

	var found *toolDef
	for i := range s.tools {
		if s.tools[i].Name == call.Name {
			found = &s.tools[i]
			break
		}
	}
	if found == nil {
		return errorContent(fmt.Sprintf("unknown tool: %s", call.Name)), nil
	}

	args := call.Arguments
	if args == nil {
		args = json.RawMessage(`{}`)
	}

	result, err := found.Handler(args)
	if err != nil {
		return errorContent(err.Error()), nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return errorContent(err.Error()), nil
	}

	return toolsCallResult{
		Content: []mcpContent{{Type: "text", Text: string(payload)}},
		IsError: false,
	}, nil
}

func errorContent(msg string) toolsCallResult {
	return toolsCallResult{
		Content: []mcpContent{{Type: "text", Text: msg}},
		IsError: true,
	}
}

// write marshals resp as a single JSON line and flushes the writer.
func (s *Server) write(bw *bufio.Writer, resp jsonrpcResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if _, err := bw.Write(data); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
