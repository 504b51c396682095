// tools_util.go provides helpers for MCP tool parameter extraction and
// results.
//
// Optional parameters are extracted permissively: a missing or mistyped
// value yields the caller's default instead of an error. Positional
// parameters (line, symbol, count) are required and go through RequireInt,
// because guessing a default index would edit the wrong text.

package mcp

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// String extracts a string parameter, returning def when it is missing or
// not a string.
func String(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// Bool extracts a boolean parameter, returning def when it is missing or
// not a boolean.
func Bool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// Int extracts an integer parameter, returning def when it is missing or
// not a number. JSON numbers decode as float64.
func Int(req mcp.CallToolRequest, name string, def int) int {
	if v, err := RequireInt(req, name); err == nil {
		return v
	}
	return def
}

// RequireInt extracts a required integer parameter. Fractional values are
// rejected rather than truncated.
func RequireInt(req mcp.CallToolRequest, name string) (int, error) {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	raw, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	v, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("parameter %q must be a number", name)
	}
	if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("parameter %q must be an integer", name)
	}
	return int(v), nil
}

// MarshalJSON pretty-prints v. LLM clients read indented JSON more reliably.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// JSONResult wraps v as a JSON text result. Marshal failures become tool
// errors so the client always gets a readable response.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := MarshalJSON(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ErrorResult reports err to the client as a tool error.
func ErrorResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
