// mcp.go defines types for MCP tool registration by extensions.
//
// MCPTool pairs the tool definition with its handler. The handler receives
// both the Go context (for cancellation) and the extension Context (for the
// session).

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
