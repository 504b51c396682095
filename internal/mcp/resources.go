// resources.go exposes the session buffer as read-only MCP resources, so a
// client can pull the current text into context without a tool call.

package mcp

import (
	"context"
	"strings"

	"github.com/jpl-au/lined/internal/editor"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// BufferURI serves the buffer as plain text, one line per line.
	BufferURI = "lined://buffer"
	// InfoURI serves the session summary as JSON.
	InfoURI = "lined://info"
)

type resources struct {
	s *editor.Session
}

func registerResources(srv *server.MCPServer, r *resources) {
	srv.AddResource(
		mcp.NewResource(BufferURI, "Buffer",
			mcp.WithResourceDescription("Current buffer contents, one line per line"),
			mcp.WithMIMEType("text/plain"),
		),
		r.readBuffer,
	)
	srv.AddResource(
		mcp.NewResource(InfoURI, "Session",
			mcp.WithResourceDescription("Session summary: file, line count, cursor, undo/redo depth"),
			mcp.WithMIMEType("application/json"),
		),
		r.readInfo,
	)
}

func (r *resources) readBuffer(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var b strings.Builder
	for _, l := range r.s.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     b.String(),
		},
	}, nil
}

func (r *resources) readInfo(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := MarshalJSON(r.s.Info())
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
