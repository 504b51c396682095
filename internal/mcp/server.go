// Package mcp serves an editing session over the Model Context Protocol, so
// an LLM client can append, insert, undo and search in the same buffer a
// person would edit with "lined edit".
//
// Tool definitions and handlers come from the extensions; this package owns
// the server, the stdio transport, the buffer resources and the parameter
// helpers the handlers share.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/lined/internal/editor"
	"github.com/jpl-au/lined/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Name is advertised to clients during initialisation.
const Name = "lined"

// Tool pairs a tool definition with a handler already bound to the session.
type Tool struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// NewServer builds an MCP server exposing tools and the session's buffer
// resources.
func NewServer(s *editor.Session, tools []Tool) *server.MCPServer {
	srv := server.NewMCPServer(
		Name,
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(srv, &resources{s: s})
	for _, t := range tools {
		srv.AddTool(t.Tool, t.Handler)
	}
	return srv
}

// Serve runs the server over stdio until the client disconnects.
func Serve(s *editor.Session, tools []Tool) error {
	// stdout is reserved for JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	srv := NewServer(s, tools)
	slog.Info("lined MCP server ready",
		"version", version.Short(),
		"transport", "stdio",
		"session", s.ID(),
		"file", s.Path(),
		"tools", len(tools))

	err := server.ServeStdio(srv)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}
