// serve.go implements the "lined serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP requests
// over stdio. Every extension's tools are bound to the one session here, so
// the server sees the same buffer and history across calls.

package core

import (
	"context"
	"fmt"

	"github.com/jpl-au/lined/cmd"
	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/log"
	lmcp "github.com/jpl-au/lined/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve [file]",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.
With a file, the buffer starts with its lines and lined_save defaults to it.

  lined serve notes.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runServe,
	}
}

func (e *Extension) runServe(c *cobra.Command, args []string) error {
	s := e.ctx.Session()
	if len(args) == 1 {
		err := s.Open(c.Context(), args[0])
		log.Event("core:serve", "open").Author(cmd.Author()).File(args[0]).Write(err)
		if err != nil {
			return fmt.Errorf("serve %q: %w", args[0], err)
		}
	}

	tools := bindTools(e.ctx, extension.All())
	log.Event("core:serve", "serve").
		Author(cmd.Author()).
		File(s.Path()).
		Detail("tools", len(tools)).
		Detail("history_capacity", e.ctx.Config().HistoryCapacity()).
		Write(nil)
	return lmcp.Serve(s, tools)
}

// bindTools closes each extension's tool handlers over ctx.
func bindTools(ctx extension.Context, exts []extension.Extension) []lmcp.Tool {
	var tools []lmcp.Tool
	for _, ext := range exts {
		for _, t := range ext.MCPTools() {
			h := t.Handler
			tools = append(tools, lmcp.Tool{
				Tool: t.Tool,
				Handler: func(c context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
					return h(c, ctx, req)
				},
			})
		}
	}
	return tools
}
