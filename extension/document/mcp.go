// mcp.go implements the MCP tools that move the buffer to and from disk and
// read it back: load, save, print, info, diff.

package document

import (
	"context"
	"io"

	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/log"
	lmcp "github.com/jpl-au/lined/internal/mcp"
	"github.com/jpl-au/lined/internal/printer"
	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTools returns the load, save, print, info and diff tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("lined_load",
				mcp.WithDescription("Replace the buffer with a file. The file lands in line 0, its lines joined by newlines. One undoable step."),
				mcp.WithString("path", mcp.Description("File to load (default: the session's file)")),
			),
			Handler: loadTool,
		},
		{
			Tool: mcp.NewTool("lined_save",
				mcp.WithDescription("Write the buffer to a file, one line per line"),
				mcp.WithString("path", mcp.Description("File to write (default: the session's file)")),
			),
			Handler: saveTool,
		},
		{
			Tool: mcp.NewTool("lined_print",
				mcp.WithDescription("Return the buffer's lines"),
				mcp.WithNumber("start", mcp.Description("First zero-based line to return")),
				mcp.WithNumber("end", mcp.Description("Last zero-based line to return (default: last line)")),
			),
			Handler: printTool,
		},
		{
			Tool:    mcp.NewTool("lined_info", mcp.WithDescription("Summarise the session: file, lines, cursor, size, undo/redo depth")),
			Handler: infoTool,
		},
		{
			Tool: mcp.NewTool("lined_diff",
				mcp.WithDescription("Diff the session's file on disk against the buffer. With last=true, diff the state before the last edit against the buffer instead."),
				mcp.WithBoolean("last", mcp.Description("Show what the last edit changed")),
			),
			Handler: diffTool,
		},
	}
}

func loadTool(ctx context.Context, ext extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	p := lmcp.String(req, "path", "")
	err := s.Load(ctx, p)
	log.Event("mcp:lined_load", "load").Author("mcp").File(s.Path()).Write(err)
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	return lmcp.JSONResult(s.Info())
}

func saveTool(ctx context.Context, ext extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	p := lmcp.String(req, "path", "")
	err := s.Save(ctx, p)
	log.Event("mcp:lined_save", "save").Author("mcp").File(s.Path()).Write(err)
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	return lmcp.JSONResult(s.Info())
}

func printTool(ctx context.Context, ext extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	opts := printer.Options{}
	start, end := lmcp.Int(req, "start", 0), lmcp.Int(req, "end", -1)
	if start != 0 || end >= 0 {
		opts.Lines = &printer.Range{Start: start, End: end}
	}

	res, err := s.Print(ctx, io.Discard, opts)
	log.Event("mcp:lined_print", "read").Author("mcp").File(s.Path()).Write(err)
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	return lmcp.JSONResult(res)
}

func infoTool(_ context.Context, ext extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return lmcp.JSONResult(ext.Session().Info())
}

func diffTool(ctx context.Context, ext extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	if lmcp.Bool(req, "last", false) {
		res, ok := s.LastChange()
		if !ok {
			return mcp.NewToolResultText("Nothing to undo"), nil
		}
		return lmcp.JSONResult(res)
	}

	res, err := s.Diff(ctx)
	log.Event("mcp:lined_diff", "diff").Author("mcp").File(s.Path()).Write(err)
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	return lmcp.JSONResult(res)
}
