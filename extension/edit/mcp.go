// mcp.go implements the MCP editing tools. Each tool returns the session
// summary after the edit so the client can track the cursor and how far it
// can undo without a separate call.

package edit

import (
	"context"

	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/editor"
	"github.com/jpl-au/lined/internal/log"
	lmcp "github.com/jpl-au/lined/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTools returns the buffer editing tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("lined_append",
				mcp.WithDescription("Append text at the cursor. Starts a new line if the cursor is past the last line, otherwise joins onto the cursor's line with a newline."),
				mcp.WithString("text", mcp.Required(), mcp.Description("Text to append")),
			),
			Handler: appendTool,
		},
		{
			Tool: mcp.NewTool("lined_newline",
				mcp.WithDescription("Advance the cursor so the next append starts a new line"),
			),
			Handler: newLineTool,
		},
		{
			Tool: mcp.NewTool("lined_insert",
				mcp.WithDescription("Insert text into a line at a zero-based byte offset. With replace=true, overwrite len(text) bytes instead; the replacement must fit inside the line."),
				mcp.WithNumber("line", mcp.Required(), mcp.Description("Zero-based line index")),
				mcp.WithNumber("symbol", mcp.Required(), mcp.Description("Zero-based byte offset within the line")),
				mcp.WithString("text", mcp.Required(), mcp.Description("Text to insert")),
				mcp.WithBoolean("replace", mcp.Description("Overwrite instead of insert")),
			),
			Handler: insertTool,
		},
		{
			Tool: mcp.NewTool("lined_delete",
				mcp.WithDescription("Delete up to count bytes from a line starting at a zero-based byte offset"),
				mcp.WithNumber("line", mcp.Required(), mcp.Description("Zero-based line index")),
				mcp.WithNumber("symbol", mcp.Required(), mcp.Description("Zero-based byte offset within the line")),
				mcp.WithNumber("count", mcp.Required(), mcp.Description("Number of bytes to delete")),
			),
			Handler: deleteTool,
		},
		{
			Tool:    mcp.NewTool("lined_clear", mcp.WithDescription("Remove every line. Can be undone.")),
			Handler: clearTool,
		},
		{
			Tool:    mcp.NewTool("lined_undo", mcp.WithDescription("Undo the last edit. Reports changed=false when nothing is left to undo.")),
			Handler: undoTool,
		},
		{
			Tool:    mcp.NewTool("lined_redo", mcp.WithDescription("Redo the last undone edit. Reports changed=false when nothing is left to redo.")),
			Handler: redoTool,
		},
	}
}

type stepResult struct {
	Changed bool        `json:"changed"`
	Info    editor.Info `json:"info"`
}

func appendTool(_ context.Context, ext extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	text, err := req.RequireString("text")
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	s.Append(text)
	log.Event("mcp:lined_append", "append").Author("mcp").File(s.Path()).Write(nil)
	return lmcp.JSONResult(s.Info())
}

func newLineTool(_ context.Context, ext extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	s.NewLine()
	log.Event("mcp:lined_newline", "newline").Author("mcp").File(s.Path()).Write(nil)
	return lmcp.JSONResult(s.Info())
}

func insertTool(_ context.Context, ext extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	line, err := lmcp.RequireInt(req, "line")
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	sym, err := lmcp.RequireInt(req, "symbol")
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	text, err := req.RequireString("text")
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	replace := lmcp.Bool(req, "replace", false)

	action := "insert"
	if replace {
		action = "replace"
		err = s.Replace(line, sym, text)
	} else {
		err = s.Insert(line, sym, text)
	}
	log.Event("mcp:lined_insert", action).Author("mcp").File(s.Path()).Line(line).Detail("symbol", sym).Write(err)
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	return lmcp.JSONResult(s.Info())
}

func deleteTool(_ context.Context, ext extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	line, err := lmcp.RequireInt(req, "line")
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	sym, err := lmcp.RequireInt(req, "symbol")
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	n, err := lmcp.RequireInt(req, "count")
	if err != nil {
		return lmcp.ErrorResult(err)
	}

	err = s.Delete(line, sym, n)
	log.Event("mcp:lined_delete", "delete").Author("mcp").File(s.Path()).Line(line).Detail("symbol", sym).Detail("count", n).Write(err)
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	return lmcp.JSONResult(s.Info())
}

func clearTool(_ context.Context, ext extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	s.Clear()
	log.Event("mcp:lined_clear", "clear").Author("mcp").File(s.Path()).Write(nil)
	return lmcp.JSONResult(s.Info())
}

func undoTool(_ context.Context, ext extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	ok := s.Undo()
	log.Event("mcp:lined_undo", "undo").Author("mcp").File(s.Path()).Detail("changed", ok).Write(nil)
	return lmcp.JSONResult(stepResult{Changed: ok, Info: s.Info()})
}

func redoTool(_ context.Context, ext extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	ok := s.Redo()
	log.Event("mcp:lined_redo", "redo").Author("mcp").File(s.Path()).Detail("changed", ok).Write(nil)
	return lmcp.JSONResult(stepResult{Changed: ok, Info: s.Info()})
}
