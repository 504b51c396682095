package core

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/config"
	"github.com/jpl-au/lined/internal/editor"
	"github.com/jpl-au/lined/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExt struct {
	tools []extension.MCPTool
}

func (f *fakeExt) Name() string                  { return "fake" }
func (f *fakeExt) Commands() []*cobra.Command    { return nil }
func (f *fakeExt) MCPTools() []extension.MCPTool { return f.tools }

func TestBindTools_PassesSession(t *testing.T) {
	s := editor.New(editor.Options{})
	ctx := extension.NewContext(s, &config.Config{})

	var seen []*editor.Session
	handler := func(_ context.Context, ext extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		seen = append(seen, ext.Session())
		return mcp.NewToolResultText("ok"), nil
	}
	exts := []extension.Extension{
		&fakeExt{tools: []extension.MCPTool{
			{Tool: mcp.NewTool("a"), Handler: handler},
			{Tool: mcp.NewTool("b"), Handler: handler},
		}},
		&fakeExt{},
	}

	tools := bindTools(ctx, exts)
	require.Len(t, tools, 2)
	assert.Equal(t, "a", tools[0].Tool.Name)
	assert.Equal(t, "b", tools[1].Tool.Name)

	for _, tool := range tools {
		_, err := tool.Handler(context.Background(), mcp.CallToolRequest{})
		require.NoError(t, err)
	}
	assert.Equal(t, []*editor.Session{s, s}, seen)
}

func TestNoSessionCommands(t *testing.T) {
	e := &Extension{}
	names := map[string]bool{}
	for _, c := range e.Commands() {
		names[c.Name()] = true
	}
	for _, n := range e.NoSessionCommands() {
		assert.True(t, names[n], "%s is not a core command", n)
	}
	assert.True(t, names["edit"])
	assert.True(t, names["serve"])
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	writeRecords(&buf, []log.Record{
		{Time: time.Now(), Source: "repl:save", File: "out.txt", Success: false, Error: "disk full"},
		{Time: time.Now(), Source: "repl:append", Author: "ada", Success: true},
	})

	out := buf.String()
	assert.Contains(t, out, "repl:save  out.txt  failed: disk full")
	assert.Contains(t, out, "repl:append  by ada  ok")
	assert.Contains(t, out, "now")
}
