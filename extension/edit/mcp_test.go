package edit

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/config"
	"github.com/jpl-au/lined/internal/editor"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, ext extension.Context, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	for _, tool := range (&Extension{}).MCPTools() {
		if tool.Tool.Name != name {
			continue
		}
		var req mcp.CallToolRequest
		req.Params.Name = name
		req.Params.Arguments = args
		res, err := tool.Handler(context.Background(), ext, req)
		require.NoError(t, err)
		return res
	}
	t.Fatalf("tool %s not registered", name)
	return nil
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestMCPEditing(t *testing.T) {
	s := editor.New(editor.Options{})
	ext := extension.NewContext(s, &config.Config{})

	call(t, ext, "lined_append", map[string]any{"text": "hello"})
	res := call(t, ext, "lined_insert", map[string]any{"line": float64(0), "symbol": float64(5), "text": " world"})
	require.False(t, res.IsError)

	var info editor.Info
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &info))
	assert.Equal(t, 1, info.Lines)
	assert.Equal(t, 3, info.UndoDepth)

	call(t, ext, "lined_newline", nil)
	call(t, ext, "lined_append", map[string]any{"text": "world peace"})
	assert.Equal(t, []string{"hello world", "world peace"}, s.Lines())

	res = call(t, ext, "lined_insert", map[string]any{"line": float64(1), "symbol": float64(0), "text": "WORLD", "replace": true})
	require.False(t, res.IsError)
	assert.Equal(t, "WORLD peace", s.Lines()[1])

	res = call(t, ext, "lined_delete", map[string]any{"line": float64(1), "symbol": float64(5), "count": float64(50)})
	require.False(t, res.IsError)
	assert.Equal(t, "WORLD", s.Lines()[1])

	call(t, ext, "lined_clear", nil)
	assert.Empty(t, s.Lines())
}

func TestMCPUndoRedo(t *testing.T) {
	s := editor.New(editor.Options{})
	ext := extension.NewContext(s, &config.Config{})

	var step stepResult
	require.NoError(t, json.Unmarshal([]byte(text(t, call(t, ext, "lined_undo", nil))), &step))
	assert.False(t, step.Changed)
	assert.False(t, step.Info.CanUndo)

	call(t, ext, "lined_append", map[string]any{"text": "a"})
	require.NoError(t, json.Unmarshal([]byte(text(t, call(t, ext, "lined_undo", nil))), &step))
	assert.True(t, step.Changed)
	assert.Equal(t, 1, step.Info.RedoDepth)
	assert.True(t, step.Info.CanRedo)
	assert.False(t, step.Info.CanUndo)

	require.NoError(t, json.Unmarshal([]byte(text(t, call(t, ext, "lined_redo", nil))), &step))
	assert.True(t, step.Changed)
	assert.Equal(t, []string{"a"}, s.Lines())
}

func TestMCPRejections(t *testing.T) {
	s := editor.New(editor.Options{})
	ext := extension.NewContext(s, &config.Config{})

	res := call(t, ext, "lined_insert", map[string]any{"line": float64(0), "symbol": float64(0), "text": "x"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "invalid line index")

	res = call(t, ext, "lined_delete", map[string]any{"line": float64(0), "symbol": float64(0)})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "count")

	res = call(t, ext, "lined_insert", map[string]any{"line": 1.5, "symbol": float64(0), "text": "x"})
	assert.True(t, res.IsError)

	res = call(t, ext, "lined_append", map[string]any{})
	assert.True(t, res.IsError)
	assert.Empty(t, s.Lines())
}
