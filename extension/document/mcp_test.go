package document

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/config"
	"github.com/jpl-au/lined/internal/diff"
	"github.com/jpl-au/lined/internal/editor"
	"github.com/jpl-au/lined/internal/printer"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, ext extension.Context, name string, args map[string]any) (*mcp.CallToolResult, string) {
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
		require.NotEmpty(t, res.Content)
		tc, ok := res.Content[0].(mcp.TextContent)
		require.True(t, ok)
		return res, tc.Text
	}
	t.Fatalf("tool %s not registered", name)
	return nil, ""
}

func TestMCPLoadPrintSave(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(src, []byte("alpha\nbeta\ngamma\n"), 0644))

	s := editor.New(editor.Options{})
	ext := extension.NewContext(s, &config.Config{})

	res, _ := call(t, ext, "lined_load", map[string]any{"path": src})
	require.False(t, res.IsError)
	assert.Equal(t, src, s.Path())

	_, body := call(t, ext, "lined_print", nil)
	var pr printer.Result
	require.NoError(t, json.Unmarshal([]byte(body), &pr))
	assert.Equal(t, []string{"alpha\nbeta\ngamma"}, pr.Lines)
	assert.Equal(t, 1, pr.Total)

	s.Append("delta")
	s.NewLine()
	s.Append("epsilon")

	_, body = call(t, ext, "lined_print", map[string]any{"start": float64(1)})
	require.NoError(t, json.Unmarshal([]byte(body), &pr))
	assert.Equal(t, []string{"epsilon"}, pr.Lines)
	assert.Equal(t, 2, pr.Total)
	_, body = call(t, ext, "lined_diff", nil)
	var d diff.Result
	require.NoError(t, json.Unmarshal([]byte(body), &d))
	assert.True(t, d.Changed)
	assert.Contains(t, d.Diff, "+ delta\n+ epsilon")

	_, body = call(t, ext, "lined_diff", map[string]any{"last": true})
	require.NoError(t, json.Unmarshal([]byte(body), &d))
	assert.Equal(t, "previous", d.Old)

	dst := filepath.Join(dir, "out.txt")
	res, _ = call(t, ext, "lined_save", map[string]any{"path": dst})
	require.False(t, res.IsError)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\ngamma\ndelta\nepsilon\n", string(data))

	_, body = call(t, ext, "lined_info", nil)
	var info editor.Info
	require.NoError(t, json.Unmarshal([]byte(body), &info))
	assert.Equal(t, dst, info.File)
	assert.Equal(t, 2, info.Lines)
	assert.False(t, info.Modified)
}

func TestMCPLoadErrors(t *testing.T) {
	s := editor.New(editor.Options{})
	ext := extension.NewContext(s, &config.Config{})

	res, body := call(t, ext, "lined_load", map[string]any{"path": filepath.Join(t.TempDir(), "missing")})
	assert.True(t, res.IsError)
	assert.Contains(t, body, "file unavailable")

	res, body = call(t, ext, "lined_save", nil)
	assert.True(t, res.IsError)
	assert.Contains(t, body, "no file associated")
}
