package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/lined/internal/editor"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRequest(uri string) mcp.ReadResourceRequest {
	var req mcp.ReadResourceRequest
	req.Params.URI = uri
	return req
}

func TestNewServer(t *testing.T) {
	s := editor.New(editor.Options{})
	tools := []Tool{{
		Tool: mcp.NewTool("lined_noop"),
		Handler: func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("ok"), nil
		},
	}}
	srv := NewServer(s, tools)
	require.NotNil(t, srv)
}

func TestResources(t *testing.T) {
	s := editor.New(editor.Options{})
	s.Append("hello")
	s.NewLine()
	s.Append("world")
	r := &resources{s: s}

	t.Run("buffer", func(t *testing.T) {
		got, err := r.readBuffer(context.Background(), readRequest(BufferURI))
		require.NoError(t, err)
		require.Len(t, got, 1)
		tc := got[0].(mcp.TextResourceContents)
		assert.Equal(t, "hello\nworld\n", tc.Text)
		assert.Equal(t, BufferURI, tc.URI)
	})

	t.Run("info", func(t *testing.T) {
		got, err := r.readInfo(context.Background(), readRequest(InfoURI))
		require.NoError(t, err)
		tc := got[0].(mcp.TextResourceContents)

		var info editor.Info
		require.NoError(t, json.Unmarshal([]byte(tc.Text), &info))
		assert.Equal(t, 2, info.Lines)
		assert.Equal(t, s.ID(), info.Session)
	})
}

func TestParams(t *testing.T) {
	var req mcp.CallToolRequest
	req.Params.Arguments = map[string]any{
		"path":  "a.txt",
		"line":  float64(2),
		"half":  1.5,
		"flag":  true,
		"wrong": "x",
	}

	assert.Equal(t, "a.txt", String(req, "path", ""))
	assert.Equal(t, "def", String(req, "missing", "def"))
	assert.True(t, Bool(req, "flag", false))
	assert.False(t, Bool(req, "wrong", false))
	assert.Equal(t, 2, Int(req, "line", 0))
	assert.Equal(t, 7, Int(req, "missing", 7))

	_, err := RequireInt(req, "half")
	assert.Error(t, err)
	_, err = RequireInt(req, "missing")
	assert.Error(t, err)
	_, err = RequireInt(req, "wrong")
	assert.Error(t, err)
}
