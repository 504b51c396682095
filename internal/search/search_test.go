package search

import (
	"bytes"
	"context"
	"testing"

	"github.com/jpl-au/lined/internal/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferOf(lines ...string) *buffer.Buffer {
	b := buffer.New()
	for _, l := range lines {
		b.Append(l)
		b.StartNewLine()
	}
	return b
}

func TestFind(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		lines []string
		query string
		opts  Options
		want  []Match
	}{
		{
			name:  "one per line",
			lines: []string{"hello world", "world peace"},
			query: "world",
			want:  []Match{{Line: 0, Symbol: 6}, {Line: 1, Symbol: 0}},
		},
		{
			name:  "non-overlapping",
			lines: []string{"aaa"},
			query: "aa",
			want:  []Match{{Line: 0, Symbol: 0}},
		},
		{
			name:  "repeated",
			lines: []string{"abab ab"},
			query: "ab",
			want:  []Match{{Line: 0, Symbol: 0}, {Line: 0, Symbol: 2}, {Line: 0, Symbol: 5}},
		},
		{
			name:  "no match",
			lines: []string{"abc"},
			query: "x",
		},
		{
			name:  "case sensitive by default",
			lines: []string{"World world"},
			query: "world",
			want:  []Match{{Line: 0, Symbol: 6}},
		},
		{
			name:  "ignore case",
			lines: []string{"World world"},
			query: "world",
			opts:  Options{IgnoreCase: true},
			want:  []Match{{Line: 0, Symbol: 0}, {Line: 0, Symbol: 6}},
		},
		{
			name:  "query is literal",
			lines: []string{"a.c abc"},
			query: "a.c",
			opts:  Options{IgnoreCase: true},
			want:  []Match{{Line: 0, Symbol: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(ctx, bufferOf(tt.lines...), tt.query, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindEmptyQuery(t *testing.T) {
	_, err := Find(context.Background(), bufferOf("abc"), "", Options{})
	require.ErrorIs(t, err, ErrEmptyQuery)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	res, err := Run(context.Background(), &out, bufferOf("hello world", "world peace"), "world", Options{})
	require.NoError(t, err)
	assert.Len(t, res.Matches, 2)
	assert.Equal(t, "Text is present in these positions:\nLine 0, Symbol 6\nLine 1, Symbol 0\n", out.String())
}

func TestRunNoMatchesPrintsHeader(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(context.Background(), &out, buffer.New(), "x", Options{})
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", out.String())
}

func TestRunCountOnly(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(context.Background(), &out, bufferOf("ab ab", "ab"), "ab", Options{CountOnly: true})
	require.NoError(t, err)
	assert.Equal(t, "3\n", out.String())
}
