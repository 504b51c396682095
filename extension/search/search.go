// Package search provides the search extension.
// Registers the search command and the lined_search MCP tool.
package search

import (
	"context"
	"fmt"
	"io"

	"github.com/jpl-au/lined/cmd"
	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/buffer"
	"github.com/jpl-au/lined/internal/editor"
	"github.com/jpl-au/lined/internal/log"
	lmcp "github.com/jpl-au/lined/internal/mcp"
	"github.com/jpl-au/lined/internal/search"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct {
	s *editor.Session
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "search".
func (e *Extension) Name() string { return "search" }

// Init receives the shared session.
func (e *Extension) Init(ctx extension.Context) error {
	e.s = ctx.Session()
	return nil
}

// Commands returns the search command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newSearchCmd()}
}

// MCPTools returns lined_search.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("lined_search",
				mcp.WithDescription("Find every non-overlapping occurrence of text in the buffer. Positions are zero-based line indices and byte offsets, ready to pass to lined_insert or lined_delete."),
				mcp.WithString("query", mcp.Required(), mcp.Description("Literal text to find")),
				mcp.WithBoolean("ignore_case", mcp.Description("Case insensitive match")),
			),
			Handler: searchTool,
		},
	}
}

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search <file> <text>",
		Short: "Find text in a file",
		Long: `Print the line and symbol index of every occurrence of text.
Matches do not overlap: "aa" occurs once in "aaa".

  lined search notes.txt world
  lined search -i notes.txt WORLD
  lined search -c notes.txt world    # count only`,
		Args: cobra.ExactArgs(2),
		RunE: e.runSearch,
	}
	c.Flags().BoolP(extension.FlagIgnoreCase, "i", false, "Case insensitive search")
	c.Flags().BoolP(extension.FlagCount, "c", false, "Only print the number of matches")
	return c
}

func (e *Extension) runSearch(c *cobra.Command, args []string) error {
	ctx := c.Context()
	ignoreCase, _ := c.Flags().GetBool(extension.FlagIgnoreCase)
	countOnly, _ := c.Flags().GetBool(extension.FlagCount)
	p, query := args[0], args[1]

	var res search.Result
	var err error
	defer func() {
		log.Event("search:search", "search").
			Author(cmd.Author()).
			File(p).
			Detail("query", query).
			Detail("count", len(res.Matches)).
			Write(err)
	}()

	if err = e.s.Load(ctx, p); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search %q: %w", p, err))
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}
	opts := search.Options{IgnoreCase: ignoreCase, CountOnly: countOnly}
	err = e.s.View(func(r buffer.Reader) error {
		var runErr error
		res, runErr = search.Run(ctx, w, r, query, opts)
		return runErr
	})
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search %q: %w", p, err))
	}
	return cmd.PrintJSON(res)
}

func searchTool(ctx context.Context, ext extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := ext.Session()
	query, err := req.RequireString("query")
	if err != nil {
		return lmcp.ErrorResult(err)
	}

	matches, err := s.Search(ctx, query, search.Options{IgnoreCase: lmcp.Bool(req, "ignore_case", false)})
	log.Event("mcp:lined_search", "search").Author("mcp").File(s.Path()).Detail("query", query).Detail("count", len(matches)).Write(err)
	if err != nil {
		return lmcp.ErrorResult(err)
	}
	return lmcp.JSONResult(search.Result{Query: query, Matches: matches})
}
