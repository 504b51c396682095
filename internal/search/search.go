// Package search finds every occurrence of a query in the buffer.
//
// Matching is literal and non-overlapping: after a hit at offset p the next
// scan starts at p+len(query), so "aa" occurs once in "aaa". Positions are
// zero-based line indices and byte offsets, the same coordinates insert and
// delete take, so a hit can be fed straight back into an edit.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jpl-au/lined/internal/buffer"
)

// ErrEmptyQuery is returned for a zero-length query, which would otherwise
// match at every offset.
var ErrEmptyQuery = errors.New("empty search query")

// Header is written before the match list in text output.
const Header = "Text is present in these positions:"

// Options configures a search.
type Options struct {
	IgnoreCase bool // Case insensitive match (-i flag)
	CountOnly  bool // Only print the number of matches (-c flag)
}

// Match is one occurrence of the query.
type Match struct {
	Line   int `json:"line"`
	Symbol int `json:"symbol"`
}

// Result contains the outcome of a search.
type Result struct {
	Query   string  `json:"query"`
	Matches []Match `json:"matches"`
}

// Find returns every match of query in r, in line then offset order.
func Find(ctx context.Context, r buffer.Reader, query string, opts Options) ([]Match, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	var re *regexp.Regexp
	if opts.IgnoreCase {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	}

	var matches []Match
	for i, line := range r.Lines() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if re != nil {
			for _, loc := range re.FindAllStringIndex(line, -1) {
				matches = append(matches, Match{Line: i, Symbol: loc[0]})
			}
			continue
		}
		for pos := 0; ; {
			j := strings.Index(line[pos:], query)
			if j < 0 {
				break
			}
			matches = append(matches, Match{Line: i, Symbol: pos + j})
			pos += j + len(query)
		}
	}
	return matches, nil
}

// Run searches r and writes the positions to w.
func Run(ctx context.Context, w io.Writer, r buffer.Reader, query string, opts Options) (Result, error) {
	result := Result{Query: query}

	matches, err := Find(ctx, r, query, opts)
	if err != nil {
		return result, err
	}
	result.Matches = matches

	if opts.CountOnly {
		fmt.Fprintln(w, len(matches))
		return result, nil
	}

	fmt.Fprintln(w, Header)
	for _, m := range matches {
		fmt.Fprintf(w, "Line %d, Symbol %d\n", m.Line, m.Symbol)
	}
	return result, nil
}
