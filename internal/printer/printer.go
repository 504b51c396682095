// Package printer renders buffer lines for display.
//
// Line numbers and ranges use the same zero-based indices as insert, delete
// and search, so a number read off the screen can be typed straight back into
// an edit command.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpl-au/lined/internal/buffer"
)

// ErrInvalidLineRange is returned for a malformed range string.
var ErrInvalidLineRange = errors.New("invalid line range")

// Header is written before the lines when Options.Header is set.
const Header = "Current Text:"

// minLineNumWidth is the minimum column width for line numbers.
const minLineNumWidth = 4

// Range selects lines Start..End inclusive. End < 0 means through the last line.
type Range struct {
	Start int
	End   int
}

// Options configures a print.
type Options struct {
	Header      bool   // Write Header first (interactive sessions)
	LineNumbers bool   // Prefix each line with its index (-n flag)
	Lines       *Range // Restrict output to a range (-l flag), nil for all
}

// Result contains the outcome of a print.
type Result struct {
	Lines   []string `json:"lines"`
	Start   int      `json:"start"`
	Total   int      `json:"total"`
	Printed int      `json:"printed"`
}

// Run writes the lines of r to w, each followed by a line break.
func Run(ctx context.Context, w io.Writer, r buffer.Reader, opts Options) (Result, error) {
	lines := r.Lines()
	result := Result{Total: len(lines)}

	start, end := 0, len(lines)-1
	if opts.Lines != nil {
		start = max(opts.Lines.Start, 0)
		if opts.Lines.End >= 0 && opts.Lines.End < end {
			end = opts.Lines.End
		}
	}
	result.Start = start

	if opts.Header {
		fmt.Fprintln(w, Header)
	}

	width := max(len(strconv.Itoa(end)), minLineNumWidth)
	for i := start; i <= end; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if opts.LineNumbers {
			fmt.Fprintf(w, "%*d\t%s\n", width, i, lines[i])
		} else {
			fmt.Fprintln(w, lines[i])
		}
		result.Lines = append(result.Lines, lines[i])
	}
	result.Printed = len(result.Lines)
	return result, nil
}

// ParseRange parses "start:end", "start:" or ":end" into a Range.
// Both bounds are zero-based and inclusive.
func ParseRange(s string) (*Range, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q (expected start:end)", ErrInvalidLineRange, s)
	}
	if parts[0] == "" && parts[1] == "" {
		return nil, fmt.Errorf("%w: %q (at least start or end line required)", ErrInvalidLineRange, s)
	}

	r := &Range{End: -1}
	var err error
	if parts[0] != "" {
		r.Start, err = strconv.Atoi(parts[0])
		if err != nil || r.Start < 0 {
			return nil, fmt.Errorf("%w: invalid start line %q", ErrInvalidLineRange, parts[0])
		}
	}
	if parts[1] != "" {
		r.End, err = strconv.Atoi(parts[1])
		if err != nil || r.End < 0 {
			return nil, fmt.Errorf("%w: invalid end line %q", ErrInvalidLineRange, parts[1])
		}
		if r.Start > r.End {
			return nil, fmt.Errorf("%w: start line %d is greater than end line %d", ErrInvalidLineRange, r.Start, r.End)
		}
	}
	return r, nil
}
