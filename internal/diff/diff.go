// Package diff computes line-oriented differences between two versions of
// the buffer: the file on disk against the session, or the state one undo
// step back against the current one.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown before/after changes.
// When equal sections exceed 2*contextLines, they're collapsed with "...".
const contextLines = 3

// Result holds diff output.
type Result struct {
	Old     string `json:"old"`     // old label
	New     string `json:"new"`     // new label
	Diff    string `json:"diff"`    // plain diff text
	Changed bool   `json:"changed"` // false when both sides are identical
}

// Run computes the diff of oldLines against newLines and writes it to w.
func Run(w io.Writer, oldLines, newLines []string, oldLabel, newLabel string, colour bool) Result {
	r := Compute(oldLines, newLines, oldLabel, newLabel)
	if !r.Changed {
		fmt.Fprintln(w, "No differences")
		return r
	}
	fmt.Fprint(w, r.Format(colour))
	return r
}

// Compute returns a line diff between oldLines and newLines. Each side is
// joined with "\n" terminators, so a line holding an embedded newline
// compares the same as two separate lines.
func Compute(oldLines, newLines []string, oldLabel, newLabel string) Result {
	oldText, newText := join(oldLines), join(newLines)

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(oldText, newText)
	d := dmp.DiffMain(a, b, false)
	d = dmp.DiffCharsToLines(d, lineArray)

	return Result{
		Old:     oldLabel,
		New:     newLabel,
		Diff:    format(d),
		Changed: oldText != newText,
	}
}

func join(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// format converts diffs to unified-style text.
func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if d.Text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*contextLines {
				for i := range contextLines {
					b.WriteString("  " + lines[i] + "\n")
				}
				b.WriteString("  ...\n")
				for i := len(lines) - contextLines; i < len(lines); i++ {
					b.WriteString("  " + lines[i] + "\n")
				}
			} else {
				for _, l := range lines {
					b.WriteString("  " + l + "\n")
				}
			}
		}
	}
	return b.String()
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the full diff with header.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
