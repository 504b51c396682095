// Package repl runs the interactive editing loop: one command per input
// line, dispatched against a single editor session.
//
// Commands may be typed by name or by number (1 for append, 2 for newline
// and so on). Arguments go on the same line; when a command that needs
// arguments is given none, the next input line is read as its arguments.
// Text arguments are taken exactly as typed after the single space that
// follows the command, leading and trailing blanks included.
// Every error is reported and the loop carries on. The loop ends on quit,
// end of input, or context cancellation.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/lined/internal/editor"
	"github.com/jpl-au/lined/internal/fileio"
	"github.com/jpl-au/lined/internal/log"
)

// Prompt is written before each command when Options.Interactive is set.
const Prompt = "> "

// Options configures a REPL.
type Options struct {
	Interactive bool   // stdin is a terminal: show prompts
	Colour      bool   // colourise diff output
	Author      string // recorded in the audit log
	MaxLine     int    // longest input line accepted, 0 for fileio.DefaultMaxLineLength
}

// REPL reads commands from an input stream and applies them to a session.
type REPL struct {
	s    *editor.Session
	in   *bufio.Scanner
	out  io.Writer
	opts Options
}

// New returns a REPL over s.
func New(s *editor.Session, in io.Reader, out io.Writer, opts Options) *REPL {
	if opts.MaxLine <= 0 {
		opts.MaxLine = fileio.DefaultMaxLineLength
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, min(64*1024, opts.MaxLine+1)), opts.MaxLine+1)
	return &REPL{s: s, in: sc, out: out, opts: opts}
}

// Run processes commands until quit, end of input or cancellation.
func (r *REPL) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.prompt(Prompt)
		line, ok := r.next()
		if !ok {
			return r.err()
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if quit := r.Exec(ctx, line); quit {
			return nil
		}
	}
}

// Exec runs a single command line and reports whether it asked to quit.
func (r *REPL) Exec(ctx context.Context, line string) bool {
	name, rest, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	c, ok := lookup(strings.TrimSpace(name))
	if !ok {
		fmt.Fprintln(r.out, "Invalid choice")
		return false
	}
	if c.name == "quit" {
		if r.s.Modified() {
			fmt.Fprintln(r.out, "Unsaved changes discarded")
		}
		return true
	}

	if rest == "" && c.args != "" {
		r.prompt(c.ask + ": ")
		rest, _ = r.next()
	}

	err := c.run(ctx, r, rest)
	b := log.Event("repl:"+c.name, c.name).Author(r.opts.Author).File(r.s.Path())
	b.Write(err)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
	return false
}

func (r *REPL) prompt(s string) {
	if r.opts.Interactive {
		fmt.Fprint(r.out, s)
	}
}

func (r *REPL) err() error {
	err := r.in.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w (%d bytes)", fileio.ErrLineTooLong, r.opts.MaxLine)
	}
	return err
}

func (r *REPL) next() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return r.in.Text(), true
}
