package repl

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jpl-au/lined/internal/diff"
	"github.com/jpl-au/lined/internal/printer"
	"github.com/jpl-au/lined/internal/search"
)

// errUsage wraps argument errors so the message names the expected form.
var errUsage = errors.New("usage")

type command struct {
	name  string
	alias string
	args  string // argument synopsis, empty when none are needed
	ask   string // prompt when arguments are read from the next line
	help  string
	run   func(ctx context.Context, r *REPL, args string) error
}

// commands is filled in init: runHelp reads it.
var commands []command

func init() {
	commands = []command{
		{name: "append", alias: "1", args: "<text>", ask: "Enter text to append", help: "Append text at the cursor", run: runAppend},
		{name: "newline", alias: "2", help: "Start a new line", run: runNewLine},
		{name: "save", alias: "3", help: "Save to a file (default: current file)", run: runSave},
		{name: "load", alias: "4", args: "<file>", ask: "Enter the file name for loading", help: "Load a file", run: runLoad},
		{name: "print", alias: "5", help: "Print the current text", run: runPrint},
		{name: "insert", alias: "6", args: "<line> <symbol> <text>", ask: "Enter line, symbol index and text", help: "Insert text at a position", run: runInsert},
		{name: "search", alias: "7", args: "<text>", ask: "Enter text to search", help: "Search for text", run: runSearch},
		{name: "delete", alias: "8", args: "<line> <symbol> <count>", ask: "Enter line, symbol index and number of symbols", help: "Delete symbols", run: runDelete},
		{name: "clear", alias: "9", help: "Clear the text", run: runClear},
		{name: "replace", alias: "10", args: "<line> <symbol> <text>", ask: "Enter line, symbol index and text", help: "Overwrite text at a position", run: runReplace},
		{name: "undo", alias: "11", help: "Undo the last edit", run: runUndo},
		{name: "redo", alias: "12", help: "Redo the last undone edit", run: runRedo},
		{name: "diff", help: "Show changes against the file on disk", run: runDiff},
		{name: "last", help: "Show what the last edit changed", run: runLast},
		{name: "info", help: "Show session details", run: runInfo},
		{name: "help", help: "List commands", run: runHelp},
		{name: "quit", alias: "0", help: "End the session"},
	}
}

func lookup(name string) (command, bool) {
	if name == "exit" {
		name = "quit"
	}
	for _, c := range commands {
		if c.name == name || (c.alias != "" && c.alias == name) {
			return c, true
		}
	}
	return command{}, false
}

func runAppend(_ context.Context, r *REPL, args string) error {
	r.s.Append(args)
	fmt.Fprintf(r.out, "Text appended: %s\n", args)
	return nil
}

func runNewLine(_ context.Context, r *REPL, _ string) error {
	r.s.NewLine()
	fmt.Fprintln(r.out, "New line is started")
	return nil
}

func runSave(ctx context.Context, r *REPL, args string) error {
	if err := r.s.Save(ctx, strings.TrimSpace(args)); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Text has been saved successfully")
	return nil
}

func runLoad(ctx context.Context, r *REPL, args string) error {
	if err := r.s.Load(ctx, strings.TrimSpace(args)); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Text has been loaded successfully")
	return nil
}

func runPrint(ctx context.Context, r *REPL, _ string) error {
	_, err := r.s.Print(ctx, r.out, printer.Options{Header: true})
	return err
}

func runInsert(_ context.Context, r *REPL, args string) error {
	line, sym, text, err := positional("insert", args)
	if err != nil {
		return err
	}
	return r.s.Insert(line, sym, text)
}

func runReplace(_ context.Context, r *REPL, args string) error {
	line, sym, text, err := positional("replace", args)
	if err != nil {
		return err
	}
	return r.s.Replace(line, sym, text)
}

func runSearch(ctx context.Context, r *REPL, args string) error {
	matches, err := r.s.Search(ctx, args, search.Options{})
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, search.Header)
	for _, m := range matches {
		fmt.Fprintf(r.out, "Line %d, Symbol %d\n", m.Line, m.Symbol)
	}
	return nil
}

func runDelete(_ context.Context, r *REPL, args string) error {
	f := strings.Fields(args)
	if len(f) != 3 {
		return fmt.Errorf("%w: delete <line> <symbol> <count>", errUsage)
	}
	n := make([]int, 3)
	for i, s := range f {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: delete <line> <symbol> <count>: %q is not a number", errUsage, s)
		}
		n[i] = v
	}
	return r.s.Delete(n[0], n[1], n[2])
}

func runClear(_ context.Context, r *REPL, _ string) error {
	r.s.Clear()
	fmt.Fprintln(r.out, "Text cleared")
	return nil
}

func runUndo(_ context.Context, r *REPL, _ string) error {
	if r.s.Undo() {
		fmt.Fprintln(r.out, "Undone")
	} else {
		fmt.Fprintln(r.out, "Nothing to undo")
	}
	return nil
}

func runRedo(_ context.Context, r *REPL, _ string) error {
	if r.s.Redo() {
		fmt.Fprintln(r.out, "Redone")
	} else {
		fmt.Fprintln(r.out, "Nothing to redo")
	}
	return nil
}

func runDiff(ctx context.Context, r *REPL, _ string) error {
	res, err := r.s.Diff(ctx)
	if err != nil {
		return err
	}
	writeDiff(r, res)
	return nil
}

func runLast(_ context.Context, r *REPL, _ string) error {
	res, ok := r.s.LastChange()
	if !ok {
		fmt.Fprintln(r.out, "Nothing to undo")
		return nil
	}
	writeDiff(r, res)
	return nil
}

func writeDiff(r *REPL, res diff.Result) {
	if !res.Changed {
		fmt.Fprintln(r.out, "No differences")
		return
	}
	fmt.Fprint(r.out, res.Format(r.opts.Colour))
}

func runInfo(_ context.Context, r *REPL, _ string) error {
	r.s.Info().Write(r.out)
	return nil
}

func runHelp(_ context.Context, r *REPL, _ string) error {
	fmt.Fprintln(r.out, "Commands:")
	for _, c := range commands {
		alias := c.alias
		if alias == "" {
			alias = "-"
		}
		fmt.Fprintf(r.out, "  %3s  %-8s %-26s %s\n", alias, c.name, c.args, c.help)
	}
	return nil
}

// positional parses "<line> <symbol> <text>". The text is everything after
// the second number, spaces included.
func positional(name, args string) (line, sym int, text string, err error) {
	usage := fmt.Errorf("%w: %s <line> <symbol> <text>", errUsage, name)

	lineStr, rest, ok := strings.Cut(strings.TrimLeft(args, " \t"), " ")
	if !ok {
		return 0, 0, "", usage
	}
	symStr, text, ok := strings.Cut(strings.TrimLeft(rest, " \t"), " ")
	if !ok {
		return 0, 0, "", usage
	}
	if line, err = strconv.Atoi(lineStr); err != nil {
		return 0, 0, "", usage
	}
	if sym, err = strconv.Atoi(symStr); err != nil {
		return 0, 0, "", usage
	}
	return line, sym, text, nil
}
