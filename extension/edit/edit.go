// Package edit provides the edit extension for lined.
// It registers the one-shot commands append, insert, replace and delete,
// and the MCP editing tools (append, newline, insert, delete, clear, undo,
// redo).
package edit

import (
	"fmt"
	"strconv"

	"github.com/jpl-au/lined/cmd"
	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/diff"
	"github.com/jpl-au/lined/internal/editor"
	"github.com/jpl-au/lined/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the edit extension.
type Extension struct {
	s *editor.Session
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "edit".
func (e *Extension) Name() string { return "edit" }

// Init receives the shared session from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.s = ctx.Session()
	return nil
}

// Commands returns the one-shot file editing commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newAppendCmd(),
		e.newInsertCmd(false),
		e.newInsertCmd(true),
		e.newDeleteCmd(),
	}
}

// Result is the JSON shape of a one-shot edit.
type Result struct {
	File  string `json:"file"`
	Lines int    `json:"lines"`
	Saved bool   `json:"saved"`
	Diff  string `json:"diff,omitempty"`
}

func addEditFlags(c *cobra.Command) {
	c.Flags().Bool(extension.FlagDryRun, false, "Apply the edit and print the result without saving")
	c.Flags().Bool(extension.FlagDiff, false, "Show the change against the file on disk")
}

// --- append command ---

func (e *Extension) newAppendCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "append <file> <text>",
		Short: "Append a line to a file",
		Long: `Append text after the file's last line. A loaded file sits in one slot at
the cursor, so the text joins it. The file is created if it does not exist.

  lined append notes.txt "buy milk"`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return e.apply(c, "append", args[0], -1, func(s *editor.Session) error {
				s.Append(args[1])
				return nil
			})
		},
	}
	addEditFlags(c)
	return c
}

// --- insert and replace commands ---

func (e *Extension) newInsertCmd(replace bool) *cobra.Command {
	name, short, long := "insert", "Insert text at a line and symbol index",
		`Insert text into a line at a zero-based byte offset.

  lined insert notes.txt 0 5 " world"`
	if replace {
		name, short, long = "replace", "Overwrite text at a line and symbol index",
			`Overwrite len(text) bytes of a line starting at a zero-based byte offset.
The replacement must fit inside the line.

  lined replace notes.txt 0 0 "HELLO"`
	}

	c := &cobra.Command{
		Use:   name + " <file> <line> <symbol> <text>",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(4),
		RunE: func(c *cobra.Command, args []string) error {
			line, sym, err := parsePosition(args[1], args[2])
			if err != nil {
				return cmd.PrintJSONError(err)
			}
			return e.apply(c, name, args[0], line, func(s *editor.Session) error {
				if replace {
					return s.Replace(line, sym, args[3])
				}
				return s.Insert(line, sym, args[3])
			})
		},
	}
	addEditFlags(c)
	return c
}

// --- delete command ---

func (e *Extension) newDeleteCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "delete <file> <line> <symbol> <count>",
		Short: "Delete symbols from a line",
		Long: `Delete up to count bytes from a line starting at a zero-based byte offset.
A count running past the end of the line deletes the rest of the line.

  lined delete notes.txt 0 5 6`,
		Args: cobra.ExactArgs(4),
		RunE: func(c *cobra.Command, args []string) error {
			line, sym, err := parsePosition(args[1], args[2])
			if err != nil {
				return cmd.PrintJSONError(err)
			}
			n, err := strconv.Atoi(args[3])
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("invalid count %q", args[3]))
			}
			return e.apply(c, "delete", args[0], line, func(s *editor.Session) error {
				return s.Delete(line, sym, n)
			})
		},
	}
	addEditFlags(c)
	return c
}

// apply opens file into the session, runs fn, and saves unless --dry-run.
func (e *Extension) apply(c *cobra.Command, action, file string, line int, fn func(*editor.Session) error) error {
	ctx := c.Context()
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)

	var err error
	defer func() {
		log.Event("edit:"+action, action).
			Author(cmd.Author()).
			File(file).
			Line(line).
			Detail("dry_run", dryRun).
			Write(err)
	}()

	if err = e.s.Open(ctx, file); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("%s %q: %w", action, file, err))
	}
	if err = fn(e.s); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("%s %q: %w", action, file, err))
	}

	res := Result{File: file, Lines: len(e.s.Lines())}
	if showDiff {
		var d diff.Result
		if d, err = e.s.Diff(ctx); err != nil {
			return cmd.PrintJSONError(fmt.Errorf("%s %q: %w", action, file, err))
		}
		res.Diff = d.Diff
		if !cmd.JSON() {
			fmt.Fprint(cmd.Out(), d.Format(false))
		}
	}

	if dryRun {
		if !cmd.JSON() && !showDiff {
			for _, l := range e.s.Lines() {
				fmt.Fprintln(cmd.Out(), l)
			}
		}
		return cmd.PrintJSON(res)
	}

	if err = e.s.Save(ctx, ""); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("%s %q: %w", action, file, err))
	}
	res.Saved = true
	return cmd.PrintJSON(res)
}

func parsePosition(lineArg, symArg string) (line, sym int, err error) {
	if line, err = strconv.Atoi(lineArg); err != nil {
		return 0, 0, fmt.Errorf("invalid line index %q", lineArg)
	}
	if sym, err = strconv.Atoi(symArg); err != nil {
		return 0, 0, fmt.Errorf("invalid symbol index %q", symArg)
	}
	return line, sym, nil
}
