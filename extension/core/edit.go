// edit.go implements the "lined edit" command, the interactive front end.
//
// Prompts are shown only when stdin is a terminal, so a script piped into
// "lined edit" produces nothing but command output.

package core

import (
	"fmt"
	"os"

	"github.com/jpl-au/lined/cmd"
	"github.com/jpl-au/lined/internal/log"
	"github.com/jpl-au/lined/internal/repl"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Start an interactive editing session",
		Long: `Start an interactive editing session. With a file, the buffer starts with its
lines and save/load/diff default to it; a file that does not exist yet is
created on the first save.

Commands (name or number):
  1 append <text>            6 insert <line> <symbol> <text>
  2 newline                  7 search <text>
  3 save [file]              8 delete <line> <symbol> <count>
  4 load [file]              9 clear
  5 print                   10 replace <line> <symbol> <text>
 11 undo                    12 redo
    diff  last  info  help   0 quit

  lined edit notes.txt
  printf 'append hi\nsave out.txt\n' | lined edit`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runEdit,
	}
}

func (e *Extension) runEdit(c *cobra.Command, args []string) error {
	ctx := c.Context()
	s := e.ctx.Session()

	if len(args) == 1 {
		err := s.Open(ctx, args[0])
		log.Event("core:edit", "open").Author(cmd.Author()).File(args[0]).Write(err)
		if err != nil {
			return fmt.Errorf("edit %q: %w", args[0], err)
		}
	}

	r := repl.New(s, cmd.In(), cmd.Out(), repl.Options{
		Interactive: isTerminal(cmd.In()),
		Colour:      isTerminal(cmd.Out()),
		Author:      cmd.Author(),
		MaxLine:     e.ctx.Config().MaxLineLength(),
	})
	return r.Run(ctx)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
