// print.go implements the "lined print" command.
//
// Terminal output of Markdown files gets glamour rendering; pipes, redirects
// and --raw get the lines exactly as stored. -n numbers lines with the same
// zero-based indices the edit commands take.

package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/lined/cmd"
	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/log"
	"github.com/jpl-au/lined/internal/printer"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newPrintCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "print <file>",
		Short: "Print a file's lines",
		Long: `Load a file into the buffer and print it.

  lined print notes.txt
  lined print -n notes.txt       # zero-based line numbers
  lined print -l 2:5 notes.txt   # lines 2 to 5 inclusive`,
		Args: cobra.ExactArgs(1),
		RunE: e.runPrint,
	}
	c.Flags().BoolP(extension.FlagNumber, "n", false, "Number output lines")
	c.Flags().StringP(extension.FlagLines, "l", "", "Line range (e.g., 2:5, 3:, :4)")
	c.Flags().Bool(extension.FlagRaw, false, "Output raw text without rendering")
	return c
}

func (e *Extension) runPrint(c *cobra.Command, args []string) error {
	ctx := c.Context()
	numbers, _ := c.Flags().GetBool(extension.FlagNumber)
	lineRange, _ := c.Flags().GetString(extension.FlagLines)
	raw, _ := c.Flags().GetBool(extension.FlagRaw)

	opts := printer.Options{LineNumbers: numbers}
	if lineRange != "" {
		r, err := printer.ParseRange(lineRange)
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		opts.Lines = r
	}

	p := args[0]
	var err error
	defer func() {
		log.Event("document:print", "read").Author(cmd.Author()).File(p).Write(err)
	}()

	if err = e.s.Load(ctx, p); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("print %q: %w", p, err))
	}

	if cmd.JSON() {
		var res printer.Result
		if res, err = e.s.Print(ctx, io.Discard, opts); err != nil {
			return cmd.PrintJSONError(fmt.Errorf("print %q: %w", p, err))
		}
		return cmd.PrintJSON(res)
	}

	if !raw && !numbers && isMarkdown(p) && term.IsTerminal(int(os.Stdout.Fd())) {
		var buf bytes.Buffer
		if _, err = e.s.Print(ctx, &buf, opts); err != nil {
			return cmd.PrintJSONError(fmt.Errorf("print %q: %w", p, err))
		}
		if rendered, renderErr := glamour.Render(buf.String(), "dark"); renderErr == nil {
			fmt.Fprint(cmd.Out(), rendered)
			return nil
		}
	}

	if _, err = e.s.Print(ctx, cmd.Out(), opts); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("print %q: %w", p, err))
	}
	return nil
}

func isMarkdown(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
