// info.go implements the "lined info" command.

package document

import (
	"fmt"

	"github.com/jpl-au/lined/cmd"
	"github.com/jpl-au/lined/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show line count and size of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			p := args[0]
			err := e.s.Load(c.Context(), p)
			log.Event("document:info", "read").Author(cmd.Author()).File(p).Write(err)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("info %q: %w", p, err))
			}

			info := e.s.Info()
			if cmd.JSON() {
				return cmd.PrintJSON(info)
			}
			info.Write(cmd.Out())
			return nil
		},
	}
}
