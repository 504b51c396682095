// log.go implements the "lined log" command: the most recent audit entries,
// newest first.

package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jpl-au/lined/cmd"
	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/log"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent audit log entries",
		Long: `Show the most recent audit log entries, newest first.

  lined log          # last 20 entries
  lined log -n 100`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Number of entries to show")
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	if limit < 1 {
		return cmd.PrintJSONError(fmt.Errorf("log: limit must be positive, got %d", limit))
	}

	recs, err := log.Recent(limit)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("log: %w", err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(recs)
	}
	writeRecords(cmd.Out(), recs)
	return nil
}

func writeRecords(w io.Writer, recs []log.Record) {
	for _, r := range recs {
		status := "ok"
		if !r.Success {
			status = "failed: " + r.Error
		}
		fields := []string{humanize.Time(r.Time), r.Source}
		if r.File != "" {
			fields = append(fields, r.File)
		}
		if r.Author != "" {
			fields = append(fields, "by "+r.Author)
		}
		fmt.Fprintf(w, "%s  %s\n", strings.Join(fields, "  "), status)
	}
}
