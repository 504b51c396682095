// Package document provides the document extension: reading a file through
// the buffer and moving the buffer to and from disk.
// Registers commands: print, info.
//
// Each command file is separated to isolate its flag handling and output
// formatting.

package document

import (
	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/editor"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the document extension.
type Extension struct {
	s *editor.Session
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "document".
func (e *Extension) Name() string { return "document" }

// Init receives the shared session.
func (e *Extension) Init(ctx extension.Context) error {
	e.s = ctx.Session()
	return nil
}

// Commands returns print and info.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newPrintCmd(),
		e.newInfoCmd(),
	}
}
