// Package core provides the core extension for lined.
// It registers commands: edit, serve, config, version, log.
package core

import (
	"github.com/jpl-au/lined/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Sessionless   = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Init keeps the extension context; serve needs it to bind every
// extension's tools to the session.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the session front ends and the housekeeping commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newEditCmd(),
		e.newServeCmd(),
		newConfigCmd(),
		newVersionCmd(),
		newLogCmd(),
	}
}

// MCPTools returns nil. The front ends are not tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoSessionCommands returns commands that never touch the buffer.
// config: must run even when the config on disk fails validation.
// version, log: read-only reporting.
func (e *Extension) NoSessionCommands() []string {
	return []string{"config", "version", "log"}
}
