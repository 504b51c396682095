// Package extension provides the plugin architecture for lined. Extensions
// group related commands and MCP tools and register at init time, so a new
// feature never has to touch the root command.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for lined extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared session and config before
// their commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Sessionless is an optional interface for extensions with commands that
// must work without a session, such as config, which has to run even when
// the config on disk is invalid. Commands returned by NoSessionCommands()
// do not trigger session creation in PersistentPreRunE.
type Sessionless interface {
	NoSessionCommands() []string
}
