/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until first
// command execution. The editing session is created once, from the loaded
// config, and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/lined/extension"
	"github.com/jpl-au/lined/internal/config"
	"github.com/jpl-au/lined/internal/editor"
	"github.com/jpl-au/lined/internal/log"
)

// noSessionCommands lists commands that bypass session creation.
// Built from the bootstrap commands plus extension-declared sessionless commands.
var noSessionCommands map[string]bool

func buildNoSessionCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Sessionless); ok {
			for _, name := range s.NoSessionCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions creates the session and injects it into extensions.
// A config that fails validation stops here, before any edit is attempted.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = fmt.Errorf("loading config: %w", err)
			return
		}

		s := editor.New(editor.Options{
			Capacity:      cfg.HistoryCapacity(),
			MaxLineLength: cfg.MaxLineLength(),
		})
		log.SetSession(s.ID())

		extContext = extension.NewContext(s, cfg)
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		noSessionCommands = buildNoSessionCommands()
	})
}
