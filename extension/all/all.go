// Package all imports all built-in lined extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each registers itself via init()
	_ "github.com/jpl-au/lined/extension/core"
	_ "github.com/jpl-au/lined/extension/document"
	_ "github.com/jpl-au/lined/extension/edit"
	_ "github.com/jpl-au/lined/extension/search"
)
