// context.go defines the Context interface extensions use to reach the
// shared editing session.
//
// Extensions receive Context during Init(), not at construction: they
// register before the session exists.

package extension

import (
	"github.com/jpl-au/lined/internal/config"
	"github.com/jpl-au/lined/internal/editor"
)

// Context provides extensions controlled access to lined internals.
type Context interface {
	// Session returns the editing session shared by every extension in this
	// process. One-shot commands load into it, edit, and save; the
	// interactive and MCP front ends keep it for their whole lifetime.
	Session() *editor.Session

	// Config returns the loaded user configuration.
	Config() *config.Config
}

type extContext struct {
	session *editor.Session
	cfg     *config.Config
}

// NewContext creates a new extension context.
func NewContext(s *editor.Session, cfg *config.Config) Context {
	return &extContext{session: s, cfg: cfg}
}

func (c *extContext) Session() *editor.Session { return c.session }

func (c *extContext) Config() *config.Config { return c.cfg }
