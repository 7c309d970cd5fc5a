// Package module defines the contracts web feature modules implement.
package module

import (
	"net/http"

	"github.com/arthajobs/web/internal/session/domain"
)

// Sessions is the read side of the process session context.
type Sessions interface {
	Current() (domain.Session, bool)
}

// Dependencies carries shared seams handed to every module at mount time.
type Dependencies struct {
	Sessions Sessions
}

// Mount describes where a module hangs off the root mux. Handler patterns
// are written against full request paths; each prefix is registered verbatim.
type Mount struct {
	Prefixes []string
	Handler  http.Handler
}

// Module is one mountable feature area of the web client.
type Module interface {
	// ID returns a stable module identifier.
	ID() string
	// Mount wires the module's routes.
	Mount(deps Dependencies) (Mount, error)
}
