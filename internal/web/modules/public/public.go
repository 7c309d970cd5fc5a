// Package public serves the unauthenticated landing page.
package public

import (
	"net/http"

	"github.com/arthajobs/web/internal/web/module"
	"github.com/arthajobs/web/internal/web/platform/pagerender"
	"github.com/arthajobs/web/internal/web/routepath"
	"github.com/arthajobs/web/internal/web/templates"
)

// Module serves the landing page.
type Module struct{}

// New returns the public module.
func New() *Module { return &Module{} }

// ID identifies the module.
func (m *Module) ID() string { return "public" }

// Mount wires the landing route.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		viewer := templates.ViewerFor(deps.Sessions.Current())
		pagerender.WritePage(w, r, http.StatusOK, "Home", viewer, templates.Home())
	})
	return module.Mount{Prefixes: []string{routepath.Root}, Handler: mux}, nil
}
