// Package dashboard serves the signed-in landing page.
package dashboard

import (
	"net/http"

	"github.com/arthajobs/web/internal/web/module"
	"github.com/arthajobs/web/internal/web/platform/pagerender"
	"github.com/arthajobs/web/internal/web/routepath"
	"github.com/arthajobs/web/internal/web/templates"
)

// Module serves the dashboard.
type Module struct{}

// New returns the dashboard module.
func New() *Module { return &Module{} }

// ID identifies the module.
func (m *Module) ID() string { return "dashboard" }

// Mount wires the dashboard route. The access guard guarantees a session is
// present by the time the handler runs.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Dashboard, func(w http.ResponseWriter, r *http.Request) {
		session, present := deps.Sessions.Current()
		viewer := templates.ViewerFor(session, present)
		content := templates.DashboardPage(session.Identity)
		pagerender.WritePage(w, r, http.StatusOK, "Dashboard", viewer, content)
	})
	return module.Mount{Prefixes: []string{routepath.Dashboard}, Handler: mux}, nil
}
