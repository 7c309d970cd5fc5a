// Package applications serves the role-aware applications listing.
package applications

import (
	"context"
	"errors"
	"net/http"

	"github.com/arthajobs/web/internal/jobboard"
	"github.com/arthajobs/web/internal/session/domain"
	"github.com/arthajobs/web/internal/web/module"
	"github.com/arthajobs/web/internal/web/platform/pagerender"
	"github.com/arthajobs/web/internal/web/routepath"
	"github.com/arthajobs/web/internal/web/templates"
)

// Board reads application records from the remote job board.
type Board interface {
	MyApplications(ctx context.Context) ([]jobboard.Application, error)
	EmployerApplications(ctx context.Context) ([]jobboard.Application, error)
}

// Module serves the applications page. Job seekers see the applications they
// submitted; employers see applications received on their postings.
type Module struct {
	board Board
}

// New returns the applications module.
func New(board Board) *Module {
	return &Module{board: board}
}

// ID identifies the module.
func (m *Module) ID() string { return "applications" }

// Mount wires the applications route.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Applications, func(w http.ResponseWriter, r *http.Request) {
		m.list(w, r, deps)
	})
	return module.Mount{Prefixes: []string{routepath.Applications}, Handler: mux}, nil
}

func (m *Module) list(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	session, present := deps.Sessions.Current()
	viewer := templates.ViewerFor(session, present)

	view := templates.ApplicationsView{Title: "My Applications"}
	var (
		records []jobboard.Application
		err     error
	)
	if session.Identity.Role == domain.RoleEmployer {
		view.Title = "Received Applications"
		records, err = m.board.EmployerApplications(r.Context())
	} else {
		records, err = m.board.MyApplications(r.Context())
	}
	if err != nil {
		if errors.Is(err, jobboard.ErrSessionExpired) {
			http.Redirect(w, r, routepath.Login+"?expired=1", http.StatusSeeOther)
			return
		}
		view.Error = "could not load applications: " + err.Error()
	}
	view.Applications = records
	pagerender.WritePage(w, r, http.StatusOK, view.Title, viewer, templates.ApplicationsPage(view))
}
