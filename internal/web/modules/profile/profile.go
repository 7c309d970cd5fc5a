// Package profile serves the profile form and pushes edits to the server.
package profile

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/arthajobs/web/internal/jobboard"
	"github.com/arthajobs/web/internal/session/domain"
	"github.com/arthajobs/web/internal/web/module"
	"github.com/arthajobs/web/internal/web/platform/pagerender"
	"github.com/arthajobs/web/internal/web/routepath"
	"github.com/arthajobs/web/internal/web/templates"

	weberrors "github.com/arthajobs/web/internal/web/platform/errors"
)

// Board reads and pushes profile data on the remote job board.
type Board interface {
	Profile(ctx context.Context) (domain.Identity, error)
	UpdateProfile(ctx context.Context, input jobboard.ProfileInput) (domain.Identity, error)
}

// Sessions reads the current session and refreshes its identity after a
// successful server-side update.
type Sessions interface {
	Current() (domain.Session, bool)
	Login(ctx context.Context, identity domain.Identity, token string) error
}

// Module serves the profile page.
type Module struct {
	board    Board
	sessions Sessions
}

// New returns the profile module.
func New(board Board, sessions Sessions) *Module {
	return &Module{board: board, sessions: sessions}
}

// ID identifies the module.
func (m *Module) ID() string { return "profile" }

// Mount wires the profile routes.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Profile, m.form)
	mux.HandleFunc("POST "+routepath.Profile, m.update)
	return module.Mount{Prefixes: []string{routepath.Profile}, Handler: mux}, nil
}

func (m *Module) form(w http.ResponseWriter, r *http.Request) {
	session, present := m.sessions.Current()
	identity := session.Identity
	// Prefer the server's canonical profile; the session copy covers outages.
	if fetched, err := m.board.Profile(r.Context()); err == nil {
		identity = fetched
		if err := m.sessions.Login(r.Context(), identity, session.Token); err == nil {
			session, present = m.sessions.Current()
		}
	} else if errors.Is(err, jobboard.ErrSessionExpired) {
		http.Redirect(w, r, routepath.Login+"?expired=1", http.StatusSeeOther)
		return
	}
	m.render(w, r, http.StatusOK, templates.ViewerFor(session, present), viewFor(identity))
}

func (m *Module) update(w http.ResponseWriter, r *http.Request) {
	session, present := m.sessions.Current()
	viewer := templates.ViewerFor(session, present)
	if err := r.ParseForm(); err != nil {
		view := viewFor(session.Identity)
		view.Error = "invalid form submission"
		m.render(w, r, http.StatusBadRequest, viewer, view)
		return
	}
	input := jobboard.ProfileInput{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Email:    session.Identity.Email,
		Phone:    strings.TrimSpace(r.PostFormValue("phone")),
		Location: strings.TrimSpace(r.PostFormValue("location")),
		Bio:      strings.TrimSpace(r.PostFormValue("bio")),
		Skills:   splitSkills(r.PostFormValue("skills")),
	}
	view := templates.ProfileView{
		Name:     input.Name,
		Email:    input.Email,
		Role:     session.Identity.Role,
		Phone:    input.Phone,
		Location: input.Location,
		Bio:      input.Bio,
		Skills:   r.PostFormValue("skills"),
	}
	if input.Name == "" {
		view.Error = "name is required"
		m.render(w, r, http.StatusBadRequest, viewer, view)
		return
	}
	identity, err := m.board.UpdateProfile(r.Context(), input)
	if err != nil {
		if errors.Is(err, jobboard.ErrSessionExpired) {
			http.Redirect(w, r, routepath.Login+"?expired=1", http.StatusSeeOther)
			return
		}
		view.Error = err.Error()
		m.render(w, r, weberrors.HTTPStatus(err), viewer, view)
		return
	}
	// Refresh the in-process identity under the existing token so the rest
	// of the UI reflects the server's canonical profile.
	if err := m.sessions.Login(r.Context(), identity, session.Token); err != nil {
		view.Error = "profile saved, but the local session could not be refreshed"
		m.render(w, r, http.StatusInternalServerError, viewer, view)
		return
	}
	refreshed := viewFor(identity)
	refreshed.Notice = "Profile updated successfully!"
	m.render(w, r, http.StatusOK, templates.ViewerFor(m.sessions.Current()), refreshed)
}

func (m *Module) render(w http.ResponseWriter, r *http.Request, status int, viewer templates.Viewer, view templates.ProfileView) {
	pagerender.WritePage(w, r, status, "My Profile", viewer, templates.ProfilePage(view))
}

func viewFor(identity domain.Identity) templates.ProfileView {
	return templates.ProfileView{
		Name:     identity.Name,
		Email:    identity.Email,
		Role:     identity.Role,
		Phone:    identity.Phone,
		Location: identity.Location,
		Bio:      identity.Bio,
		Skills:   strings.Join(identity.Skills, ", "),
	}
}

func splitSkills(raw string) []string {
	var skills []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
