// Package auth serves the login, registration, and logout routes.
package auth

import (
	"context"
	"log"
	"net/http"

	"github.com/arthajobs/web/internal/jobboard"
	"github.com/arthajobs/web/internal/session/domain"
	"github.com/arthajobs/web/internal/web/module"
	"github.com/arthajobs/web/internal/web/platform/pagerender"
	"github.com/arthajobs/web/internal/web/routepath"
	"github.com/arthajobs/web/internal/web/templates"

	weberrors "github.com/arthajobs/web/internal/web/platform/errors"
)

// Accounts exchanges credentials with the remote job board.
type Accounts interface {
	Login(ctx context.Context, email, password string) (domain.Identity, string, error)
	Register(ctx context.Context, input jobboard.RegisterInput) (domain.Identity, string, error)
}

// Sessions is the write side of the process session context.
type Sessions interface {
	Current() (domain.Session, bool)
	Login(ctx context.Context, identity domain.Identity, token string) error
	Logout(ctx context.Context) error
}

// Module serves the authentication routes.
type Module struct {
	accounts Accounts
	sessions Sessions
}

// New returns the auth module.
func New(accounts Accounts, sessions Sessions) *Module {
	return &Module{accounts: accounts, sessions: sessions}
}

// ID identifies the module.
func (m *Module) ID() string { return "auth" }

// Mount wires the authentication routes.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Login, m.loginForm)
	mux.HandleFunc("POST "+routepath.Login, m.login)
	mux.HandleFunc("GET "+routepath.Register, m.registerForm)
	mux.HandleFunc("POST "+routepath.Register, m.register)
	mux.HandleFunc("POST "+routepath.Logout, m.logout)
	prefixes := []string{routepath.Login, routepath.Register, routepath.Logout}
	return module.Mount{Prefixes: prefixes, Handler: mux}, nil
}

func (m *Module) loginForm(w http.ResponseWriter, r *http.Request) {
	if _, present := m.sessions.Current(); present {
		http.Redirect(w, r, routepath.Dashboard, http.StatusSeeOther)
		return
	}
	view := templates.LoginView{}
	switch {
	case r.URL.Query().Get("expired") != "":
		view.Notice = "Your session has expired. Please sign in again."
	case r.URL.Query().Get("notice") == "apply":
		view.Notice = "Please login to apply."
	}
	m.renderLogin(w, r, http.StatusOK, view)
}

func (m *Module) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		m.renderLogin(w, r, http.StatusBadRequest, templates.LoginView{Error: "invalid form submission"})
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		m.renderLogin(w, r, http.StatusBadRequest, templates.LoginView{
			Email: email,
			Error: "email and password are required",
		})
		return
	}
	identity, token, err := m.accounts.Login(r.Context(), email, password)
	if err != nil {
		m.renderLogin(w, r, weberrors.HTTPStatus(err), templates.LoginView{Email: email, Error: err.Error()})
		return
	}
	if err := m.sessions.Login(r.Context(), identity, token); err != nil {
		log.Printf("persist session: %v", err)
		m.renderLogin(w, r, http.StatusInternalServerError, templates.LoginView{
			Email: email,
			Error: "could not start a session",
		})
		return
	}
	http.Redirect(w, r, routepath.Dashboard, http.StatusSeeOther)
}

func (m *Module) registerForm(w http.ResponseWriter, r *http.Request) {
	if _, present := m.sessions.Current(); present {
		http.Redirect(w, r, routepath.Dashboard, http.StatusSeeOther)
		return
	}
	m.renderRegister(w, r, http.StatusOK, templates.RegisterView{Role: string(domain.RoleJobSeeker)})
}

func (m *Module) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		m.renderRegister(w, r, http.StatusBadRequest, templates.RegisterView{Error: "invalid form submission"})
		return
	}
	input := jobboard.RegisterInput{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
	}
	view := templates.RegisterView{Name: input.Name, Email: input.Email, Role: input.Role}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		view.Error = "name, email, and password are required"
		m.renderRegister(w, r, http.StatusBadRequest, view)
		return
	}
	if _, err := domain.ParseRole(input.Role); err != nil {
		view.Error = err.Error()
		m.renderRegister(w, r, http.StatusBadRequest, view)
		return
	}
	identity, token, err := m.accounts.Register(r.Context(), input)
	if err != nil {
		view.Error = err.Error()
		m.renderRegister(w, r, weberrors.HTTPStatus(err), view)
		return
	}
	if err := m.sessions.Login(r.Context(), identity, token); err != nil {
		log.Printf("persist session: %v", err)
		view.Error = "could not start a session"
		m.renderRegister(w, r, http.StatusInternalServerError, view)
		return
	}
	http.Redirect(w, r, routepath.Dashboard, http.StatusSeeOther)
}

func (m *Module) logout(w http.ResponseWriter, r *http.Request) {
	if err := m.sessions.Logout(r.Context()); err != nil {
		log.Printf("clear session: %v", err)
	}
	http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
}

func (m *Module) renderLogin(w http.ResponseWriter, r *http.Request, status int, view templates.LoginView) {
	pagerender.WritePage(w, r, status, "Login", templates.Viewer{}, templates.LoginPage(view))
}

func (m *Module) renderRegister(w http.ResponseWriter, r *http.Request, status int, view templates.RegisterView) {
	pagerender.WritePage(w, r, status, "Register", templates.Viewer{}, templates.RegisterPage(view))
}
