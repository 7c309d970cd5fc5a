// Package app composes the web modules into a single handler.
package app

import (
	"fmt"
	"net/http"

	"github.com/arthajobs/web/internal/access"
	"github.com/arthajobs/web/internal/session/domain"
	"github.com/arthajobs/web/internal/web/module"
	"github.com/arthajobs/web/internal/web/routepath"
)

// Protected pairs a module with the roles allowed to reach it. An empty role
// set means any signed-in user.
type Protected struct {
	Module module.Module
	Roles  []domain.Role
}

// ComposeInput carries everything Compose needs to assemble the handler.
type ComposeInput struct {
	Dependencies module.Dependencies
	Public       []module.Module
	Protected    []Protected
}

// Compose mounts every module on a root mux and wraps protected mounts in
// the access guard. Prefixes must be unique across all modules.
func Compose(input ComposeInput) (http.Handler, error) {
	if input.Dependencies.Sessions == nil {
		return nil, fmt.Errorf("compose: sessions dependency is required")
	}

	root := http.NewServeMux()
	seen := make(map[string]string)

	register := func(id string, mount module.Mount, handler http.Handler) error {
		if len(mount.Prefixes) == 0 {
			return fmt.Errorf("compose: module %q mounts no prefixes", id)
		}
		for _, prefix := range mount.Prefixes {
			if owner, dup := seen[prefix]; dup {
				return fmt.Errorf("compose: prefix %q claimed by both %q and %q", prefix, owner, id)
			}
			seen[prefix] = id
			root.Handle(prefix, handler)
		}
		return nil
	}

	for _, m := range input.Public {
		mount, err := m.Mount(input.Dependencies)
		if err != nil {
			return nil, fmt.Errorf("compose: mount %q: %w", m.ID(), err)
		}
		if err := register(m.ID(), mount, mount.Handler); err != nil {
			return nil, err
		}
	}

	for _, p := range input.Protected {
		mount, err := p.Module.Mount(input.Dependencies)
		if err != nil {
			return nil, fmt.Errorf("compose: mount %q: %w", p.Module.ID(), err)
		}
		guarded := Guard(input.Dependencies.Sessions, p.Roles, mount.Handler)
		if err := register(p.Module.ID(), mount, guarded); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// Guard enforces the access decision for a protected mount before the
// module handler runs. Anonymous visitors are sent to the login page;
// signed-in users lacking a required role are sent home.
func Guard(sessions module.Sessions, roles []domain.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, present := sessions.Current()
		switch access.Decide(session, present, roles) {
		case access.DecisionAllow:
			next.ServeHTTP(w, r)
		case access.DecisionRedirectToLogin:
			http.Redirect(w, r, routepath.Login, http.StatusSeeOther)
		default:
			http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
		}
	})
}
