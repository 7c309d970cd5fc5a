// Package access decides whether the current session may reach a
// role-restricted view.
package access

import (
	"github.com/arthajobs/web/internal/session/domain"
)

// Decision is the outcome of evaluating a session against a view's
// required-role set.
type Decision int

const (
	// DecisionUnspecified represents an invalid decision value.
	DecisionUnspecified Decision = iota
	// DecisionAllow admits the session to the view.
	DecisionAllow
	// DecisionRedirectToLogin sends an anonymous visitor to the login view.
	DecisionRedirectToLogin
	// DecisionRedirectToUnauthorized bounces a signed-in user whose role is
	// not admitted. The web layer routes this to the home view.
	DecisionRedirectToUnauthorized
)

// String returns a stable label for logging.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectToLogin:
		return "redirect_to_login"
	case DecisionRedirectToUnauthorized:
		return "redirect_to_unauthorized"
	default:
		return "unspecified"
	}
}

// Decide evaluates a session against requiredRoles. An empty requiredRoles
// set admits any signed-in identity. The decision is a pure function of its
// inputs: no caching, no retries, no network.
func Decide(session domain.Session, present bool, requiredRoles []domain.Role) Decision {
	if !present {
		return DecisionRedirectToLogin
	}
	if len(requiredRoles) == 0 {
		return DecisionAllow
	}
	for _, role := range requiredRoles {
		if session.Identity.Role == role {
			return DecisionAllow
		}
	}
	return DecisionRedirectToUnauthorized
}
