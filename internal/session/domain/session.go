package domain

import (
	"errors"
	"strings"
)

// Role identifies which side of the marketplace a signed-in user is on.
// Values travel verbatim on the wire and must match the remote API.
type Role string

const (
	// RoleJobSeeker indicates a user who browses and applies to postings.
	RoleJobSeeker Role = "jobseeker"
	// RoleEmployer indicates a user who posts jobs and reviews applications.
	RoleEmployer Role = "employer"
)

var (
	// ErrInvalidRole indicates a missing or unknown role value.
	ErrInvalidRole = errors.New("role must be jobseeker or employer")
	// ErrEmptyUserID indicates a missing identity identifier.
	ErrEmptyUserID = errors.New("user id is required")
	// ErrEmptyToken indicates a missing bearer token.
	ErrEmptyToken = errors.New("bearer token is required")
)

// Valid reports whether the role is one of the known marketplace roles.
func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

// ParseRole normalizes a wire role value.
func ParseRole(value string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if !role.Valid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Identity represents the signed-in principal as reported by the server.
// Only Role participates in access control; the profile fields are display
// data refreshed wholesale from the server, never mutated locally.
type Identity struct {
	ID       string
	Name     string
	Email    string
	Role     Role
	Phone    string
	Location string
	Bio      string
	Skills   []string
}

// Session pairs an Identity with the opaque bearer token presented on every
// authenticated request. The token is handed back to the server verbatim and
// never inspected client-side. A Session is always fully formed; absence is
// represented by callers, not by a partially filled value.
type Session struct {
	Identity Identity
	Token    string
}

// NewSession validates and assembles a session from a login exchange.
func NewSession(identity Identity, token string) (Session, error) {
	identity.ID = strings.TrimSpace(identity.ID)
	if identity.ID == "" {
		return Session{}, ErrEmptyUserID
	}
	if !identity.Role.Valid() {
		return Session{}, ErrInvalidRole
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, ErrEmptyToken
	}
	return Session{Identity: identity, Token: token}, nil
}
