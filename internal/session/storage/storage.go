// Package storage defines the persistence contract for the credential slot.
package storage

import (
	"context"
	"errors"

	"github.com/arthajobs/web/internal/session/domain"
)

// ErrNoSession indicates the durable slot is empty or unreadable. Callers
// treat it as "signed out", never as a user-facing failure.
var ErrNoSession = errors.New("no stored session")

// CredentialStore persists at most one session across process restarts.
type CredentialStore interface {
	// Load returns the persisted session, or ErrNoSession when the slot is
	// empty or its contents cannot be restored into a valid session.
	Load(ctx context.Context) (domain.Session, error)
	// Save replaces the slot contents with the given session.
	Save(ctx context.Context, session domain.Session) error
	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
