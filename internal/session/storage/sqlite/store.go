// Package sqlite provides a SQLite-backed credential store implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/arthajobs/web/internal/platform/storage/sqlitemigrate"
	"github.com/arthajobs/web/internal/session/domain"
	"github.com/arthajobs/web/internal/session/storage"
	"github.com/arthajobs/web/internal/session/storage/sqlite/migrations"
)

// slotName keys the single durable session record.
const slotName = "current"

// Store persists the credential slot in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite credential store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load restores the persisted session. Any malformed slot contents report
// storage.ErrNoSession rather than a decode failure.
func (s *Store) Load(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Session{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT token, user_id, name, email, role, phone, location, bio, skills
FROM session_slot
WHERE slot = ?`, slotName)

	var token, userID, name, email, role, phone, location, bio, skillsJSON string
	if err := row.Scan(&token, &userID, &name, &email, &role, &phone, &location, &bio, &skillsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Session{}, storage.ErrNoSession
		}
		return domain.Session{}, fmt.Errorf("read session slot: %w", err)
	}

	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return domain.Session{}, storage.ErrNoSession
	}
	var skills []string
	if err := json.Unmarshal([]byte(skillsJSON), &skills); err != nil {
		return domain.Session{}, storage.ErrNoSession
	}

	session, err := domain.NewSession(domain.Identity{
		ID:       userID,
		Name:     name,
		Email:    email,
		Role:     parsedRole,
		Phone:    phone,
		Location: location,
		Bio:      bio,
		Skills:   skills,
	}, token)
	if err != nil {
		return domain.Session{}, storage.ErrNoSession
	}
	return session, nil
}

// Save replaces the slot contents with the given session.
func (s *Store) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	skills := session.Identity.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO session_slot (slot, token, user_id, name, email, role, phone, location, bio, skills, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET
    token = excluded.token,
    user_id = excluded.user_id,
    name = excluded.name,
    email = excluded.email,
    role = excluded.role,
    phone = excluded.phone,
    location = excluded.location,
    bio = excluded.bio,
    skills = excluded.skills,
    updated_at = excluded.updated_at`,
		slotName,
		session.Token,
		session.Identity.ID,
		session.Identity.Name,
		session.Identity.Email,
		string(session.Identity.Role),
		session.Identity.Phone,
		session.Identity.Location,
		session.Identity.Bio,
		string(skillsJSON),
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}
	return nil
}

// Clear empties the slot. Clearing an already-empty slot succeeds.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM session_slot WHERE slot = ?", slotName); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}
