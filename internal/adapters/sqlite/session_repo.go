// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/atelier/internal/ports/secondary"
)

// SessionRepository implements secondary.SessionStore with SQLite.
// The table holds at most one row (id = 1).
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SQLite session repository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Current returns the stored session or secondary.ErrNoSession.
func (r *SessionRepository) Current(ctx context.Context) (*secondary.SessionRecord, error) {
	var createdAt time.Time

	record := &secondary.SessionRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT token, role, user_id, email, created_at FROM sessions WHERE id = 1",
	).Scan(&record.Token, &record.Role, &record.UserID, &record.Email, &createdAt)

	if err == sql.ErrNoRows {
		return nil, secondary.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// Save replaces the stored session.
func (r *SessionRepository) Save(ctx context.Context, session *secondary.SessionRecord) error {
	if session.Token == "" {
		return fmt.Errorf("session token must be set")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sessions (id, token, role, user_id, email, created_at)
		 VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		session.Token, session.Role, session.UserID, session.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes the stored session.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Ensure SessionRepository implements the interface
var _ secondary.SessionStore = (*SessionRepository)(nil)
