package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/atelier/internal/ctxutil"
	"github.com/example/atelier/internal/ports/secondary"
)

// ActivityRepository implements secondary.ActivityLog with SQLite.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new SQLite activity repository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Record appends an entry. Missing ID, RequestID and Actor are filled from
// a fresh uuid and the context respectively.
func (r *ActivityRepository) Record(ctx context.Context, entry *secondary.ActivityRecord) error {
	if entry.Action == "" {
		return fmt.Errorf("activity action must be set")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.RequestID == "" {
		entry.RequestID = ctxutil.RequestIDFromContext(ctx)
	}
	if entry.Actor == "" {
		entry.Actor = ctxutil.ActorFromContext(ctx)
	}
	if entry.Outcome == "" {
		entry.Outcome = "ok"
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO activity (id, request_id, actor, action, entity_id, detail, outcome) VALUES (?, ?, ?, ?, ?, ?, ?)",
		entry.ID, entry.RequestID, entry.Actor, entry.Action, entry.EntityID, entry.Detail, entry.Outcome,
	)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries first.
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*secondary.ActivityRecord, error) {
	query := "SELECT id, request_id, actor, action, entity_id, detail, outcome, created_at FROM activity ORDER BY created_at DESC, rowid DESC"
	args := []any{}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.ActivityRecord
	for rows.Next() {
		var createdAt time.Time
		record := &secondary.ActivityRecord{}
		err := rows.Scan(&record.ID, &record.RequestID, &record.Actor, &record.Action,
			&record.EntityID, &record.Detail, &record.Outcome, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		entries = append(entries, record)
	}

	return entries, rows.Err()
}

// Ensure ActivityRepository implements the interface
var _ secondary.ActivityLog = (*ActivityRepository)(nil)
