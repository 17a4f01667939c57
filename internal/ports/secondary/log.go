package secondary

import "context"

// ActivityLog defines the secondary port for the local audit trail of mutating calls.
// Implementations take the request id from context.
type ActivityLog interface {
	// Record appends an entry to the log.
	Record(ctx context.Context, entry *ActivityRecord) error

	// ListRecent returns the newest entries first, at most limit of them.
	ListRecent(ctx context.Context, limit int) ([]*ActivityRecord, error)
}

// ActivityRecord represents an activity entry as stored in persistence.
type ActivityRecord struct {
	ID        string
	RequestID string
	Actor     string // email of the session that issued the call, empty when logged out
	Action    string // login, logout, request, advance, rate, update_type, delete_type
	EntityID  string
	Detail    string
	Outcome   string // "ok" or the error text
	CreatedAt string
}

// Notifier defines the secondary port for user-visible toasts.
type Notifier interface {
	// Notify shows a message at the given level (success, info, error).
	Notify(level, message string)
}
