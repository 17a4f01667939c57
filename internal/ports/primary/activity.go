package primary

import "context"

// ActivityService defines the primary port for reading the local activity log.
type ActivityService interface {
	// ListActivity returns the newest entries first.
	ListActivity(ctx context.Context, limit int) ([]*ActivityEntry, error)
}

// ActivityEntry represents one logged mutating call.
type ActivityEntry struct {
	RequestID string
	Actor     string
	Action    string
	EntityID  string
	Detail    string
	Outcome   string
	CreatedAt string
}
