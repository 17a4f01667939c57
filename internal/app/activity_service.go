package app

import (
	"context"
	"fmt"

	"github.com/example/atelier/internal/ports/primary"
	"github.com/example/atelier/internal/ports/secondary"
)

// ActivityServiceImpl implements the ActivityService interface.
type ActivityServiceImpl struct {
	activity secondary.ActivityLog
}

// NewActivityService creates a new ActivityService with injected dependencies.
func NewActivityService(activity secondary.ActivityLog) *ActivityServiceImpl {
	return &ActivityServiceImpl{activity: activity}
}

// ListActivity returns the newest entries first.
func (s *ActivityServiceImpl) ListActivity(ctx context.Context, limit int) ([]*primary.ActivityEntry, error) {
	records, err := s.activity.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	entries := make([]*primary.ActivityEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.ActivityEntry{
			RequestID: r.RequestID,
			Actor:     r.Actor,
			Action:    r.Action,
			EntityID:  r.EntityID,
			Detail:    r.Detail,
			Outcome:   r.Outcome,
			CreatedAt: r.CreatedAt,
		}
	}
	return entries, nil
}

// Ensure ActivityServiceImpl implements the interface
var _ primary.ActivityService = (*ActivityServiceImpl)(nil)
