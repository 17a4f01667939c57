package app

import (
	"context"
	"testing"

	"github.com/example/atelier/internal/ports/secondary"
)

func TestListActivity(t *testing.T) {
	log := &mockActivityLog{}
	for _, action := range []string{"login", "request", "advance"} {
		_ = log.Record(context.Background(), &secondary.ActivityRecord{Action: action, RequestID: "r-" + action})
	}
	service := NewActivityService(log)

	entries, err := service.ListActivity(context.Background(), 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Action != "advance" || entries[1].Action != "request" {
		t.Errorf("expected newest first, got %s, %s", entries[0].Action, entries[1].Action)
	}
	if entries[0].RequestID != "r-advance" {
		t.Errorf("expected request id to be kept, got %q", entries[0].RequestID)
	}
}
