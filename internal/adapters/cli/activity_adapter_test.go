package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/atelier/internal/ports/primary"
)

// mockActivityService implements primary.ActivityService for testing
type mockActivityService struct {
	entries   []*primary.ActivityEntry
	lastLimit int
}

func (m *mockActivityService) ListActivity(ctx context.Context, limit int) ([]*primary.ActivityEntry, error) {
	m.lastLimit = limit
	return m.entries, nil
}

func TestActivityAdapter_List(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockActivityService{entries: []*primary.ActivityEntry{
		{CreatedAt: "2026-10-16T09:00:00Z", Actor: "ben@example.com", Action: "rate", EntityID: "4", Detail: "rating=4", Outcome: "ok", RequestID: "req-1"},
	}}

	if _, err := NewActivityAdapter(mock, &buf).List(context.Background(), 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.lastLimit != 20 {
		t.Errorf("expected limit 20, got %d", mock.lastLimit)
	}
	for _, want := range []string{"rate", "rating=4", "req-1", "ben@example.com"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	if _, err := NewActivityAdapter(&mockActivityService{}, &buf).List(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "No activity recorded.\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
