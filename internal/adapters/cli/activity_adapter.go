package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/atelier/internal/ports/primary"
)

// ActivityAdapter is a thin adapter that translates CLI operations to ActivityService calls.
type ActivityAdapter struct {
	service primary.ActivityService
	out     io.Writer
}

// NewActivityAdapter creates a new ActivityAdapter with the given service.
func NewActivityAdapter(service primary.ActivityService, out io.Writer) *ActivityAdapter {
	return &ActivityAdapter{
		service: service,
		out:     out,
	}
}

// List shows the newest activity entries.
func (a *ActivityAdapter) List(ctx context.Context, limit int) ([]*primary.ActivityEntry, error) {
	entries, err := a.service.ListActivity(ctx, limit)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No activity recorded.")
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tACTOR\tACTION\tENTITY\tDETAIL\tOUTCOME\tREQUEST")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt,
			orDash(e.Actor),
			e.Action,
			orDash(e.EntityID),
			orDash(e.Detail),
			e.Outcome,
			e.RequestID,
		)
	}
	w.Flush()
	return entries, nil
}
