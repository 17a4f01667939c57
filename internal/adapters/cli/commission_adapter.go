// Package cli contains thin adapters that translate CLI operations to service calls
// and render the results.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/atelier/internal/ports/primary"
)

// CommissionAdapter is a thin adapter that translates CLI operations to CommissionService calls.
type CommissionAdapter struct {
	service primary.CommissionService
	out     io.Writer
}

// NewCommissionAdapter creates a new CommissionAdapter with the given service.
func NewCommissionAdapter(service primary.CommissionService, out io.Writer) *CommissionAdapter {
	return &CommissionAdapter{
		service: service,
		out:     out,
	}
}

// List shows every commission of the logged-in account.
func (a *CommissionAdapter) List(ctx context.Context) (*primary.CommissionList, error) {
	list, err := a.service.ListCommissions(ctx)
	if err != nil {
		return nil, readFailure(a.out, err, "")
	}
	a.render(list)
	return list, nil
}

// Badge prints the number of commissions not yet completed.
func (a *CommissionAdapter) Badge(ctx context.Context) (int, error) {
	list, err := a.service.ListCommissions(ctx)
	if err != nil {
		return 0, readFailure(a.out, err, "")
	}
	fmt.Fprintf(a.out, "%d active commission%s\n", list.BadgeCount, plural(list.BadgeCount))
	return list.BadgeCount, nil
}

// Request submits a commission and shows the refreshed list.
func (a *CommissionAdapter) Request(ctx context.Context, req primary.RequestCommissionRequest) (*primary.RequestCommissionResponse, error) {
	resp, err := a.service.RequestCommission(ctx, req)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "Commission #%d requested: %s (%s)\n\n", resp.Commission.ID, resp.Commission.Title, resp.Commission.PriceLabel)
	a.render(resp.List)
	return resp, nil
}

// Advance performs the commission's action. When the commission needs a
// rating and rating is non-zero, the rating is submitted in the same step.
func (a *CommissionAdapter) Advance(ctx context.Context, commissionID, rating int) (*primary.AdvanceStageResponse, error) {
	resp, err := a.service.AdvanceStage(ctx, commissionID)
	if err != nil {
		return nil, err
	}

	if resp.Outcome == primary.OutcomeRatingRequired {
		if rating != 0 {
			if _, err := a.Rate(ctx, commissionID, rating); err != nil {
				return nil, err
			}
			return resp, nil
		}
		fmt.Fprintf(a.out, "Commission #%d is completed and waiting for your rating.\n", commissionID)
		fmt.Fprintf(a.out, "  atelier commission rate %d <1-5>\n", commissionID)
		return resp, nil
	}

	fmt.Fprintf(a.out, "Commission #%d: %s → %s\n", commissionID, resp.From, resp.To)
	if rating != 0 {
		fmt.Fprintf(a.out, "Rating %d not applied: the commission was %s, not waiting for a rating.\n", rating, resp.From)
	}
	fmt.Fprintln(a.out)
	a.render(resp.List)
	return resp, nil
}

// Rate submits the buyer's rating and shows the refreshed list.
func (a *CommissionAdapter) Rate(ctx context.Context, commissionID, rating int) (*primary.SubmitRatingResponse, error) {
	resp, err := a.service.SubmitRating(ctx, commissionID, rating)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "Commission #%d rated %d/5\n\n", commissionID, rating)
	a.render(resp.List)
	return resp, nil
}

func (a *CommissionAdapter) render(list *primary.CommissionList) {
	if list == nil {
		return
	}
	if len(list.Commissions) == 0 {
		fmt.Fprintln(a.out, "No commissions yet.")
		if list.Role == "Buyer" {
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, "Browse artists to request one:")
			fmt.Fprintln(a.out, "  atelier artist list")
		}
		return
	}

	counterpart := "ARTIST"
	if list.Role == "Seller" {
		counterpart = "CLIENT"
	}

	fmt.Fprintf(a.out, "Commissions (%d active)\n\n", list.BadgeCount)
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "ID\tTITLE\t%s\tPRICE\tSTAGE\tRATING\tACTION\n", counterpart)
	fmt.Fprintf(w, "--\t-----\t%s\t-----\t-----\t------\t------\n", strings.Repeat("-", len(counterpart)))

	for _, c := range list.Commissions {
		who := c.SellerUsername
		if list.Role == "Seller" {
			who = c.BuyerUsername
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID,
			c.Title,
			orDash(who),
			c.PriceLabel,
			stageLabel(c),
			ratingLabel(c.Rating),
			actionLabel(c),
		)
	}
	w.Flush()
}

func stageLabel(c *primary.Commission) string {
	if c.UnknownStage {
		return c.Stage + " (unknown stage)"
	}
	stage := c.Stage
	switch stage {
	case "Pending":
		return color.New(color.FgYellow).Sprint(stage)
	case "InProgress":
		return color.New(color.FgCyan).Sprint(stage)
	case "Completed":
		return color.New(color.FgGreen).Sprint(stage)
	}
	return stage
}

func ratingLabel(rating *int) string {
	if rating == nil {
		return "-"
	}
	return fmt.Sprintf("%d/5", *rating)
}

func actionLabel(c *primary.Commission) string {
	if c.UnknownStage {
		return "-"
	}
	action := c.Action
	if !action.Enabled {
		return "(" + action.Label + ")"
	}
	return action.Label
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
