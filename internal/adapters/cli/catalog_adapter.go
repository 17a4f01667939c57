package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/example/atelier/internal/ports/primary"
)

// CatalogAdapter is a thin adapter that translates CLI operations to CatalogService calls.
type CatalogAdapter struct {
	service primary.CatalogService
	out     io.Writer
}

// NewCatalogAdapter creates a new CatalogAdapter with the given service.
func NewCatalogAdapter(service primary.CatalogService, out io.Writer) *CatalogAdapter {
	return &CatalogAdapter{
		service: service,
		out:     out,
	}
}

// List shows an artist's commission types.
func (a *CatalogAdapter) List(ctx context.Context, username string) ([]*primary.CommissionType, error) {
	types, err := a.service.ListCommissionTypes(ctx, username)
	if err != nil {
		return nil, readFailure(a.out, err, browseArtists)
	}
	a.render(types)
	return types, nil
}

// Mine shows the logged-in seller's commission types.
func (a *CatalogAdapter) Mine(ctx context.Context) ([]*primary.CommissionType, error) {
	types, err := a.service.ListMine(ctx)
	if err != nil {
		return nil, readFailure(a.out, err, "")
	}
	a.render(types)
	return types, nil
}

// Update changes a commission type. price is parsed as a decimal amount.
func (a *CatalogAdapter) Update(ctx context.Context, commissionTypeID int, title, price string) error {
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price %q", price)
	}
	return a.service.UpdateType(ctx, primary.UpdateCommissionTypeRequest{
		CommissionTypeID: commissionTypeID,
		Title:            title,
		Price:            amount,
	})
}

// Delete removes a commission type.
func (a *CatalogAdapter) Delete(ctx context.Context, commissionTypeID int) error {
	return a.service.DeleteType(ctx, commissionTypeID)
}

func (a *CatalogAdapter) render(types []*primary.CommissionType) {
	renderTypes(a.out, types)
}

func renderTypes(out io.Writer, types []*primary.CommissionType) {
	if len(types) == 0 {
		fmt.Fprintln(out, "No commission types available.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRICE")
	fmt.Fprintln(w, "--\t-----\t-----")
	for _, t := range types {
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Title, t.PriceLabel)
	}
	w.Flush()
}
