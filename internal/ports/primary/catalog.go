package primary

import (
	"context"

	"github.com/shopspring/decimal"
)

// CatalogService defines the primary port for commission types.
type CatalogService interface {
	// ListCommissionTypes returns an artist's catalog. An empty slice is not an error.
	ListCommissionTypes(ctx context.Context, username string) ([]*CommissionType, error)

	// ListMine returns the logged-in seller's own catalog.
	ListMine(ctx context.Context) ([]*CommissionType, error)

	// UpdateType changes a seller's commission type.
	UpdateType(ctx context.Context, req UpdateCommissionTypeRequest) error

	// DeleteType removes a seller's commission type.
	DeleteType(ctx context.Context, commissionTypeID int) error
}

// UpdateCommissionTypeRequest contains parameters for updating a commission type.
type UpdateCommissionTypeRequest struct {
	CommissionTypeID int
	Title            string
	Price            decimal.Decimal
}

// CommissionType represents a seller offering at the port boundary.
type CommissionType struct {
	ID         int
	Title      string
	Price      decimal.Decimal
	PriceLabel string
	SellerID   int
}
