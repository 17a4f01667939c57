package httpapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/example/atelier/internal/ports/secondary"
)

type commissionTypeDTO struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	SellerID  int             `json:"seller_id"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

type commissionTypeEditDTO struct {
	CommissionType struct {
		Title string          `json:"title"`
		Price decimal.Decimal `json:"price"`
	} `json:"commission_type"`
}

func toTypeRecords(dtos []commissionTypeDTO) []*secondary.CommissionTypeRecord {
	records := make([]*secondary.CommissionTypeRecord, 0, len(dtos))
	for _, d := range dtos {
		records = append(records, &secondary.CommissionTypeRecord{
			ID:        d.ID,
			Title:     d.Title,
			Price:     d.Price,
			SellerID:  d.SellerID,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}
	return records
}

// ListCommissionTypes sends GET /commission_types/{username}.
func (c *Client) ListCommissionTypes(ctx context.Context, username string) ([]*secondary.CommissionTypeRecord, error) {
	var out []commissionTypeDTO
	if err := c.do(ctx, "GET", "/commission_types/"+url.PathEscape(username), "", nil, &out); err != nil {
		return nil, err
	}
	return toTypeRecords(out), nil
}

// ListOwnCommissionTypes sends GET /commission_types/my_commissions.
func (c *Client) ListOwnCommissionTypes(ctx context.Context, token string) ([]*secondary.CommissionTypeRecord, error) {
	var out []commissionTypeDTO
	if err := c.do(ctx, "GET", "/commission_types/my_commissions", token, nil, &out); err != nil {
		return nil, err
	}
	return toTypeRecords(out), nil
}

// UpdateCommissionType sends PATCH /commission_types/my_commissions/{id}.
func (c *Client) UpdateCommissionType(ctx context.Context, token string, rec *secondary.CommissionTypeRecord) error {
	var body commissionTypeEditDTO
	body.CommissionType.Title = rec.Title
	body.CommissionType.Price = rec.Price
	path := fmt.Sprintf("/commission_types/my_commissions/%d", rec.ID)
	return c.do(ctx, "PATCH", path, token, body, nil)
}

// DeleteCommissionType sends DELETE /commission_types/my_commissions/{id}.
func (c *Client) DeleteCommissionType(ctx context.Context, token string, commissionTypeID int) error {
	path := fmt.Sprintf("/commission_types/my_commissions/%d", commissionTypeID)
	return c.do(ctx, "DELETE", path, token, nil, nil)
}
