package httpapi

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/example/atelier/internal/ports/secondary"
)

// commissionDTO is the wire form of a commission. List endpoints key the id
// as commission_id, single-commission answers as id.
type commissionDTO struct {
	ID             int             `json:"id"`
	CommissionID   int             `json:"commission_id"`
	BuyerID        int             `json:"buyer_id"`
	SellerID       int             `json:"seller_id"`
	BuyerUsername  string          `json:"buyer_username"`
	SellerUsername string          `json:"seller_username"`
	Title          string          `json:"title"`
	Price          decimal.Decimal `json:"price"`
	Description    string          `json:"description"`
	Stage          string          `json:"stage"`
	Rating         *int            `json:"rating"`
}

// commissionEnvelope accepts a commission either bare or under a "commission" key.
type commissionEnvelope struct {
	commissionDTO
	Commission *commissionDTO `json:"commission"`
}

func (e *commissionEnvelope) unwrap() commissionDTO {
	if e.Commission != nil {
		return *e.Commission
	}
	return e.commissionDTO
}

type commissionListDTO struct {
	Commissions []commissionDTO `json:"commissions"`
}

type createCommissionDTO struct {
	CommissionTypeID int    `json:"commission_type_id"`
	Description      string `json:"description"`
}

type rateDTO struct {
	Rating int `json:"rating"`
}

func (d commissionDTO) toRecord() *secondary.CommissionRecord {
	id := d.ID
	if id == 0 {
		id = d.CommissionID
	}
	return &secondary.CommissionRecord{
		ID:             id,
		BuyerID:        d.BuyerID,
		SellerID:       d.SellerID,
		BuyerUsername:  d.BuyerUsername,
		SellerUsername: d.SellerUsername,
		Title:          d.Title,
		Price:          d.Price,
		Description:    d.Description,
		Stage:          d.Stage,
		Rating:         d.Rating,
	}
}

// CreateCommission sends POST /commission/create.
func (c *Client) CreateCommission(ctx context.Context, token string, req secondary.CreateCommissionRecord) (*secondary.CommissionRecord, error) {
	var out commissionEnvelope
	body := createCommissionDTO{CommissionTypeID: req.CommissionTypeID, Description: req.Description}
	if err := c.do(ctx, "POST", "/commission/create", token, body, &out); err != nil {
		return nil, err
	}
	return out.unwrap().toRecord(), nil
}

// ListCommissions sends GET /commission/{role}.
func (c *Client) ListCommissions(ctx context.Context, token, role string) ([]*secondary.CommissionRecord, error) {
	var out commissionListDTO
	if err := c.do(ctx, "GET", "/commission/"+role, token, nil, &out); err != nil {
		return nil, err
	}
	records := make([]*secondary.CommissionRecord, 0, len(out.Commissions))
	for _, d := range out.Commissions {
		records = append(records, d.toRecord())
	}
	return records, nil
}

// UpdateStage sends PATCH /commission/{stage}/{id}. The stage segment names
// the target stage unless the client was built with StageTokenCurrent.
func (c *Client) UpdateStage(ctx context.Context, token string, commissionID int, from, to string) (*secondary.CommissionRecord, error) {
	segment := to
	if c.stageToken == StageTokenCurrent {
		segment = from
	}
	var out commissionEnvelope
	path := fmt.Sprintf("/commission/%s/%d", segment, commissionID)
	if err := c.do(ctx, "PATCH", path, token, struct{}{}, &out); err != nil {
		return nil, err
	}
	return c.patched(out, commissionID), nil
}

// RateCommission sends PATCH /commission/rate/{id}.
func (c *Client) RateCommission(ctx context.Context, token string, commissionID, rating int) (*secondary.CommissionRecord, error) {
	var out commissionEnvelope
	path := fmt.Sprintf("/commission/rate/%d", commissionID)
	if err := c.do(ctx, "PATCH", path, token, rateDTO{Rating: rating}, &out); err != nil {
		return nil, err
	}
	return c.patched(out, commissionID), nil
}

// patched returns the commission echoed by a PATCH, or nil when the server sent none.
func (c *Client) patched(out commissionEnvelope, commissionID int) *secondary.CommissionRecord {
	d := out.unwrap()
	if d.ID == 0 && d.CommissionID == 0 && d.Stage == "" {
		return nil
	}
	rec := d.toRecord()
	if rec.ID == 0 {
		rec.ID = commissionID
	}
	return rec
}
