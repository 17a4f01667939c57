package primary

import (
	"context"

	"github.com/shopspring/decimal"
)

// CommissionService defines the primary port for the commission lifecycle.
// The acting role always comes from the session, never from the caller.
type CommissionService interface {
	// ListCommissions returns the caller's commissions and the badge count.
	ListCommissions(ctx context.Context) (*CommissionList, error)

	// RequestCommission submits a new commission on behalf of the logged-in buyer.
	RequestCommission(ctx context.Context, req RequestCommissionRequest) (*RequestCommissionResponse, error)

	// AdvanceStage performs the single action available on a commission.
	// Completed commissions return OutcomeRatingRequired instead of changing stage.
	AdvanceStage(ctx context.Context, commissionID int) (*AdvanceStageResponse, error)

	// SubmitRating attaches a 1..5 rating to a completed, unrated commission.
	SubmitRating(ctx context.Context, commissionID, rating int) (*SubmitRatingResponse, error)
}

// RequestCommissionRequest contains parameters for requesting a commission.
type RequestCommissionRequest struct {
	ArtistUsername   string // Optional: when set, the type must be in this artist's catalog
	CommissionTypeID int
	Description      string
}

// RequestCommissionResponse contains the result of requesting a commission.
type RequestCommissionResponse struct {
	Commission *Commission
	List       *CommissionList // Refreshed list, the view the buyer lands on
}

// Advance outcomes.
const (
	OutcomeStageChange    = "stage_change"
	OutcomeRatingRequired = "rating_required"
)

// AdvanceStageResponse contains the result of an advance.
type AdvanceStageResponse struct {
	Outcome      string
	CommissionID int
	From         string
	To           string          // Equal to From when a rating is required
	List         *CommissionList // Refreshed after a stage change, current list otherwise
}

// SubmitRatingResponse contains the result of rating a commission.
type SubmitRatingResponse struct {
	Commission *Commission
	List       *CommissionList
}

// CommissionList is the role-scoped view of the caller's commissions.
type CommissionList struct {
	Role        string
	Commissions []*Commission
	BadgeCount  int // Commissions not yet Completed
}

// Find returns the commission with the given id, or nil.
func (l *CommissionList) Find(id int) *Commission {
	if l == nil {
		return nil
	}
	for _, c := range l.Commissions {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Commission represents a commission at the port boundary.
// Stage lifecycle: Pending → InProgress → Completed
type Commission struct {
	ID             int
	BuyerID        int
	SellerID       int
	BuyerUsername  string
	SellerUsername string
	Title          string
	Price          decimal.Decimal
	PriceLabel     string // Price in the configured currency, two decimals
	Description    string
	Stage          string
	Rating         *int
	Action         CommissionAction

	// UnknownStage is set when the server reported a stage outside the
	// lifecycle. Stage then holds the raw value and Action is empty.
	UnknownStage bool
}

// CommissionAction is the single action the caller sees for a commission.
type CommissionAction struct {
	Label   string
	Enabled bool
}
