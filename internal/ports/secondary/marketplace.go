package secondary

import (
	"context"

	"github.com/shopspring/decimal"
)

// CommissionGateway defines the secondary port for commission calls on the marketplace API.
// Every call takes the bearer token explicitly; the gateway holds no session.
type CommissionGateway interface {
	// CreateCommission submits a new commission request.
	CreateCommission(ctx context.Context, token string, req CreateCommissionRecord) (*CommissionRecord, error)

	// ListCommissions returns the commissions visible to the role ("buyer" or "seller").
	ListCommissions(ctx context.Context, token, role string) ([]*CommissionRecord, error)

	// UpdateStage moves a commission from one stage to the next.
	UpdateStage(ctx context.Context, token string, commissionID int, from, to string) (*CommissionRecord, error)

	// RateCommission stores the buyer's rating.
	RateCommission(ctx context.Context, token string, commissionID, rating int) (*CommissionRecord, error)
}

// CatalogGateway defines the secondary port for commission type calls.
type CatalogGateway interface {
	// ListCommissionTypes returns an artist's public catalog in server order.
	ListCommissionTypes(ctx context.Context, username string) ([]*CommissionTypeRecord, error)

	// ListOwnCommissionTypes returns the logged-in seller's catalog.
	ListOwnCommissionTypes(ctx context.Context, token string) ([]*CommissionTypeRecord, error)

	// UpdateCommissionType changes the title and price of a seller's commission type.
	UpdateCommissionType(ctx context.Context, token string, rec *CommissionTypeRecord) error

	// DeleteCommissionType removes a seller's commission type.
	DeleteCommissionType(ctx context.Context, token string, commissionTypeID int) error
}

// ArtistGateway defines the secondary port for the artist directory.
type ArtistGateway interface {
	// ListArtists returns every artist in the directory.
	ListArtists(ctx context.Context) ([]*ArtistRecord, error)

	// GetArtist returns one artist's public profile.
	GetArtist(ctx context.Context, username string) (*ArtistRecord, error)
}

// AuthGateway defines the secondary port for credential exchange.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token and the account role.
	Login(ctx context.Context, email, password string) (*LoginRecord, error)
}

// CommissionRecord represents a commission as returned by the API.
type CommissionRecord struct {
	ID             int
	BuyerID        int
	SellerID       int
	BuyerUsername  string // Set on the seller's view
	SellerUsername string // Set on the buyer's view
	Title          string
	Price          decimal.Decimal
	Description    string
	Stage          string
	Rating         *int // nil until rated
}

// CreateCommissionRecord contains the body of a commission request.
type CreateCommissionRecord struct {
	CommissionTypeID int
	Description      string
}

// CommissionTypeRecord represents a commission type as returned by the API.
type CommissionTypeRecord struct {
	ID        int
	Title     string
	Price     decimal.Decimal
	SellerID  int
	CreatedAt string
	UpdatedAt string
}

// ArtistRecord represents an artist as returned by the API.
// Directory listings fill Username, City, AvatarURL and Rating; profiles add Bio and CoverURL.
type ArtistRecord struct {
	Username  string
	City      string
	Bio       string
	AvatarURL string
	CoverURL  string
	Rating    float64
}

// LoginRecord is the API's answer to a successful login.
type LoginRecord struct {
	Token    string
	UserType string
}
