package primary

import "context"

// ArtistService defines the primary port for the artist directory.
type ArtistService interface {
	// ListArtists returns every artist in the directory.
	ListArtists(ctx context.Context) ([]*Artist, error)

	// GetArtist returns an artist's profile together with their catalog.
	GetArtist(ctx context.Context, username string) (*ArtistProfile, error)
}

// Artist represents a directory entry.
type Artist struct {
	Username  string
	City      string
	AvatarURL string
	Rating    float64
}

// ArtistProfile represents an artist's public page.
type ArtistProfile struct {
	Artist
	Bio             string
	CoverURL        string
	CommissionTypes []*CommissionType
}
