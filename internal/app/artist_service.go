package app

import (
	"context"
	"fmt"

	corecatalog "github.com/example/atelier/internal/core/catalog"
	"github.com/example/atelier/internal/ctxutil"
	"github.com/example/atelier/internal/ports/primary"
	"github.com/example/atelier/internal/ports/secondary"
)

// ArtistServiceImpl implements the ArtistService interface.
type ArtistServiceImpl struct {
	artists secondary.ArtistGateway
	catalog primary.CatalogService
}

// NewArtistService creates a new ArtistService with injected dependencies.
func NewArtistService(artists secondary.ArtistGateway, catalog primary.CatalogService) *ArtistServiceImpl {
	return &ArtistServiceImpl{
		artists: artists,
		catalog: catalog,
	}
}

// ListArtists returns every artist in the directory.
func (s *ArtistServiceImpl) ListArtists(ctx context.Context) ([]*primary.Artist, error) {
	records, err := s.artists.ListArtists(ctxutil.EnsureRequestID(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", readFailure(err, "Artist directory", ""))
	}

	artists := make([]*primary.Artist, len(records))
	for i, r := range records {
		artists[i] = recordToArtist(r)
	}
	return artists, nil
}

// GetArtist returns an artist's profile together with their catalog.
func (s *ArtistServiceImpl) GetArtist(ctx context.Context, username string) (*primary.ArtistProfile, error) {
	if err := corecatalog.CanLookup(corecatalog.LookupContext{Username: username}).Error(); err != nil {
		return nil, err
	}
	ctx = ctxutil.EnsureRequestID(ctx)

	record, err := s.artists.GetArtist(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist %s: %w", username, readFailure(err, "Artist", username))
	}

	types, err := s.catalog.ListCommissionTypes(ctx, username)
	if err != nil {
		return nil, err
	}

	return &primary.ArtistProfile{
		Artist:          *recordToArtist(record),
		Bio:             record.Bio,
		CoverURL:        record.CoverURL,
		CommissionTypes: types,
	}, nil
}

func recordToArtist(r *secondary.ArtistRecord) *primary.Artist {
	return &primary.Artist{
		Username:  r.Username,
		City:      r.City,
		AvatarURL: r.AvatarURL,
		Rating:    r.Rating,
	}
}

// Ensure ArtistServiceImpl implements the interface
var _ primary.ArtistService = (*ArtistServiceImpl)(nil)
