package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/atelier/internal/ports/primary"
)

// ArtistAdapter is a thin adapter that translates CLI operations to ArtistService calls.
type ArtistAdapter struct {
	service primary.ArtistService
	out     io.Writer
}

// NewArtistAdapter creates a new ArtistAdapter with the given service.
func NewArtistAdapter(service primary.ArtistService, out io.Writer) *ArtistAdapter {
	return &ArtistAdapter{
		service: service,
		out:     out,
	}
}

// List shows the artist directory.
func (a *ArtistAdapter) List(ctx context.Context) ([]*primary.Artist, error) {
	artists, err := a.service.ListArtists(ctx)
	if err != nil {
		return nil, readFailure(a.out, err, "")
	}

	if len(artists) == 0 {
		fmt.Fprintln(a.out, "No artists found.")
		return artists, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ARTIST\tCITY\tRATING")
	fmt.Fprintln(w, "------\t----\t------")
	for _, artist := range artists {
		fmt.Fprintf(w, "%s\t%s\t%.1f\n", artist.Username, orDash(artist.City), artist.Rating)
	}
	w.Flush()
	return artists, nil
}

// Show displays an artist's profile and catalog.
func (a *ArtistAdapter) Show(ctx context.Context, username string) (*primary.ArtistProfile, error) {
	profile, err := a.service.GetArtist(ctx, username)
	if err != nil {
		return nil, readFailure(a.out, err, browseArtists)
	}

	fmt.Fprintf(a.out, "\nArtist: %s\n", profile.Username)
	fmt.Fprintf(a.out, "Rating: %.1f\n", profile.Rating)
	if profile.Bio != "" {
		fmt.Fprintf(a.out, "Bio:    %s\n", profile.Bio)
	}
	fmt.Fprintln(a.out)
	renderTypes(a.out, profile.CommissionTypes)
	if len(profile.CommissionTypes) > 0 {
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "Request one with:\n  atelier commission request --artist %s --type <ID> --description \"...\"\n", profile.Username)
	}
	return profile, nil
}
