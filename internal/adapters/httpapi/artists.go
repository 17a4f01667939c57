package httpapi

import (
	"context"
	"net/url"

	"github.com/example/atelier/internal/ports/secondary"
)

type artistDTO struct {
	Username  string  `json:"username"`
	City      string  `json:"city"`
	Bio       string  `json:"bio"`
	AvatarURL string  `json:"avatar_url"`
	CoverURL  string  `json:"cover_url"`
	Rating    float64 `json:"rating"`
}

func (d artistDTO) toRecord() *secondary.ArtistRecord {
	return &secondary.ArtistRecord{
		Username:  d.Username,
		City:      d.City,
		Bio:       d.Bio,
		AvatarURL: d.AvatarURL,
		CoverURL:  d.CoverURL,
		Rating:    d.Rating,
	}
}

// ListArtists sends GET /artists/.
func (c *Client) ListArtists(ctx context.Context) ([]*secondary.ArtistRecord, error) {
	var out []artistDTO
	if err := c.do(ctx, "GET", "/artists/", "", nil, &out); err != nil {
		return nil, err
	}
	records := make([]*secondary.ArtistRecord, 0, len(out))
	for _, d := range out {
		records = append(records, d.toRecord())
	}
	return records, nil
}

// GetArtist sends GET /artists/{username}.
func (c *Client) GetArtist(ctx context.Context, username string) (*secondary.ArtistRecord, error) {
	var out artistDTO
	if err := c.do(ctx, "GET", "/artists/"+url.PathEscape(username), "", nil, &out); err != nil {
		return nil, err
	}
	return out.toRecord(), nil
}
