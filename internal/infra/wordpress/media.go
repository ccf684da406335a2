package wordpress

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"dive-booking-gateway/internal/domain/media"
	"dive-booking-gateway/internal/pkg/errs"
)

const mediaPath = "/wp-json/wp/v2/media"

type MediaAPI struct {
	client *Client
	logger *slog.Logger
}

func NewMediaAPI(client *Client, logger *slog.Logger) *MediaAPI {
	return &MediaAPI{client: client, logger: logger}
}

type wpMedia struct {
	ID           int    `json:"id"`
	SourceURL    string `json:"source_url"`
	AltText      string `json:"alt_text"`
	MimeType     string `json:"mime_type"`
	MediaDetails struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"media_details"`
}

func (m wpMedia) toAsset() media.Asset {
	return media.Asset{
		ID:       m.ID,
		URL:      m.SourceURL,
		Alt:      m.AltText,
		Width:    m.MediaDetails.Width,
		Height:   m.MediaDetails.Height,
		MimeType: m.MimeType,
	}
}

// FindByFilename prefers an exact filename match among the search results
// and falls back to the first hit.
func (a *MediaAPI) FindByFilename(ctx context.Context, filename string) (*media.Asset, error) {
	q := url.Values{}
	q.Set("search", media.SearchTerm(filename))
	q.Set("per_page", "10")

	var items []wpMedia
	if _, err := a.client.DoJSON(ctx, Request{Method: http.MethodGet, Path: mediaPath, Query: q}, &items); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, notFoundErr(a.logger, a.client.URL(mediaPath, q), errs.ErrMediaNotFound)
	}

	for _, it := range items {
		asset := it.toAsset()
		if asset.MatchesFilename(filename) {
			return &asset, nil
		}
	}
	asset := items[0].toAsset()
	return &asset, nil
}
