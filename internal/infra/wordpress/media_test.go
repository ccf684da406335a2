//go:build unit

package wordpress_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"dive-booking-gateway/internal/infra/wordpress"
	"dive-booking-gateway/internal/pkg/errs"
	"dive-booking-gateway/tests/common/httptest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wpMediaItem(id int, url string) map[string]any {
	return map[string]any{
		"id":         id,
		"source_url": url,
		"alt_text":   "alt " + url,
		"mime_type":  "image/jpeg",
		"media_details": map[string]any{
			"width":  1200,
			"height": 800,
		},
	}
}

func TestMediaAPIFindByFilename(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("exact filename match wins over first hit", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusOK, []map[string]any{
				wpMediaItem(1, "https://shop.example.com/wp-content/uploads/reef-2.jpg"),
				wpMediaItem(2, "https://shop.example.com/wp-content/uploads/reef-scaled.jpg"),
			})
		})
		client, _ := newTestClient(t, up.URL(), nil)
		api := wordpress.NewMediaAPI(client, logger)

		asset, err := api.FindByFilename(context.Background(), "Reef.jpg")

		require.NoError(t, err)
		assert.Equal(t, 2, asset.ID)
		assert.Equal(t, 1200, asset.Width)
		assert.Equal(t, "image/jpeg", asset.MimeType)

		r, _ := up.Last(t)
		assert.Equal(t, "/wp-json/wp/v2/media", r.URL.Path)
		assert.Equal(t, "reef", r.URL.Query().Get("search"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
	})

	t.Run("falls back to first hit", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusOK, []map[string]any{
				wpMediaItem(9, "https://shop.example.com/wp-content/uploads/reef-night.jpg"),
			})
		})
		client, _ := newTestClient(t, up.URL(), nil)
		api := wordpress.NewMediaAPI(client, logger)

		asset, err := api.FindByFilename(context.Background(), "reef.jpg")

		require.NoError(t, err)
		assert.Equal(t, 9, asset.ID)
	})

	t.Run("no results is media not found", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusOK, []any{})
		})
		client, _ := newTestClient(t, up.URL(), nil)
		api := wordpress.NewMediaAPI(client, logger)

		_, err := api.FindByFilename(context.Background(), "ghost.png")

		assert.ErrorIs(t, err, errs.ErrMediaNotFound)
	})
}
