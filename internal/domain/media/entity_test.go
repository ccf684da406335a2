//go:build unit

package media_test

import (
	"testing"

	"dive-booking-gateway/internal/domain/media"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFilename(t *testing.T) {
	assert.Equal(t, "reef.jpg", media.NormalizeFilename("  /uploads/2026/05/Reef.JPG "))
	assert.Equal(t, "reef", media.SearchTerm("Reef.jpg"))
	assert.Equal(t, "reef.wreck", media.SearchTerm("reef.wreck.png"))
}

func TestAssetMatchesFilename(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		filename string
		want     bool
	}{
		{name: "完全一致", url: "https://example.com/wp-content/uploads/reef.jpg", filename: "reef.jpg", want: true},
		{name: "大文字小文字を無視", url: "https://example.com/wp-content/uploads/Reef.JPG", filename: "reef.jpg", want: true},
		{name: "-scaled付きも一致", url: "https://example.com/wp-content/uploads/reef-scaled.jpg", filename: "reef.jpg", want: true},
		{name: "別ファイルは不一致", url: "https://example.com/wp-content/uploads/reef-2.jpg", filename: "reef.jpg", want: false},
		{name: "空ファイル名は不一致", url: "https://example.com/wp-content/uploads/reef.jpg", filename: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := media.Asset{URL: tt.url}
			assert.Equal(t, tt.want, a.MatchesFilename(tt.filename))
		})
	}
}
