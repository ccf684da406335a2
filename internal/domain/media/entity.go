package media

import (
	"path"
	"strings"
)

type Asset struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MimeType string `json:"mimeType"`
}

// NormalizeFilename lowercases and strips any directory part.
func NormalizeFilename(filename string) string {
	return strings.ToLower(path.Base(strings.TrimSpace(filename)))
}

// SearchTerm is the filename without extension, which is what the
// WordPress media search matches against.
func SearchTerm(filename string) string {
	base := NormalizeFilename(filename)
	return strings.TrimSuffix(base, path.Ext(base))
}

// MatchesFilename reports whether the asset URL ends with the filename,
// ignoring case and WordPress' "-scaled" suffix.
func (a Asset) MatchesFilename(filename string) bool {
	want := NormalizeFilename(filename)
	if want == "" || want == "." {
		return false
	}
	got := NormalizeFilename(a.URL)
	if got == want {
		return true
	}
	ext := path.Ext(want)
	return got == strings.TrimSuffix(want, ext)+"-scaled"+ext
}
