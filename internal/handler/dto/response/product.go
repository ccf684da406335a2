package response

import (
	"dive-booking-gateway/internal/domain/media"
	"dive-booking-gateway/internal/usecase"
)

type AuthProbeResponse struct {
	Mode   string `json:"mode"`
	Status int    `json:"status"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

type AuthProbeListResponse struct {
	ProductID int                 `json:"product_id"`
	Results   []AuthProbeResponse `json:"results"`
}

func FromAuthProbe(productID int, results []usecase.AuthProbeResult) *AuthProbeListResponse {
	res := &AuthProbeListResponse{
		ProductID: productID,
		Results:   make([]AuthProbeResponse, 0, len(results)),
	}
	for _, r := range results {
		res.Results = append(res.Results, AuthProbeResponse(r))
	}
	return res
}

type MediaResponse struct {
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MimeType string `json:"mimeType,omitempty"`
}

func FromAsset(a *media.Asset) *MediaResponse {
	return &MediaResponse{
		URL:      a.URL,
		Alt:      a.Alt,
		Width:    a.Width,
		Height:   a.Height,
		MimeType: a.MimeType,
	}
}
