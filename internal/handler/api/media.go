package api

import (
	"errors"
	"net/http"

	resdto "dive-booking-gateway/internal/handler/dto/response"
	"dive-booking-gateway/internal/handler/httperr"
	"dive-booking-gateway/internal/pkg/errs"
	"dive-booking-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
	}
}

// @Summary Resolve media by filename
// @Description Looks up a WordPress media item by file name. Results are cached.
// @Tags media
// @Produce json
// @Param filename query string true "File name, e.g. reef-dive.jpg"
// @Success 200 {object} resdto.MediaResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/media/resolve [get]
func (h *MediaHandler) Resolve(c *gin.Context) {
	asset, err := h.mediaUseCase.ResolveMedia(c.Request.Context(), c.Query("filename"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidFilename):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "filename is required", nil)
		case errors.Is(err, errs.ErrMediaNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Media not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Media lookup failed", nil)
		}
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, resdto.FromAsset(asset))
}
