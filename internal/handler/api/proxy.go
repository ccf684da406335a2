package api

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"dive-booking-gateway/internal/handler/middleware"
	"dive-booking-gateway/internal/infra"
	"dive-booking-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxProxyBodyBytes = 1 << 20

type ProxyHandler struct {
	proxyUseCase usecase.ProxyUseCase
	requireAdmin gin.HandlerFunc
}

func NewProxyHandler(proxyUseCase usecase.ProxyUseCase, adminMiddleware *middleware.AdminMiddleware) *ProxyHandler {
	return &ProxyHandler{
		proxyUseCase: proxyUseCase,
		requireAdmin: adminMiddleware.RequireAdmin(),
	}
}

// @Summary Booking plugin proxy
// @Description Forwards allowlisted booking routes to the WordPress booking plugin. Status and body are passed through.
// @Tags proxy
// @Accept json
// @Produce json
// @Param path path string true "Booking subpath, e.g. bookings/availability"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string "not_allowed"
// @Failure 405 {object} map[string]string
// @Failure 502 {object} map[string]string "upstream_fetch_failed"
// @Router /api/klsd/{path} [get]
// @Router /api/klsd/{path} [post]
func (h *ProxyHandler) Forward(c *gin.Context) {
	subpath, err := h.proxyUseCase.Resolve(c.Request.Method, c.Param("path"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProxyMethodNotAllowed):
			c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "method_not_allowed"})
		default:
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not_allowed"})
		}
		return
	}

	if h.proxyUseCase.RequiresAdmin(subpath) {
		h.requireAdmin(c)
		if c.IsAborted() {
			return
		}
	}

	var query url.Values
	var body []byte
	if c.Request.Method == http.MethodGet {
		query = c.Request.URL.Query()
	} else {
		body, err = io.ReadAll(io.LimitReader(c.Request.Body, maxProxyBodyBytes))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
			return
		}
	}

	target := h.proxyUseCase.Target(subpath, query)
	c.Set(middleware.CtxProxyTargetKey, target)

	resp, err := h.proxyUseCase.Forward(c.Request.Context(), c.Request.Method, subpath, query, body)
	if err != nil {
		_ = c.Error(err)
		message := err.Error()
		if ue, ok := infra.AsUpstreamError(err); ok && ue.Message != "" {
			message = ue.Message
		}
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
			"error":   "upstream_fetch_failed",
			"message": message,
			"target":  target,
		})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}
	c.Data(resp.Status, contentType, resp.Body)
}
