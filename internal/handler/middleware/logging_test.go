//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"dive-booking-gateway/internal/handler/httperr"
	"dive-booking-gateway/internal/handler/middleware"
	"dive-booking-gateway/internal/pkg/config"
	"dive-booking-gateway/tests/common/httptest"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLoggedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.Use(logger.LoggingMiddleware())
	router.Use(middleware.ErrorHandler())
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	router.GET("/boom", func(c *gin.Context) {
		panic("reef collapsed")
	})
	router.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadGateway, errors.New("upstream down"), "Upstream unavailable", nil)
	})
	return router
}

func TestLoggingMiddleware(t *testing.T) {
	router := newLoggedRouter()

	t.Run("リクエストIDを生成してヘッダーに返す", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")

		id := rec.Header().Get("X-Request-ID")
		assert.NotEmpty(t, id)
		assert.JSONEq(t, `{"request_id":"`+id+`"}`, rec.Body.String())
	})

	t.Run("受信したリクエストIDを引き継ぐ", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ok", nil, "", map[string]string{"X-Request-ID": "front-123"})

		assert.Equal(t, "front-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("panicは500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("公開エラーはそのまま返す", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/fail", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadGateway, "Upstream unavailable")
	})
}
