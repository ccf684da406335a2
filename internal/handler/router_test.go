//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"dive-booking-gateway/internal/domain/media"
	"dive-booking-gateway/internal/handler"
	"dive-booking-gateway/internal/handler/api"
	"dive-booking-gateway/internal/handler/middleware"
	"dive-booking-gateway/internal/pkg/clock"
	"dive-booking-gateway/internal/pkg/config"
	"dive-booking-gateway/internal/pkg/jwt"
	"dive-booking-gateway/internal/usecase"
	"dive-booking-gateway/tests/common/httptest"
	usecasemock "dive-booking-gateway/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRouterRateLimitsPublicRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	cfg := config.NewTestConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerMinute: 60, Burst: 1}
	clk := clock.NewManualClock(time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC))

	mediaUseCase := usecasemock.NewMockMediaUseCase(ctrl)
	mediaUseCase.EXPECT().ResolveMedia(gomock.Any(), gomock.Any()).
		Return(&media.Asset{ID: 1, URL: "https://shop.example.com/wp-content/uploads/reef.jpg"}, nil).Times(1)

	admin := middleware.NewAdminMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.Admin.JWTSecret, time.Hour)))
	engine := gin.New()
	handler.NewRouter(engine, cfg, handler.Handlers{
		Booking: api.NewBookingHandler(usecasemock.NewMockBookingUseCase(ctrl)),
		Proxy:   api.NewProxyHandler(usecasemock.NewMockProxyUseCase(ctrl), admin),
		Product: api.NewProductHandler(usecasemock.NewMockProductUseCase(ctrl)),
		Media:   api.NewMediaHandler(mediaUseCase),
	}, handler.Middlewares{
		Logger:      middleware.NewLogger(cfg.Log),
		Admin:       admin,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimit, clk),
	})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/media/resolve?filename=reef.jpg", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/api/media/resolve?filename=other.jpg", nil, "")
	httptest.AssertFlatError(t, rec, http.StatusTooManyRequests, "rate_limited")

	// health stays outside the limiter
	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
