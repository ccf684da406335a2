package components

import (
	"dive-booking-gateway/internal/handler"
	"dive-booking-gateway/internal/handler/api"
	"dive-booking-gateway/internal/handler/middleware"
	"dive-booking-gateway/internal/pkg/clock"
	"dive-booking-gateway/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewProxyHandler,
		api.NewProductHandler,
		api.NewMediaHandler,
		middleware.NewAdminMiddleware,
		NewRateLimiter,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, clk)
}

func NewHandlers(b *api.BookingHandler, p *api.ProxyHandler, pr *api.ProductHandler, m *api.MediaHandler) handler.Handlers {
	return handler.Handlers{
		Booking: b,
		Proxy:   p,
		Product: pr,
		Media:   m,
	}
}

func NewMiddlewares(l *middleware.Logger, a *middleware.AdminMiddleware, r *middleware.RateLimiter) handler.Middlewares {
	return handler.Middlewares{
		Logger:      l,
		Admin:       a,
		RateLimiter: r,
	}
}
