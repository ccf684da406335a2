package components

import (
	"dive-booking-gateway/internal/infra/wordpress"
	"dive-booking-gateway/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		wordpress.NewClient,
		fx.Annotate(
			wordpress.NewBookingAPI,
			fx.As(new(usecase.BookingGateway)),
			fx.As(new(usecase.ProxyGateway)),
		),
		fx.Annotate(
			wordpress.NewProductAPI,
			fx.As(new(usecase.ProductGateway)),
			fx.As(new(usecase.ProductAuthProber)),
		),
		fx.Annotate(
			wordpress.NewMediaAPI,
			fx.As(new(usecase.MediaGateway)),
		),
	),
)
