package bootstrap

import (
	"dive-booking-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	UpstreamModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
