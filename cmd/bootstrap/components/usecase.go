package components

import (
	"dive-booking-gateway/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewBookingUseCase,
		usecase.NewProxyUseCase,
		usecase.NewProductUseCase,
		usecase.NewMediaUseCase,
	),
	usecaseValidatorsModule,
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
