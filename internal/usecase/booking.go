package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"dive-booking-gateway/internal/domain/booking"
	"dive-booking-gateway/internal/infra"
	"dive-booking-gateway/internal/pkg/config"
	"dive-booking-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingGateway interface {
	Availability(ctx context.Context, req *booking.Request) (json.RawMessage, error)
	AvailabilityFallback(ctx context.Context, req *booking.Request) (json.RawMessage, error)
	Price(ctx context.Context, req *booking.Request) (*booking.Quote, error)
	CreateOrder(ctx context.Context, in booking.OrderInput) (*booking.Order, error)
	PersonTypes(ctx context.Context, productID int) (json.RawMessage, error)
	Resources(ctx context.Context, productID int) (json.RawMessage, error)
}

type ProductGateway interface {
	GetProduct(ctx context.Context, id int) (*booking.Product, error)
	ProductJSON(ctx context.Context, id int) (json.RawMessage, error)
}

type BookingUseCase interface {
	GetAvailability(ctx context.Context, req *booking.Request) (json.RawMessage, error)
	// GetPrice never fails; see booking.UnavailableQuote for the last resort.
	GetPrice(ctx context.Context, req *booking.Request) booking.Quote
	CreateBookingOrder(ctx context.Context, in booking.OrderInput) (*booking.Order, error)
	GetPersonTypes(ctx context.Context, productID int) (json.RawMessage, error)
	GetResources(ctx context.Context, productID int) (json.RawMessage, error)
}

type bookingUseCaseImpl struct {
	bookings       BookingGateway
	products       ProductGateway
	trustZeroPrice bool
	currency       string
	logger         *slog.Logger
}

func NewBookingUseCase(bookings BookingGateway, products ProductGateway, cfg config.Config, logger *slog.Logger) BookingUseCase {
	return &bookingUseCaseImpl{
		bookings:       bookings,
		products:       products,
		trustZeroPrice: cfg.Booking.TrustZeroPrice,
		currency:       cfg.Booking.Currency,
		logger:         logger,
	}
}

// GetAvailability tries the REST route, then the admin-ajax action once.
func (u *bookingUseCaseImpl) GetAvailability(ctx context.Context, req *booking.Request) (json.RawMessage, error) {
	result, err := u.bookings.Availability(ctx, req)
	if err == nil {
		return result, nil
	}

	u.logger.Warn("Primary availability lookup failed, trying fallback",
		slog.Int("product_id", req.ProductID()),
		slog.String("error", err.Error()),
	)

	result, fbErr := u.bookings.AvailabilityFallback(ctx, req)
	if fbErr != nil {
		return nil, errs.Mark(errs.Wrap(fbErr, "availability fallback failed"), errs.ErrAvailabilityFailed)
	}
	return result, nil
}

func (u *bookingUseCaseImpl) GetPrice(ctx context.Context, req *booking.Request) booking.Quote {
	quote, err := u.bookings.Price(ctx, req)
	if err == nil && u.trusted(quote) {
		return *quote
	}

	attrs := []any{slog.Int("product_id", req.ProductID())}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	} else {
		attrs = append(attrs, slog.Float64("upstream_total", quote.Total.Decimal()))
	}
	u.logger.Info("Upstream price unusable, deriving from product meta", attrs...)

	product, err := u.products.GetProduct(ctx, req.ProductID())
	if err != nil {
		u.logger.Warn("Product meta unavailable, returning placeholder quote",
			slog.Int("product_id", req.ProductID()),
			slog.String("error", err.Error()),
		)
		return booking.UnavailableQuote(u.currency)
	}

	return booking.FallbackQuote(product, req.PersonCounts(), u.currency)
}

// A zero total usually means the person/date combination did not match the
// plugin's rules, not that the dive is free.
func (u *bookingUseCaseImpl) trusted(q *booking.Quote) bool {
	if q == nil {
		return false
	}
	if q.Total.IsPositive() {
		return true
	}
	return u.trustZeroPrice && q.Total.Cents() == 0
}

func (u *bookingUseCaseImpl) CreateBookingOrder(ctx context.Context, in booking.OrderInput) (*booking.Order, error) {
	if in.IdempotencyKey == "" {
		in.IdempotencyKey = uuid.NewString()
	}

	order, err := u.bookings.CreateOrder(ctx, in)
	if err == nil {
		return order, nil
	}

	if _, ok := booking.AsOrderError(err); ok {
		return nil, err
	}

	status := http.StatusBadGateway
	if ue, ok := infra.AsUpstreamError(err); ok && ue.Status != 0 {
		status = ue.Status
	}
	u.logger.Error("Booking order request failed",
		slog.Int("product_id", in.Request.ProductID()),
		slog.String("idempotency_key", in.IdempotencyKey),
		slog.String("error", err.Error()),
	)
	return nil, booking.NewOrderError(status, "", "")
}

func (u *bookingUseCaseImpl) GetPersonTypes(ctx context.Context, productID int) (json.RawMessage, error) {
	if productID <= 0 {
		return nil, errs.ErrInvalidProductID
	}
	return u.bookings.PersonTypes(ctx, productID)
}

func (u *bookingUseCaseImpl) GetResources(ctx context.Context, productID int) (json.RawMessage, error) {
	if productID <= 0 {
		return nil, errs.ErrInvalidProductID
	}
	return u.bookings.Resources(ctx, productID)
}
