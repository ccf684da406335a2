package api

import (
	"errors"
	"log/slog"
	"net/http"

	"dive-booking-gateway/internal/domain/booking"
	reqdto "dive-booking-gateway/internal/handler/dto/request"
	resdto "dive-booking-gateway/internal/handler/dto/response"
	"dive-booking-gateway/internal/handler/httperr"
	"dive-booking-gateway/internal/infra"
	"dive-booking-gateway/internal/pkg/errs"
	"dive-booking-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Get availability
// @Description Slot availability for a product, falling back to the admin-ajax action once
// @Tags bookings
// @Produce json
// @Param product_id query int true "Product ID"
// @Param start query string false "Start date (ISO 8601)"
// @Param end query string false "End date (ISO 8601)"
// @Param resource_id query int false "Resource ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/availability [get]
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	query := reqdto.AvailabilityQuery{
		ProductID:  c.Query("product_id"),
		Start:      c.Query("start"),
		End:        c.Query("end"),
		Persons:    c.QueryMap("persons"),
		ResourceID: c.Query("resource_id"),
	}
	req, err := query.ToDomain()
	if err != nil {
		abortInvalidBooking(c, err)
		return
	}

	result, err := h.bookingUseCase.GetAvailability(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Availability lookup failed", nil)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

// @Summary Get price quote
// @Description Price from the booking plugin, or derived from product meta when the plugin total is unusable
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.PriceRequest true "Booking parameters"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/price [post]
func (h *BookingHandler) GetPrice(c *gin.Context) {
	var body reqdto.PriceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	req, err := body.ToDomain()
	if err != nil {
		abortInvalidBooking(c, err)
		return
	}

	quote := h.bookingUseCase.GetPrice(c.Request.Context(), req)
	res, err := resdto.FromQuote(quote)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create booking order
// @Description Creates a WooCommerce order for the slot and returns the payment URL
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key, generated when absent"
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response "code SLOT_TAKEN"
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/orders [post]
func (h *BookingHandler) CreateOrder(c *gin.Context) {
	var body reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := body.ToDomain(c.GetHeader("Idempotency-Key"))
	if err != nil {
		abortInvalidBooking(c, err)
		return
	}

	order, err := h.bookingUseCase.CreateBookingOrder(c.Request.Context(), in)
	if err != nil {
		abortOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrder(order))
}

// @Summary Get person types
// @Tags bookings
// @Produce json
// @Param product_id query int true "Product ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/person-types [get]
func (h *BookingHandler) GetPersonTypes(c *gin.Context) {
	productID, err := reqdto.ParseProductID(c.Query("product_id"))
	if err != nil {
		abortInvalidBooking(c, err)
		return
	}
	result, err := h.bookingUseCase.GetPersonTypes(c.Request.Context(), productID)
	if err != nil {
		abortUpstream(c, err, "Failed to load person types")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

// @Summary Get bookable resources
// @Tags bookings
// @Produce json
// @Param product_id query int true "Product ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/resources [get]
func (h *BookingHandler) GetResources(c *gin.Context) {
	productID, err := reqdto.ParseProductID(c.Query("product_id"))
	if err != nil {
		abortInvalidBooking(c, err)
		return
	}
	result, err := h.bookingUseCase.GetResources(c.Request.Context(), productID)
	if err != nil {
		abortUpstream(c, err, "Failed to load resources")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

func abortInvalidBooking(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidProductID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
	case errors.Is(err, errs.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
	case errors.Is(err, errs.ErrInvalidPersonCount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid person count", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
	}
}

func abortOrderError(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrSlotTaken) {
		oe, _ := booking.AsOrderError(err)
		httperr.AbortWithCode(c, http.StatusConflict, err, oe.Message, booking.CodeSlotTaken, nil)
		return
	}
	if oe, ok := booking.AsOrderError(err); ok {
		status := oe.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		httperr.AbortWithCode(c, status, err, oe.Message, oe.Code, nil)
		return
	}
	slog.Error("Unclassified order error", slog.String("error", err.Error()))
	httperr.AbortWithCode(c, http.StatusBadGateway, err, booking.DefaultOrderFailureMessage, booking.CodeOrderFailed, nil)
}

// abortUpstream maps gateway errors that the usecase passes through unchanged.
func abortUpstream(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, errs.ErrInvalidProductID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
	case errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case infra.IsKind(err, infra.KindRejected):
		ue, _ := infra.AsUpstreamError(err)
		status := ue.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		if ue.Message != "" {
			msg = ue.Message
		}
		httperr.AbortWithCode(c, status, err, msg, ue.Code, nil)
	default:
		httperr.AbortWithError(c, http.StatusBadGateway, err, msg, nil)
	}
}
