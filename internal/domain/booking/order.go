package booking

import (
	"errors"
	"net/http"

	"dive-booking-gateway/internal/pkg/errs"
)

const (
	CodeSlotTaken   = "SLOT_TAKEN"
	CodeOrderFailed = "ORDER_FAILED"

	DefaultOrderFailureMessage = "Failed to create booking order"
)

type Order struct {
	OrderID int
	PayURL  string
}

type OrderInput struct {
	Request        *Request
	Customer       Customer
	Note           string
	IdempotencyKey string
}

type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// OrderError is returned when the plugin refuses to create an order.
// errors.Is(err, errs.ErrSlotTaken) holds only for the SLOT_TAKEN conflict.
type OrderError struct {
	Status  int
	Code    string
	Message string
}

func (e *OrderError) Error() string {
	return e.Code + ": " + e.Message
}

func (e *OrderError) Is(target error) bool {
	switch target {
	case errs.ErrSlotTaken:
		return e.Code == CodeSlotTaken
	case errs.ErrOrderFailed:
		return true
	}
	return false
}

// NewOrderError classifies a non-success order response.
func NewOrderError(status int, code, message string) *OrderError {
	if status == http.StatusConflict && code == CodeSlotTaken {
		if message == "" {
			message = "This time slot was just booked by another customer"
		}
		return &OrderError{Status: status, Code: CodeSlotTaken, Message: message}
	}
	if message == "" {
		message = DefaultOrderFailureMessage
	}
	if code == "" || code == CodeSlotTaken {
		code = CodeOrderFailed
	}
	return &OrderError{Status: status, Code: code, Message: message}
}

func AsOrderError(err error) (*OrderError, bool) {
	var oe *OrderError
	if errors.As(err, &oe) {
		return oe, true
	}
	return nil, false
}
