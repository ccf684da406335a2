package request

import (
	"strconv"
	"strings"

	"dive-booking-gateway/internal/domain/booking"
	"dive-booking-gateway/internal/pkg/errs"
)

// BookingParams is the shape shared by the price and order bodies. Date
// fields accept both the plugin's names and the frontend's long names.
type BookingParams struct {
	ProductID  int            `json:"product_id" binding:"required"`
	Start      string         `json:"start"`
	End        string         `json:"end"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	Persons    map[string]int `json:"persons"`
	ResourceID *int           `json:"resource_id,omitempty"`
}

func (p BookingParams) ToDomain() (*booking.Request, error) {
	start := firstNonEmpty(p.Start, p.StartDate)
	end := firstNonEmpty(p.End, p.EndDate)
	return booking.NewRequest(p.ProductID, start, end, booking.PersonCounts(p.Persons), p.ResourceID)
}

type PriceRequest struct {
	BookingParams
}

type CustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
}

type CreateOrderRequest struct {
	BookingParams
	Customer CustomerRequest `json:"customer"`
	Note     string          `json:"note"`
}

func (r CreateOrderRequest) ToDomain(idempotencyKey string) (booking.OrderInput, error) {
	req, err := r.BookingParams.ToDomain()
	if err != nil {
		return booking.OrderInput{}, err
	}
	return booking.OrderInput{
		Request: req,
		Customer: booking.Customer{
			FirstName: strings.TrimSpace(r.Customer.FirstName),
			LastName:  strings.TrimSpace(r.Customer.LastName),
			Email:     strings.TrimSpace(r.Customer.Email),
			Phone:     strings.TrimSpace(r.Customer.Phone),
		},
		Note:           strings.TrimSpace(r.Note),
		IdempotencyKey: strings.TrimSpace(idempotencyKey),
	}, nil
}

// AvailabilityQuery is read from the query string:
// product_id, start, end, persons[key]=qty and resource_id.
type AvailabilityQuery struct {
	ProductID  string
	Start      string
	End        string
	Persons    map[string]string
	ResourceID string
}

func (q AvailabilityQuery) ToDomain() (*booking.Request, error) {
	productID, err := strconv.Atoi(strings.TrimSpace(q.ProductID))
	if err != nil {
		return nil, errs.ErrInvalidProductID
	}

	persons := make(booking.PersonCounts, len(q.Persons))
	for key, raw := range q.Persons {
		n, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr != nil || n < 0 {
			continue
		}
		persons[key] = n
	}

	var resourceID *int
	if q.ResourceID != "" {
		id, convErr := strconv.Atoi(q.ResourceID)
		if convErr == nil && id > 0 {
			resourceID = &id
		}
	}

	return booking.NewRequest(productID, q.Start, q.End, persons, resourceID)
}

// ParseProductID accepts the product id from a path or query parameter.
func ParseProductID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, errs.ErrInvalidProductID
	}
	return id, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
