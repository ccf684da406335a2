//go:build unit || e2e

package builder

import (
	"maps"

	"dive-booking-gateway/internal/domain/booking"
	reqdto "dive-booking-gateway/internal/handler/dto/request"
)

type BookingBuilder struct {
	ProductID  int
	Start      string
	End        string
	Persons    map[string]int
	ResourceID *int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ProductID: 4242,
		Start:     "2026-11-02",
		End:       "2026-11-02",
		Persons:   map[string]int{"adult": 2, "child": 1},
	}
}

func (b *BookingBuilder) WithProductID(id int) *BookingBuilder {
	b.ProductID = id
	return b
}

func (b *BookingBuilder) WithDates(start, end string) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithPersons(p map[string]int) *BookingBuilder {
	b.Persons = p
	return b
}

func (b *BookingBuilder) WithResourceID(id int) *BookingBuilder {
	b.ResourceID = &id
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Request, error) {
	return booking.NewRequest(b.ProductID, b.Start, b.End, booking.PersonCounts(maps.Clone(b.Persons)), b.ResourceID)
}

// MustBuildDomain is for fixtures that are valid by construction.
func (b *BookingBuilder) MustBuildDomain() *booking.Request {
	req, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return req
}

func (b *BookingBuilder) BuildParams() reqdto.BookingParams {
	return reqdto.BookingParams{
		ProductID:  b.ProductID,
		Start:      b.Start,
		End:        b.End,
		Persons:    maps.Clone(b.Persons),
		ResourceID: b.ResourceID,
	}
}

func (b *BookingBuilder) BuildPriceDTO() reqdto.PriceRequest {
	return reqdto.PriceRequest{BookingParams: b.BuildParams()}
}

func (b *BookingBuilder) BuildOrderDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		BookingParams: b.BuildParams(),
		Customer: reqdto.CustomerRequest{
			FirstName: "Maya",
			LastName:  "Reef",
			Email:     "maya@example.com",
			Phone:     "+1-305-555-0100",
		},
		Note: "first open water dive",
	}
}
