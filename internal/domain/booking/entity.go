package booking

import (
	"strings"
	"time"

	"dive-booking-gateway/internal/pkg/errs"
)

const (
	isoDate = "2006-01-02"

	// MaxPersons caps a single person type and the whole party.
	MaxPersons = 1000
)

type Request struct {
	productID    int
	startDate    string
	endDate      string
	personCounts PersonCounts
	resourceID   *int
}

// NewRequest validates the product id and, when both are given, the date order.
// Dates may be plain dates or RFC3339 timestamps and are forwarded verbatim.
func NewRequest(productID int, startDate, endDate string, persons PersonCounts, resourceID *int) (*Request, error) {
	if productID <= 0 {
		return nil, errs.ErrInvalidProductID
	}

	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)
	if startDate != "" && endDate != "" {
		start, okStart := parseISO(startDate)
		end, okEnd := parseISO(endDate)
		if !okStart || !okEnd || end.Before(start) {
			return nil, errs.ErrInvalidDateRange
		}
	}

	if persons == nil {
		persons = PersonCounts{}
	}
	if err := validatePersons(persons); err != nil {
		return nil, err
	}

	return &Request{
		productID:    productID,
		startDate:    startDate,
		endDate:      endDate,
		personCounts: persons,
		resourceID:   resourceID,
	}, nil
}

func validatePersons(persons PersonCounts) error {
	total := 0
	for _, v := range persons {
		if v <= 0 {
			continue
		}
		if v > MaxPersons {
			return errs.ErrInvalidPersonCount
		}
		total += v
		if total > MaxPersons {
			return errs.ErrInvalidPersonCount
		}
	}
	return nil
}

func parseISO(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(isoDate, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (r *Request) ProductID() int                 { return r.productID }
func (r *Request) StartDate() string              { return r.startDate }
func (r *Request) EndDate() string                { return r.endDate }
func (r *Request) PersonCounts() PersonCounts     { return r.personCounts }
func (r *Request) ResourceID() *int               { return r.resourceID }
func (r *Request) TotalPersons() int              { return SumPersons(r.personCounts) }
func (r *Request) ForwardedPersons() PersonCounts { return r.personCounts.Positive() }
