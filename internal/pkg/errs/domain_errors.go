package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Request errors
	ErrInvalidProductID   = errors.New("invalid product id")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrInvalidPersonCount = errors.New("invalid person count")

	// Booking errors
	ErrSlotTaken          = errors.New("slot taken")
	ErrOrderFailed        = errors.New("booking order failed")
	ErrAvailabilityFailed = errors.New("availability lookup failed")

	// Product / media errors
	ErrProductNotFound = errors.New("product not found")
	ErrMediaNotFound   = errors.New("media not found")

	// Upstream errors
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
	ErrUpstreamRejected    = errors.New("upstream rejected request")
)
