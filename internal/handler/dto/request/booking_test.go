//go:build unit

package request_test

import (
	"testing"

	"dive-booking-gateway/internal/domain/booking"
	reqdto "dive-booking-gateway/internal/handler/dto/request"
	"dive-booking-gateway/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityQueryToDomain(t *testing.T) {
	t.Run("persons and resource are parsed leniently", func(t *testing.T) {
		q := reqdto.AvailabilityQuery{
			ProductID:  " 4242 ",
			Start:      "2026-11-02",
			End:        "2026-11-03",
			Persons:    map[string]string{"adult": "2", "child": "x", "infant": "-1", "observer": "0"},
			ResourceID: "0",
		}

		req, err := q.ToDomain()

		require.NoError(t, err)
		assert.Equal(t, 4242, req.ProductID())
		if diff := cmp.Diff(booking.PersonCounts{"adult": 2, "observer": 0}, req.PersonCounts()); diff != "" {
			t.Errorf("persons mismatch (-want +got):\n%s", diff)
		}
		assert.Nil(t, req.ResourceID())
	})

	t.Run("positive resource id is kept", func(t *testing.T) {
		req, err := reqdto.AvailabilityQuery{ProductID: "1", ResourceID: "12"}.ToDomain()
		require.NoError(t, err)
		require.NotNil(t, req.ResourceID())
		assert.Equal(t, 12, *req.ResourceID())
	})

	t.Run("invalid product id", func(t *testing.T) {
		_, err := reqdto.AvailabilityQuery{ProductID: "reef"}.ToDomain()
		assert.ErrorIs(t, err, errs.ErrInvalidProductID)
	})
}

func TestBookingParamsDateAliases(t *testing.T) {
	tests := []struct {
		name      string
		params    reqdto.BookingParams
		wantStart string
		wantEnd   string
	}{
		{name: "short names", params: reqdto.BookingParams{ProductID: 1, Start: "2026-11-02", End: "2026-11-03"}, wantStart: "2026-11-02", wantEnd: "2026-11-03"},
		{name: "long names", params: reqdto.BookingParams{ProductID: 1, StartDate: "2026-11-02", EndDate: "2026-11-03"}, wantStart: "2026-11-02", wantEnd: "2026-11-03"},
		{name: "short names win", params: reqdto.BookingParams{ProductID: 1, Start: "2026-11-04", StartDate: "2026-11-02", End: "2026-11-05"}, wantStart: "2026-11-04", wantEnd: "2026-11-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.params.ToDomain()
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, req.StartDate())
			assert.Equal(t, tt.wantEnd, req.EndDate())
		})
	}
}

func TestParseProductID(t *testing.T) {
	id, err := reqdto.ParseProductID("77")
	require.NoError(t, err)
	assert.Equal(t, 77, id)

	for _, raw := range []string{"", "0", "-4", "abc", "1.5"} {
		_, err := reqdto.ParseProductID(raw)
		assert.ErrorIs(t, err, errs.ErrInvalidProductID, raw)
	}
}

func TestCreateOrderRequestToDomain(t *testing.T) {
	r := reqdto.CreateOrderRequest{
		BookingParams: reqdto.BookingParams{ProductID: 9, Persons: map[string]int{"adult": 1}},
		Customer:      reqdto.CustomerRequest{FirstName: " Maya ", Email: " maya@example.com "},
		Note:          "  night dive ",
	}

	in, err := r.ToDomain(" key-1 ")

	require.NoError(t, err)
	assert.Equal(t, "Maya", in.Customer.FirstName)
	assert.Equal(t, "maya@example.com", in.Customer.Email)
	assert.Equal(t, "night dive", in.Note)
	assert.Equal(t, "key-1", in.IdempotencyKey)
	assert.Equal(t, 9, in.Request.ProductID())
}
