//go:build unit

package response_test

import (
	"encoding/json"
	"testing"

	"dive-booking-gateway/internal/domain/booking"
	resdto "dive-booking-gateway/internal/handler/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQuote(t *testing.T) {
	t.Run("money becomes decimals", func(t *testing.T) {
		q := booking.NewUpstreamQuote("USD", booking.NewMoney(12000), booking.NewMoney(900), booking.NewMoney(12900), []booking.BreakdownLine{
			{Label: "Adult × 2", Amount: booking.NewMoney(9000)},
			{Label: "Child × 1", Amount: booking.NewMoney(3000)},
		})

		res, err := resdto.FromQuote(q)
		require.NoError(t, err)

		b, err := json.Marshal(res)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"currency":"USD","subtotal":120,"tax":9,"total":129,"source":"upstream",
			"breakdown":[{"label":"Adult × 2","amount":90},{"label":"Child × 1","amount":30}]
		}`, string(b))
	})

	t.Run("breakdown is never null", func(t *testing.T) {
		res, err := resdto.FromQuote(booking.Quote{Currency: "USD"})
		require.NoError(t, err)

		b, err := json.Marshal(res)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"breakdown":[]`)
	})
}
