//go:build unit

package booking_test

import (
	"encoding/json"
	"math"
	"testing"

	"dive-booking-gateway/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumPersons(t *testing.T) {
	tests := []struct {
		name    string
		persons booking.PersonCounts
		want    int
	}{
		{name: "nilは1", persons: nil, want: 1},
		{name: "空マップは1", persons: booking.PersonCounts{}, want: 1},
		{name: "合計0は1", persons: booking.PersonCounts{"adult": 0, "child": 0}, want: 1},
		{name: "正の値のみ合計", persons: booking.PersonCounts{"adult": 2, "child": 1}, want: 3},
		{name: "負の値は無視", persons: booking.PersonCounts{"adult": 3, "child": -2}, want: 3},
		{name: "負の値のみは1", persons: booking.PersonCounts{"adult": -1}, want: 1},
		{name: "桁あふれせず上限で飽和", persons: booking.PersonCounts{"a": math.MaxInt - 1, "b": 5}, want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.SumPersons(tt.persons))
		})
	}
}

func TestPersonCounts(t *testing.T) {
	p := booking.PersonCounts{"diver": 2, "child": 0, "adult": 1, "observer": -1}

	t.Run("Positiveは0以下を除外", func(t *testing.T) {
		want := booking.PersonCounts{"diver": 2, "adult": 1}
		if diff := cmp.Diff(want, p.Positive()); diff != "" {
			t.Errorf("Positive mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("SortedKeysは辞書順", func(t *testing.T) {
		assert.Equal(t, []string{"adult", "diver"}, p.SortedKeys())
	})
}

func TestMoney(t *testing.T) {
	t.Run("小数は最も近いセントに丸める", func(t *testing.T) {
		assert.Equal(t, int64(4550), booking.NewMoneyFromDecimal(45.5).Cents())
		assert.Equal(t, int64(1000), booking.NewMoneyFromDecimal(9.999).Cents())
		assert.Equal(t, int64(13650), booking.NewMoneyFromDecimal(45.50).Times(3).Cents())
	})

	t.Run("JSONは10進数", func(t *testing.T) {
		b, err := json.Marshal(booking.NewMoney(13650))
		require.NoError(t, err)
		assert.JSONEq(t, `136.5`, string(b))
	})

	t.Run("加算と正値判定", func(t *testing.T) {
		m := booking.NewMoney(100).Add(booking.NewMoney(-100))
		assert.False(t, m.IsPositive())
		assert.True(t, booking.NewMoney(1).IsPositive())
	})
}
