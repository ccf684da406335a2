package booking

import (
	"encoding/json"
	"math"
	"sort"
)

// Money is an amount in minor units (cents) of the quote currency.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// MaxAmount bounds any decimal amount read from upstream data. With MaxPersons
// it keeps every quote well inside the int64 cent range.
const MaxAmount = 1e9

// IsValidAmount reports whether a decimal amount is finite and within MaxAmount.
func IsValidAmount(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) <= MaxAmount
}

// NewMoneyFromDecimal rounds to the nearest cent.
func NewMoneyFromDecimal(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Decimal() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal())
}

// PersonCounts maps a person-type key (adult, child, ...) to a headcount.
type PersonCounts map[string]int

// Positive returns only entries with a quantity above zero.
func (p PersonCounts) Positive() PersonCounts {
	out := make(PersonCounts, len(p))
	for k, v := range p {
		if v > 0 {
			out[k] = v
		}
	}
	return out
}

// SortedKeys returns the positive person-type keys in lexical order.
func (p PersonCounts) SortedKeys() []string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if v > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// SumPersons returns the sum of positive counts, never less than one.
// The sum saturates at math.MaxInt instead of wrapping.
func SumPersons(p PersonCounts) int {
	total := 0
	for _, v := range p {
		if v <= 0 {
			continue
		}
		if total > math.MaxInt-v {
			return math.MaxInt
		}
		total += v
	}
	if total <= 0 {
		return 1
	}
	return total
}
