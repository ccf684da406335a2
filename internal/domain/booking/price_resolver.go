package booking

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Checked in order; the first value that parses to a positive number wins.
var bookingCostKeys = []string{
	"_wc_booking_base_cost",
	"_wc_booking_cost",
	"_wc_booking_block_cost",
	"_wc_display_cost",
	"booking_base_cost",
	"booking_cost",
	"base_cost",
}

// ResolveUnitCost finds the per-person cost for a product.
// Known meta keys come first, then nested "booking" properties of object
// values, then the listed price and regular price.
func ResolveUnitCost(p *Product) (Money, QuoteSource) {
	if p == nil {
		return NewMoney(0), SourceUnavailable
	}

	for _, key := range bookingCostKeys {
		if v, ok := p.Meta(key); ok {
			if cost, ok := parsePositive(v); ok {
				return NewMoneyFromDecimal(cost), SourceBookingCostMeta
			}
		}
	}

	for _, m := range p.MetaData {
		obj, ok := m.Value.(map[string]any)
		if !ok {
			continue
		}
		if cost, ok := nestedBookingCost(obj); ok {
			return NewMoneyFromDecimal(cost), SourceBookingCostMeta
		}
	}

	if cost, ok := parsePositive(p.Price); ok {
		return NewMoneyFromDecimal(cost), SourceProductPrice
	}
	if cost, ok := parsePositive(p.RegularPrice); ok {
		return NewMoneyFromDecimal(cost), SourceProductPrice
	}

	return NewMoney(0), SourceUnavailable
}

func nestedBookingCost(obj map[string]any) (float64, bool) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !strings.Contains(strings.ToLower(k), "booking") {
			continue
		}
		if cost, ok := parsePositive(obj[k]); ok {
			return cost, true
		}
	}
	return 0, false
}

func parsePositive(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if f <= 0 || !IsValidAmount(f) {
		return 0, false
	}
	return f, true
}

// FallbackQuote prices a booking from product data alone: unit cost times headcount.
func FallbackQuote(p *Product, persons PersonCounts, currency string) Quote {
	unit, source := ResolveUnitCost(p)
	if source == SourceUnavailable {
		return UnavailableQuote(currency)
	}

	count := SumPersons(persons)
	subtotal := unit.Times(count)

	label := fmt.Sprintf("Price × %d", count)
	if source == SourceBookingCostMeta {
		label = fmt.Sprintf("Booking cost × %d", count)
	}

	return Quote{
		Currency:  currencyOrDefault(currency),
		Subtotal:  subtotal,
		Tax:       NewMoney(0),
		Total:     subtotal,
		Breakdown: []BreakdownLine{{Label: label, Amount: subtotal}},
		Source:    source,
	}
}
