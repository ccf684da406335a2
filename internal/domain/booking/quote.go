package booking

const DefaultCurrency = "USD"

type BreakdownLine struct {
	Label  string
	Amount Money
}

// Quote is the price shown to the customer. Total is the authoritative charge;
// a zero Total means no price could be determined and Breakdown explains why.
type Quote struct {
	Currency  string
	Subtotal  Money
	Tax       Money
	Total     Money
	Breakdown []BreakdownLine
	Source    QuoteSource
}

type QuoteSource string

const (
	SourceUpstream        QuoteSource = "upstream"
	SourceBookingCostMeta QuoteSource = "booking_cost"
	SourceProductPrice    QuoteSource = "product_price"
	SourceUnavailable     QuoteSource = "unavailable"
)

const UnavailableLabel = "Price unavailable"

func currencyOrDefault(currency string) string {
	if currency == "" {
		return DefaultCurrency
	}
	return currency
}

// NewUpstreamQuote builds a quote from the booking plugin's own calculation.
// Subtotal defaults to total when the plugin does not report it separately.
func NewUpstreamQuote(currency string, subtotal, tax, total Money, lines []BreakdownLine) Quote {
	if subtotal.Cents() == 0 {
		subtotal = total
	}
	if len(lines) == 0 {
		lines = []BreakdownLine{{Label: "Booking total", Amount: total}}
	}
	return Quote{
		Currency:  currencyOrDefault(currency),
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		Breakdown: lines,
		Source:    SourceUpstream,
	}
}

func UnavailableQuote(currency string) Quote {
	return Quote{
		Currency:  currencyOrDefault(currency),
		Breakdown: []BreakdownLine{{Label: UnavailableLabel, Amount: NewMoney(0)}},
		Source:    SourceUnavailable,
	}
}
