package response

import (
	"dive-booking-gateway/internal/domain/booking"
	"dive-booking-gateway/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type BreakdownLineResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type QuoteResponse struct {
	Currency  string                  `json:"currency"`
	Subtotal  float64                 `json:"subtotal"`
	Tax       float64                 `json:"tax"`
	Total     float64                 `json:"total"`
	Breakdown []BreakdownLineResponse `json:"breakdown"`
	Source    string                  `json:"source"`
}

type OrderResponse struct {
	OrderID int    `json:"order_id,omitempty"`
	PayURL  string `json:"pay_url"`
}

var moneyToDecimal = copier.TypeConverter{
	SrcType: booking.Money{},
	DstType: float64(0),
	Fn: func(src any) (any, error) {
		m, ok := src.(booking.Money)
		if !ok {
			return nil, errs.Newf("expected booking.Money, got %T", src)
		}
		return m.Decimal(), nil
	},
}

var sourceToString = copier.TypeConverter{
	SrcType: booking.QuoteSource(""),
	DstType: "",
	Fn: func(src any) (any, error) {
		s, ok := src.(booking.QuoteSource)
		if !ok {
			return nil, errs.Newf("expected booking.QuoteSource, got %T", src)
		}
		return string(s), nil
	},
}

var quoteCopyOption = copier.Option{
	DeepCopy:   true,
	Converters: []copier.TypeConverter{moneyToDecimal, sourceToString},
}

func FromQuote(q booking.Quote) (*QuoteResponse, error) {
	var res QuoteResponse
	if err := copier.CopyWithOption(&res, &q, quoteCopyOption); err != nil {
		return nil, errs.Wrap(err, "failed to map quote")
	}
	if res.Breakdown == nil {
		res.Breakdown = []BreakdownLineResponse{}
	}
	return &res, nil
}

func FromOrder(o *booking.Order) *OrderResponse {
	return &OrderResponse{
		OrderID: o.OrderID,
		PayURL:  o.PayURL,
	}
}
