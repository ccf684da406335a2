package wordpress

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"dive-booking-gateway/internal/domain/booking"
	"dive-booking-gateway/internal/infra"
	"dive-booking-gateway/internal/pkg/config"
	"dive-booking-gateway/internal/pkg/errs"
)

const (
	SubpathAvailability = "bookings/availability"
	SubpathPrice        = "bookings/price"
	SubpathCreateOrder  = "bookings/create-order"
	SubpathPersonTypes  = "bookings/person-types"
	SubpathResources    = "bookings/resources"
	SubpathDebug        = "bookings/debug"

	adminAjaxPath = "/wp-admin/admin-ajax.php"
)

// BookingAPI is the client for the booking plugin's REST namespace.
type BookingAPI struct {
	client         *Client
	namespacePath  string
	fallbackAction string
	logger         *slog.Logger
}

func NewBookingAPI(client *Client, cfg config.Config, logger *slog.Logger) *BookingAPI {
	ns := strings.Trim(cfg.WordPress.BookingNamespace, "/")
	return &BookingAPI{
		client:         client,
		namespacePath:  "/wp-json/" + ns + "/",
		fallbackAction: cfg.WordPress.AvailabilityFallbackAction,
		logger:         logger,
	}
}

func (b *BookingAPI) path(subpath string) string {
	return b.namespacePath + strings.TrimPrefix(subpath, "/")
}

// Target returns the absolute upstream URL for a namespace subpath.
func (b *BookingAPI) Target(subpath string, query url.Values) string {
	return b.client.URL(b.path(subpath), query)
}

// Forward relays a request verbatim. Status and body come back untouched.
func (b *BookingAPI) Forward(ctx context.Context, method, subpath string, query url.Values, body []byte) (*Response, error) {
	r := Request{
		Method: method,
		Path:   b.path(subpath),
	}
	if method == http.MethodGet || method == http.MethodHead {
		r.Query = query
	} else {
		r.Body = body
	}
	return b.client.Do(ctx, r)
}

func (b *BookingAPI) Availability(ctx context.Context, req *booking.Request) (json.RawMessage, error) {
	resp, err := b.client.DoJSON(ctx, Request{
		Method: http.MethodGet,
		Path:   b.path(SubpathAvailability),
		Query:  bookingQuery(req),
	}, nil)
	if err != nil {
		return nil, err
	}
	return rawJSON(b, resp, SubpathAvailability)
}

// AvailabilityFallback asks admin-ajax for the same plugin action the REST route wraps.
func (b *BookingAPI) AvailabilityFallback(ctx context.Context, req *booking.Request) (json.RawMessage, error) {
	q := bookingQuery(req)
	q.Set("action", b.fallbackAction)

	resp, err := b.client.DoJSON(ctx, Request{
		Method: http.MethodGet,
		Path:   adminAjaxPath,
		Query:  q,
	}, nil)
	if err != nil {
		return nil, err
	}

	// admin-ajax wraps payloads as {"success":bool,"data":...}
	var envelope struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &envelope); err == nil && envelope.Success != nil {
		if !*envelope.Success {
			code, message := parseErrorBody(envelope.Data)
			return nil, infra.NewRejectedErr(b.logger, b.client.URL(adminAjaxPath, q), resp.Status, code, message, resp.Body)
		}
		return envelope.Data, nil
	}
	return rawJSON(b, resp, adminAjaxPath)
}

type pricePayload struct {
	ProductID  int            `json:"product_id"`
	Start      string         `json:"start"`
	End        string         `json:"end"`
	Persons    map[string]int `json:"persons"`
	ResourceID *int           `json:"resource_id,omitempty"`
}

type priceResponse struct {
	Currency  string       `json:"currency"`
	Subtotal  flexNumber   `json:"subtotal"`
	Tax       flexNumber   `json:"tax"`
	Total     *flexNumber  `json:"total"`
	Breakdown []priceEntry `json:"breakdown"`
}

type priceEntry struct {
	Label  string     `json:"label"`
	Amount flexNumber `json:"amount"`
}

// Price asks the plugin's calculator. A missing or unparseable total is a decode error;
// deciding whether a zero total is trustworthy is left to the caller.
func (b *BookingAPI) Price(ctx context.Context, req *booking.Request) (*booking.Quote, error) {
	body, err := json.Marshal(newPricePayload(req))
	if err != nil {
		return nil, errs.Wrapf(err, "encode price payload for product %d", req.ProductID())
	}

	var out priceResponse
	r := Request{Method: http.MethodPost, Path: b.path(SubpathPrice), Body: body}
	if _, err := b.client.DoJSON(ctx, r, &out); err != nil {
		return nil, err
	}
	if out.Total == nil {
		return nil, infra.WrapUpstreamErr(b.logger, infra.KindDecode, b.Target(SubpathPrice, nil), http.StatusOK, "price response has no usable total", nil)
	}
	total, ok := out.Total.money()
	if !ok {
		return nil, infra.WrapUpstreamErr(b.logger, infra.KindDecode, b.Target(SubpathPrice, nil), http.StatusOK, "price response has no usable total", nil)
	}

	lines := make([]booking.BreakdownLine, 0, len(out.Breakdown))
	for _, e := range out.Breakdown {
		amount, _ := e.Amount.money()
		lines = append(lines, booking.BreakdownLine{Label: e.Label, Amount: amount})
	}

	subtotal, _ := out.Subtotal.money()
	tax, _ := out.Tax.money()
	q := booking.NewUpstreamQuote(out.Currency, subtotal, tax, total, lines)
	return &q, nil
}

func newPricePayload(req *booking.Request) pricePayload {
	return pricePayload{
		ProductID:  req.ProductID(),
		Start:      req.StartDate(),
		End:        req.EndDate(),
		Persons:    req.ForwardedPersons(),
		ResourceID: req.ResourceID(),
	}
}

type createOrderPayload struct {
	pricePayload
	Customer customerPayload `json:"customer"`
	Note     string          `json:"note,omitempty"`
}

type customerPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type createOrderResponse struct {
	OrderID flexNumber `json:"order_id"`
	PayURL  string     `json:"pay_url"`
	Code    string     `json:"code"`
	Message string     `json:"message"`
}

// CreateOrder returns *booking.OrderError for any answer the plugin gave,
// and an infra.UpstreamError when the plugin could not be reached.
func (b *BookingAPI) CreateOrder(ctx context.Context, in booking.OrderInput) (*booking.Order, error) {
	body, err := json.Marshal(createOrderPayload{
		pricePayload: newPricePayload(in.Request),
		Customer: customerPayload{
			FirstName: in.Customer.FirstName,
			LastName:  in.Customer.LastName,
			Email:     in.Customer.Email,
			Phone:     in.Customer.Phone,
		},
		Note: in.Note,
	})
	if err != nil {
		return nil, errs.Wrapf(err, "encode order payload for product %d", in.Request.ProductID())
	}

	header := http.Header{}
	if in.IdempotencyKey != "" {
		header.Set("Idempotency-Key", in.IdempotencyKey)
	}

	resp, err := b.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   b.path(SubpathCreateOrder),
		Body:   body,
		Header: header,
	})
	if err != nil {
		return nil, err
	}

	var out createOrderResponse
	_ = json.Unmarshal(resp.Body, &out) // best effort; error bodies vary

	if resp.OK() && out.PayURL != "" {
		return &booking.Order{OrderID: int(out.OrderID.value), PayURL: out.PayURL}, nil
	}

	b.logger.Warn("Booking order not created",
		slog.Int("status", resp.Status),
		slog.String("code", out.Code),
		slog.Int("product_id", in.Request.ProductID()),
	)
	return nil, booking.NewOrderError(resp.Status, out.Code, out.Message)
}

func (b *BookingAPI) PersonTypes(ctx context.Context, productID int) (json.RawMessage, error) {
	return b.getByProduct(ctx, SubpathPersonTypes, productID)
}

func (b *BookingAPI) Resources(ctx context.Context, productID int) (json.RawMessage, error) {
	return b.getByProduct(ctx, SubpathResources, productID)
}

func (b *BookingAPI) getByProduct(ctx context.Context, subpath string, productID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("product_id", strconv.Itoa(productID))
	resp, err := b.client.DoJSON(ctx, Request{Method: http.MethodGet, Path: b.path(subpath), Query: q}, nil)
	if err != nil {
		return nil, err
	}
	return rawJSON(b, resp, subpath)
}

func rawJSON(b *BookingAPI, resp *Response, target string) (json.RawMessage, error) {
	if !json.Valid(resp.Body) {
		return nil, infra.WrapUpstreamErr(b.logger, infra.KindDecode, target, resp.Status, "upstream returned invalid JSON", nil)
	}
	return json.RawMessage(resp.Body), nil
}

// bookingQuery encodes persons as persons[key]=qty, which PHP parses into an array.
func bookingQuery(req *booking.Request) url.Values {
	q := url.Values{}
	q.Set("product_id", strconv.Itoa(req.ProductID()))
	if req.StartDate() != "" {
		q.Set("start", req.StartDate())
	}
	if req.EndDate() != "" {
		q.Set("end", req.EndDate())
	}
	persons := req.ForwardedPersons()
	for _, k := range persons.SortedKeys() {
		q.Set("persons["+k+"]", strconv.Itoa(persons[k]))
	}
	if rid := req.ResourceID(); rid != nil {
		q.Set("resource_id", strconv.Itoa(*rid))
	}
	return q
}

// flexNumber accepts 12.5, "12.50" and "" from PHP-generated JSON.
type flexNumber struct {
	value float64
	valid bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		// tolerate junk; the field simply stays invalid
		return nil
	}
	n.value = f
	n.valid = true
	return nil
}

// money converts a valid amount to cents; out-of-range amounts count as missing.
func (n flexNumber) money() (booking.Money, bool) {
	if !n.valid || !booking.IsValidAmount(n.value) {
		return booking.NewMoney(0), false
	}
	return booking.NewMoneyFromDecimal(n.value), true
}
