package wordpress

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"dive-booking-gateway/internal/domain/booking"
	"dive-booking-gateway/internal/infra"
	"dive-booking-gateway/internal/pkg/config"
	"dive-booking-gateway/internal/pkg/errs"
)

const wcProductsPath = "/wp-json/wc/v3/products/"

const (
	queryAuthKey    = "consumer_key"
	queryAuthSecret = "consumer_secret"
)

// AuthMode selects how WooCommerce REST credentials are sent.
type AuthMode string

const (
	// AuthBasic sends the consumer key/secret as HTTP Basic auth (HTTPS sites).
	AuthBasic AuthMode = "basic"
	// AuthQuery sends them as consumer_key/consumer_secret query parameters,
	// for hosts that strip the Authorization header.
	AuthQuery AuthMode = "query"
)

var AuthModes = []AuthMode{AuthBasic, AuthQuery}

func ParseAuthMode(s string) AuthMode {
	if AuthMode(strings.ToLower(strings.TrimSpace(s))) == AuthQuery {
		return AuthQuery
	}
	return AuthBasic
}

type ProductAPI struct {
	client   *Client
	key      string
	secret   string
	authMode AuthMode
	logger   *slog.Logger
}

func NewProductAPI(client *Client, cfg config.Config, logger *slog.Logger) *ProductAPI {
	return &ProductAPI{
		client:   client,
		key:      cfg.WordPress.ConsumerKey,
		secret:   cfg.WordPress.ConsumerSecret,
		authMode: ParseAuthMode(cfg.WordPress.AuthMode),
		logger:   logger,
	}
}

type wcProduct struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Price        string       `json:"price"`
	RegularPrice string       `json:"regular_price"`
	MetaData     []wcMetaData `json:"meta_data"`
}

type wcMetaData struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// FetchProduct returns the raw WooCommerce response using the given auth mode.
// Non-2xx answers are returned, not treated as errors.
func (p *ProductAPI) FetchProduct(ctx context.Context, id int, mode AuthMode) (*Response, error) {
	return p.client.Do(ctx, p.productRequest(id, mode))
}

func (p *ProductAPI) productRequest(id int, mode AuthMode) Request {
	r := Request{
		Method: http.MethodGet,
		Path:   wcProductsPath + strconv.Itoa(id),
		Header: http.Header{},
	}
	if p.key == "" {
		return r
	}
	switch mode {
	case AuthQuery:
		r.Query = url.Values{}
		r.Query.Set(queryAuthKey, p.key)
		r.Query.Set(queryAuthSecret, p.secret)
	default:
		r.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(p.key+":"+p.secret)))
	}
	return r
}

// ProductJSON returns the product document as WooCommerce sent it.
func (p *ProductAPI) ProductJSON(ctx context.Context, id int) (json.RawMessage, error) {
	resp, err := p.fetchChecked(ctx, id)
	if err != nil {
		return nil, err
	}
	if !json.Valid(resp.Body) {
		return nil, infra.WrapUpstreamErr(p.logger, infra.KindDecode, wcProductsPath+strconv.Itoa(id), resp.Status, "upstream returned invalid JSON", nil)
	}
	return json.RawMessage(resp.Body), nil
}

// GetProduct loads a product with its meta_data for price fallback.
func (p *ProductAPI) GetProduct(ctx context.Context, id int) (*booking.Product, error) {
	resp, err := p.fetchChecked(ctx, id)
	if err != nil {
		return nil, err
	}

	var wp wcProduct
	if err := json.Unmarshal(resp.Body, &wp); err != nil {
		return nil, infra.WrapUpstreamErr(p.logger, infra.KindDecode, wcProductsPath+strconv.Itoa(id), resp.Status, "failed to decode product", err)
	}

	meta := make([]booking.ProductMeta, 0, len(wp.MetaData))
	for _, m := range wp.MetaData {
		meta = append(meta, booking.ProductMeta{Key: m.Key, Value: m.Value})
	}

	return &booking.Product{
		ID:           wp.ID,
		Name:         wp.Name,
		Price:        wp.Price,
		RegularPrice: wp.RegularPrice,
		MetaData:     meta,
	}, nil
}

func (p *ProductAPI) fetchChecked(ctx context.Context, id int) (*Response, error) {
	req := p.productRequest(id, p.authMode)
	resp, err := p.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	target := wcProductsPath + strconv.Itoa(id)
	if resp.Status == http.StatusNotFound {
		return nil, notFoundErr(p.logger, target, errs.ErrProductNotFound)
	}
	if !resp.OK() {
		code, message := parseErrorBody(resp.Body)
		return nil, infra.NewRejectedErr(p.logger, target, resp.Status, code, message, resp.Body)
	}
	return resp, nil
}
