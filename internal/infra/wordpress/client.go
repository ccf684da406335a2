// Package wordpress talks to the WordPress installation that hosts the
// booking plugin, WooCommerce and the media library.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"dive-booking-gateway/internal/infra"
	"dive-booking-gateway/internal/pkg/config"
)

// userAgent identifies this gateway; some WordPress hosts' WAFs block requests without one.
const userAgent = "dive-booking-gateway/1.0"

const maxBodyBytes = 4 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

type Request struct {
	Method string
	Path   string // relative to the site root, e.g. /wp-json/klsd/v1/bookings/price
	Query  url.Values
	Body   []byte
	Header http.Header
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// wpError is the shape of WP_Error responses from the REST API.
type wpError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func NewClient(cfg config.Config, httpClient *http.Client, logger *slog.Logger) *Client {
	timeout := cfg.WordPress.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    cfg.WordPress.TrimmedBaseURL(),
		httpClient: httpClient,
		timeout:    timeout,
		logger:     logger,
	}
}

func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// logTarget is URL with credentials masked, for logs and error payloads.
func (c *Client) logTarget(path string, query url.Values) string {
	if query.Get(queryAuthSecret) == "" {
		return c.URL(path, query)
	}
	masked := make(url.Values, len(query))
	for k, v := range query {
		masked[k] = v
	}
	masked.Set(queryAuthSecret, "***")
	return c.URL(path, masked)
}

// Do sends the request with a bounded deadline. Non-2xx answers are returned
// as a Response, not an error; only transport failures produce an error.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.logTarget(r.Path, r.Query)

	var body io.Reader
	if len(r.Body) > 0 && r.Method != http.MethodGet && r.Method != http.MethodHead {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, c.URL(r.Path, r.Query), body)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindUnreachable, target, 0, "failed to build request", err)
	}

	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error repeats the full URL, credentials included
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindUnreachable, target, 0, "upstream request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindUnreachable, target, resp.StatusCode, "failed to read upstream response", err)
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   respBody,
	}, nil
}

// DoJSON is Do plus status checking and decoding into out (which may be nil).
func (c *Client) DoJSON(ctx context.Context, r Request, out any) (*Response, error) {
	resp, err := c.Do(ctx, r)
	if err != nil {
		return nil, err
	}

	target := c.logTarget(r.Path, r.Query)
	if !resp.OK() {
		code, message := parseErrorBody(resp.Body)
		return resp, infra.NewRejectedErr(c.logger, target, resp.Status, code, message, resp.Body)
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return resp, infra.WrapUpstreamErr(c.logger, infra.KindDecode, target, resp.Status, "failed to decode upstream response", err)
		}
	}
	return resp, nil
}

// parseErrorBody is best effort; an unparseable body yields empty strings.
func parseErrorBody(body []byte) (code, message string) {
	var e wpError
	if err := json.Unmarshal(body, &e); err != nil {
		return "", ""
	}
	message = e.Message
	if message == "" {
		message = e.Error
	}
	return e.Code, message
}

func notFoundErr(logger *slog.Logger, target string, sentinel error) error {
	return infra.WrapUpstreamErr(logger, infra.KindNotFound, target, http.StatusNotFound, "resource not found upstream", sentinel)
}
