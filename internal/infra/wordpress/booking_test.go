//go:build unit

package wordpress_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"dive-booking-gateway/internal/domain/booking"
	"dive-booking-gateway/internal/infra"
	"dive-booking-gateway/internal/infra/wordpress"
	"dive-booking-gateway/internal/pkg/config"
	"dive-booking-gateway/internal/pkg/errs"
	"dive-booking-gateway/tests/common/builder"
	"dive-booking-gateway/tests/common/httptest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, mutate func(cfg *config.Config)) (*wordpress.Client, config.Config) {
	t.Helper()
	cfg := config.NewTestConfig()
	cfg.WordPress.BaseURL = baseURL
	if mutate != nil {
		mutate(&cfg)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return wordpress.NewClient(cfg, &http.Client{}, logger), cfg
}

func newBookingAPI(t *testing.T, up *httptest.Upstream) *wordpress.BookingAPI {
	t.Helper()
	client, cfg := newTestClient(t, up.URL(), nil)
	return wordpress.NewBookingAPI(client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBookingAPIAvailability(t *testing.T) {
	t.Run("persons are sent as bracketed query keys", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusOK, map[string]any{"slots": []any{}})
		})
		api := newBookingAPI(t, up)
		req := builder.NewBookingBuilder().
			WithProductID(77).
			WithPersons(map[string]int{"adult": 2, "child": 1, "observer": 0}).
			WithResourceID(12).
			MustBuildDomain()

		got, err := api.Availability(context.Background(), req)

		require.NoError(t, err)
		assert.JSONEq(t, `{"slots":[]}`, string(got))

		r, _ := up.Last(t)
		assert.Equal(t, "/wp-json/klsd/v1/bookings/availability", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "77", q.Get("product_id"))
		assert.Equal(t, "2026-11-02", q.Get("start"))
		assert.Equal(t, "2", q.Get("persons[adult]"))
		assert.Equal(t, "1", q.Get("persons[child]"))
		assert.False(t, q.Has("persons[observer]"))
		assert.Equal(t, "12", q.Get("resource_id"))
		assert.Equal(t, "dive-booking-gateway/1.0", r.Header.Get("User-Agent"))
	})

	t.Run("non-2xx is a rejected upstream error", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusInternalServerError, map[string]any{"code": "rest_error", "message": "boom"})
		})
		api := newBookingAPI(t, up)

		_, err := api.Availability(context.Background(), builder.NewBookingBuilder().MustBuildDomain())

		ue, ok := infra.AsUpstreamError(err)
		require.True(t, ok)
		assert.Equal(t, infra.KindRejected, ue.Kind)
		assert.Equal(t, http.StatusInternalServerError, ue.Status)
		assert.Equal(t, "rest_error", ue.Code)
		assert.Equal(t, "boom", ue.Message)
	})

	t.Run("fallback unwraps admin-ajax envelope", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"slots": []int{1}}})
		})
		api := newBookingAPI(t, up)

		got, err := api.AvailabilityFallback(context.Background(), builder.NewBookingBuilder().MustBuildDomain())

		require.NoError(t, err)
		assert.JSONEq(t, `{"slots":[1]}`, string(got))
		r, _ := up.Last(t)
		assert.Equal(t, "/wp-admin/admin-ajax.php", r.URL.Path)
		assert.Equal(t, "klsd_get_availability", r.URL.Query().Get("action"))
		assert.Equal(t, "2", r.URL.Query().Get("persons[adult]"))
	})

	t.Run("fallback success false is rejected", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "data": map[string]any{"message": "closed"}})
		})
		api := newBookingAPI(t, up)

		_, err := api.AvailabilityFallback(context.Background(), builder.NewBookingBuilder().MustBuildDomain())

		assert.ErrorIs(t, err, errs.ErrUpstreamRejected)
	})

	t.Run("fallback passes bare payload through", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusOK, []map[string]any{{"start": "08:00"}})
		})
		api := newBookingAPI(t, up)

		got, err := api.AvailabilityFallback(context.Background(), builder.NewBookingBuilder().MustBuildDomain())

		require.NoError(t, err)
		assert.JSONEq(t, `[{"start":"08:00"}]`, string(got))
	})
}

func TestBookingAPIPrice(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantTotal  int64
		wantSub    int64
		wantLines  int
		wantLabel0 string
	}{
		{name: "numeric strings", body: `{"currency":"USD","subtotal":"120.00","tax":"9.00","total":"129.00","breakdown":[{"label":"Adult × 2","amount":"90"},{"label":"Child × 1","amount":30}]}`, wantTotal: 12900, wantSub: 12000, wantLines: 2, wantLabel0: "Adult × 2"},
		{name: "zero total is returned", body: `{"total":0}`, wantTotal: 0, wantSub: 0, wantLines: 1, wantLabel0: "Booking total"},
		{name: "missing subtotal defaults to total", body: `{"total":45.5}`, wantTotal: 4550, wantSub: 4550, wantLines: 1, wantLabel0: "Booking total"},
		{name: "missing total", body: `{"currency":"USD"}`, wantErr: true},
		{name: "junk total", body: `{"total":"n/a"}`, wantErr: true},
		{name: "NaN total", body: `{"total":"NaN"}`, wantErr: true},
		{name: "infinite total", body: `{"total":"-Inf"}`, wantErr: true},
		{name: "out of range total", body: `{"total":1e300}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			})
			api := newBookingAPI(t, up)

			q, err := api.Price(context.Background(), builder.NewBookingBuilder().MustBuildDomain())

			if tt.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDecode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, q.Total.Cents())
			assert.Equal(t, tt.wantSub, q.Subtotal.Cents())
			assert.Equal(t, booking.SourceUpstream, q.Source)
			require.Len(t, q.Breakdown, tt.wantLines)
			assert.Equal(t, tt.wantLabel0, q.Breakdown[0].Label)
		})
	}

	t.Run("payload carries positive persons only", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusOK, map[string]any{"total": 10})
		})
		api := newBookingAPI(t, up)
		req := builder.NewBookingBuilder().WithPersons(map[string]int{"adult": 2, "child": 0}).MustBuildDomain()

		_, err := api.Price(context.Background(), req)
		require.NoError(t, err)

		r, body := up.Last(t)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"product_id":4242,"start":"2026-11-02","end":"2026-11-02","persons":{"adult":2}}`, string(body))
	})
}

func TestBookingAPICreateOrder(t *testing.T) {
	newInput := func(t *testing.T) booking.OrderInput {
		in, err := builder.NewBookingBuilder().BuildOrderDTO().ToDomain("idem-1")
		require.NoError(t, err)
		return in
	}

	t.Run("success", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusOK, map[string]any{"order_id": "991", "pay_url": "https://shop.example.com/pay/991"})
		})
		api := newBookingAPI(t, up)

		order, err := api.CreateOrder(context.Background(), newInput(t))

		require.NoError(t, err)
		assert.Equal(t, 991, order.OrderID)
		assert.Equal(t, "https://shop.example.com/pay/991", order.PayURL)

		r, body := up.Last(t)
		assert.Equal(t, "/wp-json/klsd/v1/bookings/create-order", r.URL.Path)
		assert.Equal(t, "idem-1", r.Header.Get("Idempotency-Key"))
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "Maya", payload["customer"].(map[string]any)["first_name"])
		assert.Equal(t, "first open water dive", payload["note"])
	})

	t.Run("409 slot taken", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusConflict, map[string]any{"code": "SLOT_TAKEN", "message": "Slot just sold out"})
		})
		api := newBookingAPI(t, up)

		_, err := api.CreateOrder(context.Background(), newInput(t))

		assert.ErrorIs(t, err, errs.ErrSlotTaken)
		oe, ok := booking.AsOrderError(err)
		require.True(t, ok)
		assert.Equal(t, "Slot just sold out", oe.Message)
	})

	t.Run("2xx without pay url is a failure", func(t *testing.T) {
		up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			httptest.WriteJSON(w, http.StatusOK, map[string]any{"order_id": 5})
		})
		api := newBookingAPI(t, up)

		_, err := api.CreateOrder(context.Background(), newInput(t))

		oe, ok := booking.AsOrderError(err)
		require.True(t, ok)
		assert.Equal(t, booking.CodeOrderFailed, oe.Code)
		assert.NotErrorIs(t, err, errs.ErrSlotTaken)
	})

	t.Run("unreachable host is an upstream error", func(t *testing.T) {
		client, cfg := newTestClient(t, "http://127.0.0.1:1", nil)
		api := wordpress.NewBookingAPI(client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

		_, err := api.CreateOrder(context.Background(), newInput(t))

		_, isOrderErr := booking.AsOrderError(err)
		assert.False(t, isOrderErr)
		assert.ErrorIs(t, err, errs.ErrUpstreamUnreachable)
	})
}

func TestBookingAPIForward(t *testing.T) {
	up := httptest.NewUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})
	api := newBookingAPI(t, up)

	t.Run("GET forwards query and keeps status", func(t *testing.T) {
		resp, err := api.Forward(context.Background(), http.MethodGet, wordpress.SubpathAvailability, map[string][]string{"product_id": {"1"}}, []byte(`ignored`))

		require.NoError(t, err)
		assert.Equal(t, http.StatusTeapot, resp.Status)
		assert.Equal(t, "short and stout", string(resp.Body))
		assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
		r, body := up.Last(t)
		assert.Equal(t, "1", r.URL.Query().Get("product_id"))
		assert.Empty(t, body)
	})

	t.Run("POST forwards body and drops query", func(t *testing.T) {
		_, err := api.Forward(context.Background(), http.MethodPost, wordpress.SubpathPrice, map[string][]string{"x": {"1"}}, []byte(`{"product_id":1}`))

		require.NoError(t, err)
		r, body := up.Last(t)
		assert.Empty(t, r.URL.RawQuery)
		assert.JSONEq(t, `{"product_id":1}`, string(body))
	})

	t.Run("target is absolute", func(t *testing.T) {
		assert.Equal(t, up.URL()+"/wp-json/klsd/v1/bookings/price", api.Target(wordpress.SubpathPrice, nil))
	})
}

func TestClientTimeout(t *testing.T) {
	up := httptest.NewUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	client, cfg := newTestClient(t, up.URL(), func(cfg *config.Config) {
		cfg.WordPress.Timeout = 50 * time.Millisecond
	})
	api := wordpress.NewBookingAPI(client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := api.Availability(context.Background(), builder.NewBookingBuilder().MustBuildDomain())

	assert.True(t, infra.IsKind(err, infra.KindUnreachable))
}
