//go:build unit

package api_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"dive-booking-gateway/internal/handler/api"
	"dive-booking-gateway/internal/handler/middleware"
	"dive-booking-gateway/internal/infra/wordpress"
	"dive-booking-gateway/internal/pkg/config"
	"dive-booking-gateway/internal/pkg/jwt"
	"dive-booking-gateway/internal/usecase"
	"dive-booking-gateway/tests/common/authtest"
	"dive-booking-gateway/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type ProxyHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	upstream *httptest.Upstream
	jwt      *authtest.JWTHelper
}

func (s *ProxyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.jwt = authtest.NewJWTHelper(authtest.TestAdminSecret)
	s.upstream = httptest.NewUpstream(s.T(), func(w http.ResponseWriter, _ *http.Request) {
		httptest.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	s.router = s.newRouter(s.upstream.URL(), s.jwt.Service())
}

func (s *ProxyHandlerTestSuite) newRouter(baseURL string, jwtService *jwt.Service) *gin.Engine {
	cfg := config.NewTestConfig()
	cfg.WordPress.BaseURL = baseURL
	cfg.WordPress.Timeout = time.Second
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := wordpress.NewClient(cfg, &http.Client{}, logger)
	proxyUseCase := usecase.NewProxyUseCase(wordpress.NewBookingAPI(client, cfg, logger))
	admin := middleware.NewAdminMiddleware(usecase.NewTokenValidator(jwtService))
	handler := api.NewProxyHandler(proxyUseCase, admin)

	router := gin.New()
	router.Any("/api/klsd/*path", handler.Forward)
	return router
}

func TestProxyHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProxyHandlerTestSuite))
}

func (s *ProxyHandlerTestSuite) TestAllowlist() {
	s.Run("unknown subpath is 404 without upstream call", func() {
		for _, path := range []string{"/api/klsd/bookings/not-a-real-action", "/api/klsd/wp/v2/users", "/api/klsd/", "/api/klsd/bookings/../../wc/v3/orders", "/api/klsd/bookings"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
			httptest.AssertFlatError(s.T(), rec, http.StatusNotFound, "not_allowed")
		}
		s.Equal(0, s.upstream.Calls())
	})

	s.Run("disallowed method is 405 without upstream call", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/klsd/bookings/price", nil, "")
		httptest.AssertFlatError(s.T(), rec, http.StatusMethodNotAllowed, "method_not_allowed")
		s.Equal(0, s.upstream.Calls())
	})
}

func (s *ProxyHandlerTestSuite) TestForward() {
	s.Run("GET forwards query to the namespace route", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/klsd/bookings/availability?product_id=4242&persons[adult]=2", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"ok":true}`, rec.Body.String())
		r, _ := s.upstream.Last(s.T())
		s.Equal("/wp-json/klsd/v1/bookings/availability", r.URL.Path)
		s.Equal("4242", r.URL.Query().Get("product_id"))
		s.Equal("2", r.URL.Query().Get("persons[adult]"))
	})

	s.Run("POST forwards body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/klsd/bookings/price", []byte(`{"product_id":4242}`), "")

		s.Equal(http.StatusOK, rec.Code)
		r, body := s.upstream.Last(s.T())
		s.Equal(http.MethodPost, r.Method)
		s.JSONEq(`{"product_id":4242}`, string(body))
	})

	s.Run("upstream status content type and body pass through", func() {
		up := httptest.NewUpstream(s.T(), func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=UTF-8")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("<h1>maintenance</h1>"))
		})
		router := s.newRouter(up.URL(), s.jwt.Service())

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/api/klsd/bookings/person-types?product_id=1", nil, "")

		s.Equal(http.StatusServiceUnavailable, rec.Code)
		s.Equal("text/html; charset=UTF-8", rec.Header().Get("Content-Type"))
		s.Equal("<h1>maintenance</h1>", rec.Body.String())
	})

	s.Run("network failure is 502 with target", func() {
		router := s.newRouter("http://127.0.0.1:1", s.jwt.Service())

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/api/klsd/bookings/availability?product_id=1", nil, "")

		body := httptest.AssertFlatError(s.T(), rec, http.StatusBadGateway, "upstream_fetch_failed")
		s.Equal("http://127.0.0.1:1/wp-json/klsd/v1/bookings/availability?product_id=1", body["target"])
		s.NotEmpty(body["message"])
	})
}

func (s *ProxyHandlerTestSuite) TestDebugRequiresAdmin() {
	path := "/api/klsd/bookings/debug"

	s.Run("no token is 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
		httptest.AssertFlatError(s.T(), rec, http.StatusUnauthorized, "Admin token required")
		s.Equal(0, s.upstream.Calls())
	})

	s.Run("non-admin role is 403", func() {
		token := s.jwt.GenerateToken(s.T(), "ops@example.com", "viewer")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, token)
		httptest.AssertFlatError(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
		s.Equal(0, s.upstream.Calls())
	})

	s.Run("admin token reaches upstream", func() {
		token := s.jwt.GenerateToken(s.T(), "ops@example.com", jwt.RoleAdmin)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, token)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(1, s.upstream.Calls())
	})

	s.Run("open when no admin secret is configured", func() {
		router := s.newRouter(s.upstream.URL(), jwt.NewService("", time.Hour))
		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, path, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}
