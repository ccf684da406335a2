package bootstrap

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"dive-booking-gateway/internal/infra/cache"
	"dive-booking-gateway/internal/pkg/clock"
	"dive-booking-gateway/internal/pkg/config"
	"dive-booking-gateway/internal/usecase"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		clock.NewRealClock,
		NewHTTPClient,
		NewCache,
	),
)

// NewHTTPClient is shared by every WordPress API. Per-request deadlines come
// from UPSTREAM_TIMEOUT; the transport only bounds connection setup.
func NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          50,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	return &http.Client{Transport: transport}
}

func NewCache(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (usecase.Cache, error) {
	if !cfg.Cache.UsesRedis() {
		logger.Info("メディアキャッシュ: インメモリを使用します")
		return cache.NewMemoryCache(clk, cfg.Cache.MaxEntries), nil
	}

	client, err := cache.NewRedisClient(cfg.Cache)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("メディアキャッシュ: Redis を使用します", slog.String("addr", cfg.Cache.RedisAddr))
	return cache.NewRedisCache(client), nil
}
