package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream URL, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	WordPress WordPressConfig
	Booking   BookingConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/New_York"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type WordPressConfig struct {
	BaseURL          string        `envconfig:"WP_BASE_URL" required:"true"`
	BookingNamespace string        `envconfig:"BOOKING_NAMESPACE" default:"klsd/v1"`
	ConsumerKey      string        `envconfig:"WC_CONSUMER_KEY"`
	ConsumerSecret   string        `envconfig:"WC_CONSUMER_SECRET"`
	AuthMode         string        `envconfig:"WC_AUTH_MODE" default:"basic"`
	Timeout          time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	// admin-ajax action used when the REST availability route fails
	AvailabilityFallbackAction string `envconfig:"AVAILABILITY_FALLBACK_ACTION" default:"klsd_get_availability"`
}

type BookingConfig struct {
	TrustZeroPrice bool   `envconfig:"BOOKING_TRUST_ZERO_PRICE" default:"false"`
	Currency       string `envconfig:"BOOKING_CURRENCY" default:"USD"`
}

type CacheConfig struct {
	Driver        string        `envconfig:"CACHE_DRIVER" default:"memory"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	MediaHitTTL   time.Duration `envconfig:"MEDIA_CACHE_TTL" default:"30m"`
	MediaMissTTL  time.Duration `envconfig:"MEDIA_CACHE_FAILURE_TTL" default:"5m"`
	MaxEntries    int           `envconfig:"MEMORY_CACHE_MAX_ENTRIES" default:"10000"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `envconfig:"PROXY_RATE_LIMIT_RPM" default:"120"`
	Burst             int `envconfig:"PROXY_RATE_LIMIT_BURST" default:"20"`
}

type AdminConfig struct {
	// empty disables token checks on debug routes
	JWTSecret     string        `envconfig:"ADMIN_JWT_SECRET"`
	TokenDuration time.Duration `envconfig:"ADMIN_TOKEN_DURATION" default:"12h"`
}

func (c *WordPressConfig) TrimmedBaseURL() string {
	return strings.TrimRight(c.BaseURL, "/")
}

func (c *CacheConfig) UsesRedis() bool {
	return strings.EqualFold(c.Driver, "redis")
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadAdminConfig reads only the admin settings, for tooling that does not
// talk to WordPress.
func LoadAdminConfig() (AdminConfig, error) {
	var cfg AdminConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AdminConfig{}, fmt.Errorf("failed to process admin env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/New_York",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		WordPress: WordPressConfig{
			BaseURL:                    "http://localhost:8081",
			BookingNamespace:           "klsd/v1",
			ConsumerKey:                "ck_test",
			ConsumerSecret:             "cs_test",
			AuthMode:                   "basic",
			Timeout:                    2 * time.Second,
			AvailabilityFallbackAction: "klsd_get_availability",
		},
		Booking: BookingConfig{
			Currency: "USD",
		},
		Cache: CacheConfig{
			Driver:       "memory",
			MediaHitTTL:  30 * time.Minute,
			MediaMissTTL: 5 * time.Minute,
			MaxEntries:   1000,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 600,
			Burst:             100,
		},
		Admin: AdminConfig{
			TokenDuration: time.Hour,
		},
	}
}
