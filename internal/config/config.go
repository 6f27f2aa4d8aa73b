// Package config manages environment variables.
//
// It reads variables (optionally from a `.env` file), loads them into
// structured Go types and validates that required values are present so
// they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional config blocks (observability, cache TTL, rate limit).
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: loads `.env` into the process env before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the STOREFRONT_ prefix. A double underscore marks
	nesting, a single underscore stays part of the key:

	  STOREFRONT_SERVER__READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout
	  STOREFRONT_REDIS__ADDRESS       -> redis.address       -> Config.Redis.Address

	Comma separated values become slices and "30s"-style strings become
	time.Duration through the decode hooks set up in decoderConfig.
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "STOREFRONT_"

// ServiceName tags logs, traces and metrics emitted by this service.
const ServiceName = "storefront"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string          `koanf:"port" validate:"required"`
	ReadTimeout        int             `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int             `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int             `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" validate:"required"`
	StaticDir          string          `koanf:"static_dir"`
	RateLimit          RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig controls the per-client limiter in front of the API routes.
// A zero Rate disables limiting.
type RateLimitConfig struct {
	Rate      float64       `koanf:"rate" validate:"gte=0"`
	Burst     int           `koanf:"burst" validate:"gte=0"`
	ExpiresIn time.Duration `koanf:"expires_in"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// DSN builds the postgres URL for the configured database.
// The password is escaped so reserved characters cannot break the URL.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		url.QueryEscape(d.Password),
		net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		d.Name,
		d.SSLMode,
	)
}

// RedisConfig contains Redis connection details.
// Address is "host:port". ProductCacheTTL bounds how long a product lookup
// is served from Redis.
type RedisConfig struct {
	Address         string        `koanf:"address" validate:"required"`
	ProductCacheTTL time.Duration `koanf:"product_cache_ttl"`
}

// IntegrationConfig holds credentials for third-party providers.
// An empty ResendAPIKey turns order notification emails into log lines.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

const (
	defaultProductCacheTTL = 5 * time.Minute
	defaultStaticDir       = "static"
	defaultEmailFrom       = "Storefront <orders@resend.dev>"
	defaultRateExpiry      = 3 * time.Minute
)

// envKey maps STOREFRONT_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// decoderConfig extends koanf's default decoding with comma splitting, so
// STOREFRONT_SERVER__CORS_ALLOWED_ORIGINS=a,b decodes to []string{"a", "b"}.
// koanf sets TagName itself.
func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Result:           result,
		WeaklyTypedInput: true,
	}
}

// LoadConfig loads configuration from the environment, validates it and
// fills in defaults for optional blocks.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{
		DecoderConfig: decoderConfig(mainConfig),
	}); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	mainConfig.applyDefaults()

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func (c *Config) applyDefaults() {
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	} else {
		c.Observability.fillDefaults(DefaultObservabilityConfig())
	}

	// Service name and environment always follow the primary config so
	// logs and traces are labelled consistently.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if c.Redis.ProductCacheTTL <= 0 {
		c.Redis.ProductCacheTTL = defaultProductCacheTTL
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = defaultStaticDir
	}
	if c.Integration.EmailFrom == "" {
		c.Integration.EmailFrom = defaultEmailFrom
	}
	if c.Server.RateLimit.ExpiresIn <= 0 {
		c.Server.RateLimit.ExpiresIn = defaultRateExpiry
	}
}
