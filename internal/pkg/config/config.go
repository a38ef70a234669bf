package config

import (
	"context"
	"errors"
	"fmt"
	"time"
	// APP_TIMEZONE must resolve in minimal images without a zoneinfo tree.
	_ "time/tzdata"

	"github.com/sethvargo/go-envconfig"
)

// ErrMissingJWTSecret is returned when JWT_SECRET is unset or empty. The
// server refuses to start without it.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET is required")

type Config struct {
	Port       string `env:"PORT,        default=3001"`
	Env        string `env:"APP_ENV,     default=development"`
	Version    string `env:"APP_VERSION, default=1.0.0"`
	JWTSecret  string `env:"JWT_SECRET"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	LogPretty  bool   `env:"LOG_PRETTY,  default=false"`
	CORSOrigin string `env:"CORS_ORIGIN, default=http://localhost:3000"`
	Timezone   string `env:"APP_TIMEZONE, default=UTC"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig

	location *time.Location
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=stratford"`
}

// RedisConfig is optional; an empty Addr disables Redis.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type RateLimitConfig struct {
	Max    int           `env:"RATE_LIMIT_MAX,    default=100"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=15m"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration from l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location is the timezone calendar days are computed in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// Production reports whether the server runs with APP_ENV=production.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// PrettyLogs reports whether console logging is enabled. Production always
// logs JSON, whatever LOG_PRETTY says.
func (c *Config) PrettyLogs() bool {
	return c.LogPretty && !c.Production()
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("config: APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	c.location = loc
	if c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("config: rate limit must be positive, got %d per %s", c.RateLimit.Max, c.RateLimit.Window)
	}
	return nil
}
