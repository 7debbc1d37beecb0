package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/odyssey-erp/supplyhub/internal/platform/cache"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	RedisAddr   string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	CacheDriver string        `envconfig:"CACHE_DRIVER" default:"memory"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	JobsEnabled   bool   `envconfig:"JOBS_ENABLED" default:"false"`
	AlertScanCron string `envconfig:"ALERT_SCAN_CRON" default:"*/15 * * * *"`

	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://127.0.0.1:8080"`
	RateLimit  int    `envconfig:"RATE_LIMIT" default:"120"`
	SeedData   bool   `envconfig:"SEED_DATA" default:"true"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.CacheDriver {
	case cache.DriverMemory, cache.DriverRedis:
	default:
		return errors.New("cache driver must be memory or redis")
	}
	if c.JobsEnabled && c.RedisAddr == "" {
		return errors.New("redis address must be provided when jobs are enabled")
	}
	if c.RateLimit <= 0 {
		return errors.New("rate limit must be positive")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
