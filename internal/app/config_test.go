package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.AppAddr)
	require.Equal(t, "memory", cfg.CacheDriver)
	require.Equal(t, 5*time.Minute, cfg.CacheTTL)
	require.True(t, cfg.SeedData)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("RATE_LIMIT", "30")
	t.Setenv("JOBS_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
	require.True(t, cfg.JobsEnabled)
	require.Equal(t, 30, cfg.RateLimit)
}

func TestLoadConfigRejectsUnknownCacheDriver(t *testing.T) {
	t.Setenv("CACHE_DRIVER", "memcached")
	_, err := LoadConfig()
	require.ErrorContains(t, err, "cache driver")
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&Config{LogFormat: "json", AppEnv: "production"}, &buf).Info("hello")
	require.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	newLogger(&Config{AppEnv: "development"}, &buf).Debug("trace")
	require.Contains(t, buf.String(), "msg=trace")
}

func TestTestModeFlag(t *testing.T) {
	t.Setenv(testModeEnv, "1")
	RefreshTestMode()
	require.True(t, InTestMode())

	t.Setenv(testModeEnv, "0")
	RefreshTestMode()
	require.False(t, InTestMode())
}
