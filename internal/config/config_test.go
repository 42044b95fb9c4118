package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "app:\n  env: test\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, ":3000", cfg.App.HTTPAddr)
	assert.Equal(t, "text", cfg.App.LogFormat)
	assert.Equal(t, "https://api.hyperliquid.xyz", cfg.Hyperliquid.BaseURL)
	assert.Equal(t, 15, cfg.Hyperliquid.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Hyperliquid.BreakerThreshold)
	assert.Equal(t, 30, cfg.Hyperliquid.BreakerCooldownSeconds)
	assert.Equal(t, 3660, cfg.PnL.MaxRangeDays)
}

func TestLoadKeepsFileValues(t *testing.T) {
	path := writeConfig(t, `
app:
  log_level: debug
  http_addr: ":8080"
hyperliquid:
  base_url: http://localhost:9000/
  timeout_seconds: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
	assert.Equal(t, "http://localhost:9000", cfg.Hyperliquid.BaseURL)
	assert.Equal(t, 3, cfg.Hyperliquid.TimeoutSeconds)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HLPNL_APP_HTTP_ADDR", ":7070")
	t.Setenv("HLPNL_HYPERLIQUID_TIMEOUT_SECONDS", "9")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.App.HTTPAddr)
	assert.Equal(t, 9, cfg.Hyperliquid.TimeoutSeconds)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"log level":     "app:\n  log_level: loud\n",
		"log format":    "app:\n  log_format: xml\n",
		"base url":      "hyperliquid:\n  base_url: not-a-url\n",
		"zero timeout":  "hyperliquid:\n  timeout_seconds: 0\n",
		"zero breaker":  "hyperliquid:\n  breaker_threshold: 0\n",
		"zero cooldown": "hyperliquid:\n  breaker_cooldown_seconds: 0\n",
		"zero max days": "pnl:\n  max_range_days: 0\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestWatchRequiresPath(t *testing.T) {
	assert.Error(t, Watch("  ", nil))
}

func TestWatchReloadsLogLevel(t *testing.T) {
	path := writeConfig(t, "app:\n  log_level: info\n")

	var level atomic.Value
	require.NoError(t, Watch(path, func(cfg *Config) {
		level.Store(cfg.App.LogLevel)
	}))

	require.NoError(t, os.WriteFile(path, []byte("app:\n  log_level: debug\n"), 0o644))
	assert.Eventually(t, func() bool {
		v, _ := level.Load().(string)
		return v == "debug"
	}, 3*time.Second, 50*time.Millisecond)
}
