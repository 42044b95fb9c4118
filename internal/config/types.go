package config

import "strings"

// Config 是 hlpnl 的主配置载体。
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Hyperliquid HyperliquidConfig `mapstructure:"hyperliquid"`
	PnL         PnLConfig         `mapstructure:"pnl"`
}

// PnLConfig bounds a single ledger computation.
type PnLConfig struct {
	MaxRangeDays int `mapstructure:"max_range_days"`
}

type AppConfig struct {
	Env       string `mapstructure:"env"`
	LogLevel  string `mapstructure:"log_level"`
	HTTPAddr  string `mapstructure:"http_addr"`
	LogPath   string `mapstructure:"log_path"`
	LogFormat string `mapstructure:"log_format"`
}

// HyperliquidConfig describes how the /info endpoint is reached.
type HyperliquidConfig struct {
	BaseURL                string `mapstructure:"base_url"`
	TimeoutSeconds         int    `mapstructure:"timeout_seconds"`
	BreakerThreshold       int    `mapstructure:"breaker_threshold"`
	BreakerCooldownSeconds int    `mapstructure:"breaker_cooldown_seconds"`
}

// envKeys lists every key that may be overridden through HLPNL_* variables.
var envKeys = []string{
	"app.env",
	"app.log_level",
	"app.http_addr",
	"app.log_path",
	"app.log_format",
	"hyperliquid.base_url",
	"hyperliquid.timeout_seconds",
	"hyperliquid.breaker_threshold",
	"hyperliquid.breaker_cooldown_seconds",
	"pnl.max_range_days",
}

type fieldDefault struct {
	key   string
	need  func() bool
	apply func()
}

type keySet map[string]struct{}

func (k keySet) mark(path string) {
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return
	}
	k[path] = struct{}{}
}

func (k keySet) isSet(path string) bool {
	if len(k) == 0 {
		return false
	}
	_, ok := k[strings.ToLower(strings.TrimSpace(path))]
	return ok
}
