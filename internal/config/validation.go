package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate 对配置进行基础校验。
func validate(c *Config) error {
	if err := c.App.validate(); err != nil {
		return err
	}
	if err := c.Hyperliquid.validate(); err != nil {
		return err
	}
	if c.PnL.MaxRangeDays <= 0 {
		return fmt.Errorf("pnl.max_range_days must be > 0")
	}
	return nil
}

func (a *AppConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(a.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("app.log_level must be one of debug/info/warn/error, got %q", a.LogLevel)
	}
	switch strings.ToLower(strings.TrimSpace(a.LogFormat)) {
	case "text", "json":
	default:
		return fmt.Errorf("app.log_format must be text or json, got %q", a.LogFormat)
	}
	if strings.TrimSpace(a.HTTPAddr) == "" {
		return fmt.Errorf("app.http_addr cannot be empty")
	}
	return nil
}

func (h *HyperliquidConfig) validate() error {
	parsed, err := url.Parse(h.BaseURL)
	if err != nil {
		return fmt.Errorf("hyperliquid.base_url is invalid: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("hyperliquid.base_url requires scheme and host, got %q", h.BaseURL)
	}
	if h.TimeoutSeconds <= 0 {
		return fmt.Errorf("hyperliquid.timeout_seconds must be > 0")
	}
	if h.BreakerThreshold <= 0 {
		return fmt.Errorf("hyperliquid.breaker_threshold must be > 0")
	}
	if h.BreakerCooldownSeconds <= 0 {
		return fmt.Errorf("hyperliquid.breaker_cooldown_seconds must be > 0")
	}
	return nil
}
