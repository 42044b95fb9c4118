package config

import "strings"

const (
	defaultAppEnv               = "dev"
	defaultAppLogLevel          = "info"
	defaultAppHTTPAddr          = ":3000"
	defaultAppLogFormat         = "text"
	defaultHyperliquidBaseURL   = "https://api.hyperliquid.xyz"
	defaultHyperliquidTimeout   = 15
	defaultHyperliquidThreshold = 5
	defaultHyperliquidCooldown  = 30
	defaultPnLMaxRangeDays      = 3660
)

// applyDefaults 为所有子配置应用默认值。
func (c *Config) applyDefaults(keys keySet) {
	c.App.applyDefaults(keys)
	c.Hyperliquid.applyDefaults(keys)
	applyFieldDefaults(keys,
		intFieldDefault("pnl.max_range_days", &c.PnL.MaxRangeDays, defaultPnLMaxRangeDays),
	)
}

func (a *AppConfig) applyDefaults(keys keySet) {
	if a == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("app.env", &a.Env, defaultAppEnv),
		stringFieldDefault("app.log_level", &a.LogLevel, defaultAppLogLevel),
		stringFieldDefault("app.http_addr", &a.HTTPAddr, defaultAppHTTPAddr),
		stringFieldDefault("app.log_format", &a.LogFormat, defaultAppLogFormat),
	)
}

func (h *HyperliquidConfig) applyDefaults(keys keySet) {
	if h == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("hyperliquid.base_url", &h.BaseURL, defaultHyperliquidBaseURL),
		intFieldDefault("hyperliquid.timeout_seconds", &h.TimeoutSeconds, defaultHyperliquidTimeout),
		intFieldDefault("hyperliquid.breaker_threshold", &h.BreakerThreshold, defaultHyperliquidThreshold),
		intFieldDefault("hyperliquid.breaker_cooldown_seconds", &h.BreakerCooldownSeconds, defaultHyperliquidCooldown),
	)
	h.BaseURL = strings.TrimSuffix(strings.TrimSpace(h.BaseURL), "/")
}

func applyFieldDefaults(keys keySet, defs ...fieldDefault) {
	for _, def := range defs {
		if def.apply == nil {
			continue
		}
		if def.key != "" && keys.isSet(def.key) {
			continue
		}
		if def.need != nil && !def.need() {
			continue
		}
		def.apply()
	}
}

func stringFieldDefault(key string, target *string, def string) fieldDefault {
	return fieldDefault{
		key: key,
		need: func() bool {
			return target != nil && strings.TrimSpace(*target) == ""
		},
		apply: func() {
			if target != nil {
				*target = def
			}
		},
	}
}

// intFieldDefault only fills non-positive values; an explicit 0 in the file is left for validate to reject.
func intFieldDefault(key string, target *int, def int) fieldDefault {
	return fieldDefault{
		key:  key,
		need: func() bool { return target != nil && *target <= 0 },
		apply: func() {
			if target != nil {
				*target = def
			}
		},
	}
}
