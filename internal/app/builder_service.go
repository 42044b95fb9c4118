package app

import (
	"fmt"

	brcfg "hlpnl/internal/config"
	"hlpnl/internal/gateway/hyperliquid"
	"hlpnl/internal/logger"
	"hlpnl/internal/pnl"
	"hlpnl/internal/transport/http/api"
)

func provideHyperliquidClient(cfg *brcfg.Config) (*hyperliquid.Client, error) {
	client, err := hyperliquid.NewClient(cfg.Hyperliquid)
	if err != nil {
		return nil, fmt.Errorf("failed to init hyperliquid client: %w", err)
	}
	logger.Infof("hyperliquid source: %s (timeout=%ds)", cfg.Hyperliquid.BaseURL, cfg.Hyperliquid.TimeoutSeconds)
	return client, nil
}

func providePnLLimits(cfg *brcfg.Config) pnl.Limits {
	return pnl.Limits{MaxDays: cfg.PnL.MaxRangeDays}
}

func provideHTTPServer(cfg *brcfg.Config, calc pnl.Calculator) (*api.Server, error) {
	server, err := api.NewServer(api.ServerConfig{
		Addr:       cfg.App.HTTPAddr,
		Calculator: calc,
	})
	if err != nil {
		return nil, fmt.Errorf("init http server: %w", err)
	}
	return server, nil
}
