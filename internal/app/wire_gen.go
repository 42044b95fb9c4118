//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject

package app

import (
	brcfg "hlpnl/internal/config"
	"hlpnl/internal/gateway/hyperliquid"
	"hlpnl/internal/pnl"
)

func buildAppWithWire(cfg *brcfg.Config) (*App, error) {
	client, err := provideHyperliquidClient(cfg)
	if err != nil {
		return nil, err
	}
	source := hyperliquid.NewSource(client)
	limits := providePnLLimits(cfg)
	service := pnl.NewService(source, limits)
	server, err := provideHTTPServer(cfg, service)
	if err != nil {
		return nil, err
	}
	app := newApp(cfg, service, server)
	return app, nil
}
