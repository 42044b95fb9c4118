//go:build wireinject

package app

import (
	brcfg "hlpnl/internal/config"
	"hlpnl/internal/gateway/hyperliquid"
	"hlpnl/internal/pnl"

	"github.com/google/wire"
)

func buildAppWithWire(cfg *brcfg.Config) (*App, error) {
	wire.Build(
		provideHyperliquidClient,
		hyperliquid.NewSource,
		providePnLLimits,
		wire.Bind(new(pnl.Fetcher), new(*hyperliquid.Source)),
		pnl.NewService,
		wire.Bind(new(pnl.Calculator), new(*pnl.Service)),
		provideHTTPServer,
		newApp,
	)
	return nil, nil
}
