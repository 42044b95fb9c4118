package app

import (
	"context"
	"fmt"

	brcfg "hlpnl/internal/config"
	"hlpnl/internal/logger"
	"hlpnl/internal/pnl"
	"hlpnl/internal/transport/http/api"

	"golang.org/x/sync/errgroup"
)

// App 负责应用级编排：加载配置→初始化依赖→启动 HTTP 服务。
type App struct {
	cfg     *brcfg.Config
	calc    pnl.Calculator
	httpSrv *api.Server
}

func newApp(cfg *brcfg.Config, calc pnl.Calculator, srv *api.Server) *App {
	return &App{cfg: cfg, calc: calc, httpSrv: srv}
}

// NewApp 根据配置构建应用对象（不启动）
func NewApp(cfg *brcfg.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)
	return buildAppWithWire(cfg)
}

// Calculator exposes the PnL service for callers that do not need HTTP.
func (a *App) Calculator() pnl.Calculator {
	if a == nil {
		return nil
	}
	return a.calc
}

// WatchConfig hot-reloads the log level when the config file changes.
// Other keys need a restart.
func (a *App) WatchConfig(path string) error {
	return brcfg.Watch(path, func(next *brcfg.Config) {
		if next.App.LogLevel != a.cfg.App.LogLevel {
			logger.Infof("log level %s -> %s", a.cfg.App.LogLevel, next.App.LogLevel)
		}
		logger.SetLevel(next.App.LogLevel)
		a.cfg.App.LogLevel = next.App.LogLevel
	})
}

// Run 启动 HTTP 服务，直到 ctx 取消。
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.cfg == nil {
		return fmt.Errorf("app not initialized")
	}
	if a.httpSrv == nil {
		return fmt.Errorf("http server not initialized")
	}
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Infof("✓ HTTP 接口监听 %s (env=%s)", a.httpSrv.Addr(), a.cfg.App.Env)
		if err := a.httpSrv.Start(ctx); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	return group.Wait()
}
