package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"hlpnl/internal/app"
	brcfg "hlpnl/internal/config"
	"hlpnl/internal/pnl"
)

// rangeFlags are shared by every ledger command.
type rangeFlags struct {
	wallet     string
	start      string
	end        string
	configPath string
}

func (r *rangeFlags) register(f *flag.FlagSet) {
	f.StringVar(&r.wallet, "wallet", "", "Hyperliquid wallet address (0x...)")
	f.StringVar(&r.start, "start", "", "first day of the range, YYYY-MM-DD")
	f.StringVar(&r.end, "end", "", "last day of the range, YYYY-MM-DD")
	f.StringVar(&r.configPath, "config", os.Getenv("HLPNL_CONFIG"), "config file (optional)")
}

func (r *rangeFlags) check() error {
	r.wallet = strings.TrimSpace(r.wallet)
	if !strings.HasPrefix(r.wallet, "0x") || len(r.wallet) != 42 {
		return fmt.Errorf("invalid wallet address %q", r.wallet)
	}
	if strings.TrimSpace(r.start) == "" || strings.TrimSpace(r.end) == "" {
		return fmt.Errorf("-start and -end are required")
	}
	return nil
}

// calculator builds the same service graph the server uses.
func (r *rangeFlags) calculator() (pnl.Calculator, error) {
	cfg, err := brcfg.Load(r.configPath)
	if err != nil {
		return nil, err
	}
	application, err := app.NewApp(cfg)
	if err != nil {
		return nil, err
	}
	return application.Calculator(), nil
}
