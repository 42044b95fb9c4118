package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"hlpnl/internal/chart"
	"hlpnl/internal/pnl"

	"github.com/google/subcommands"
)

type chartCmd struct {
	rangeFlags
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "write the daily PnL ledger as an HTML chart" }
func (*chartCmd) Usage() string {
	return `hlpnlctl chart -wallet <0x...> -start <YYYY-MM-DD> -end <YYYY-MM-DD> [-o pnl.html]
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.register(f)
	f.StringVar(&c.output, "o", "pnl.html", "output file")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	calc, err := c.calculator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := calc.Calculate(ctx, c.wallet, c.start, c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.write(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("wrote %s (%d days)\n", c.output, len(report.Daily))
	return subcommands.ExitSuccess
}

func (c *chartCmd) write(report pnl.Report) error {
	f, err := os.Create(c.output)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s %s..%s", c.wallet, c.start, c.end)
	if err := chart.RenderDaily(f, title, report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
