package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"hlpnl/internal/pnl"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type reportCmd struct {
	rangeFlags
	raw bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print the daily PnL ledger and range summary" }
func (*reportCmd) Usage() string {
	return `hlpnlctl report -wallet <0x...> -start <YYYY-MM-DD> -end <YYYY-MM-DD> [-raw]

  Fetches portfolio, fills and funding for the wallet and prints one row per day.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.register(f)
	f.BoolVar(&c.raw, "raw", false, "print plain markdown instead of terminal rendering")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	md := reportMarkdown(c.wallet, report)
	if err := printMarkdown(os.Stdout, md, c.raw); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func reportMarkdown(wallet string, report pnl.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# PnL %s\n\n", wallet)
	b.WriteString("| Date | Realized | Unrealized | Fees | Funding | Net | Equity |\n")
	b.WriteString("|---|--:|--:|--:|--:|--:|--:|\n")
	for _, d := range report.Daily {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			d.Date, usd(d.RealizedUSD), usd(d.UnrealizedUSD), usd(d.FeesUSD),
			usd(d.FundingUSD), usd(d.NetUSD), usd(d.EquityUSD))
	}
	s := report.Summary
	b.WriteString("\n## Summary\n\n")
	b.WriteString("| Realized | Unrealized | Fees | Funding | Net |\n")
	b.WriteString("|--:|--:|--:|--:|--:|\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
		usd(s.RealizedUSD), usd(s.UnrealizedUSD), usd(s.FeesUSD),
		usd(s.FundingUSD), usd(s.NetUSD))
	return b.String()
}

// usd formats a 2-decimal amount the way go-money displays USD.
func usd(v float64) string {
	cur := money.GetCurrency(money.USD)
	cents := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(cents.IntPart())
}

func printMarkdown(w io.Writer, md string, raw bool) error {
	if raw {
		_, err := io.WriteString(w, md)
		return err
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
