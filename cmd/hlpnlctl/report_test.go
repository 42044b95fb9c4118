package main

import (
	"bytes"
	"testing"

	"hlpnl/internal/pnl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUSD(t *testing.T) {
	assert.Equal(t, "$1,234.56", usd(1234.56))
	assert.Equal(t, "$0.00", usd(0))
	assert.Equal(t, "-$7.10", usd(-7.1))
}

func TestReportMarkdownRaw(t *testing.T) {
	report := pnl.Report{
		Daily: []pnl.DailyRecord{{
			Date: "2024-01-01", RealizedUSD: 10, UnrealizedUSD: 43, FeesUSD: 1,
			FundingUSD: -2, NetUSD: 50, EquityUSD: 1050.46,
		}},
		Summary: pnl.SummaryRecord{RealizedUSD: 10, UnrealizedUSD: 43, FeesUSD: 1, FundingUSD: -2, NetUSD: 50},
	}
	var buf bytes.Buffer
	require.NoError(t, printMarkdown(&buf, reportMarkdown("0xabc", report), true))

	out := buf.String()
	assert.Contains(t, out, "# PnL 0xabc")
	assert.Contains(t, out, "| 2024-01-01 | $10.00 | $43.00 | $1.00 | -$2.00 | $50.00 | $1,050.46 |")
	assert.Contains(t, out, "## Summary")
}

func TestRangeFlagsCheck(t *testing.T) {
	r := rangeFlags{wallet: "0x123", start: "2024-01-01", end: "2024-01-02"}
	assert.Error(t, r.check())

	r.wallet = "0x" + "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2"
	assert.NoError(t, r.check())

	r.end = " "
	assert.Error(t, r.check())
}
