package pnl

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Point is one sample of a cumulative series, Time in epoch milliseconds.
type Point struct {
	Time  int64
	Value decimal.Decimal
}

// PortfolioHistory holds the venue's cumulative PnL and equity samples,
// both ascending by Time. Either may be empty for an inactive account.
type PortfolioHistory struct {
	PnL          []Point
	AccountValue []Point
}

// Fill is one executed trade. Fee is positive when paid.
type Fill struct {
	Time      int64
	ClosedPnL decimal.Decimal
	Fee       decimal.Decimal
}

// FundingEvent is one funding settlement; USDC is positive when received.
type FundingEvent struct {
	Time int64
	USDC decimal.Decimal
}

// Fetcher is the data-source boundary. Implementations never fail: an
// unreachable or broken upstream is reported as an empty value.
type Fetcher interface {
	PortfolioHistory(ctx context.Context, wallet string) PortfolioHistory
	Fills(ctx context.Context, wallet string) []Fill
	Funding(ctx context.Context, wallet string, since time.Time) []FundingEvent
}

// DailyRecord is one UTC calendar day of the ledger.
type DailyRecord struct {
	Date          string  `json:"date"`
	RealizedUSD   float64 `json:"realized_pnl_usd"`
	UnrealizedUSD float64 `json:"unrealized_pnl_usd"`
	FeesUSD       float64 `json:"fees_usd"`
	FundingUSD    float64 `json:"funding_usd"`
	NetUSD        float64 `json:"net_pnl_usd"`
	EquityUSD     float64 `json:"equity_usd"`
}

// SummaryRecord totals the range. Each field is rounded once from the
// unrounded daily sums, so it may differ by a few cents from adding up the
// rounded daily values.
type SummaryRecord struct {
	RealizedUSD   float64 `json:"total_realized_usd"`
	UnrealizedUSD float64 `json:"total_unrealized_usd"`
	FeesUSD       float64 `json:"total_fees_usd"`
	FundingUSD    float64 `json:"total_funding_usd"`
	NetUSD        float64 `json:"net_pnl_usd"`
}

type Report struct {
	Daily   []DailyRecord `json:"daily"`
	Summary SummaryRecord `json:"summary"`
}
