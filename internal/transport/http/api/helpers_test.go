package api

import (
	"context"
	"time"

	"hlpnl/internal/pnl"

	"github.com/shopspring/decimal"
)

type stubFetcher struct {
	portfolio pnl.PortfolioHistory
	fills     []pnl.Fill
	funding   []pnl.FundingEvent
}

func (s *stubFetcher) PortfolioHistory(context.Context, string) pnl.PortfolioHistory {
	return s.portfolio
}

func (s *stubFetcher) Fills(context.Context, string) []pnl.Fill { return s.fills }

func (s *stubFetcher) Funding(context.Context, string, time.Time) []pnl.FundingEvent {
	return s.funding
}

func decimalOf(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
