package hyperliquid

import (
	"context"
	"time"

	"hlpnl/internal/logger"
	"hlpnl/internal/pnl"
)

// Source adapts Client to pnl.Fetcher: every upstream failure is logged and
// reported as an empty series, so "venue down" and "no data" look the same
// to the reconciliation engine.
type Source struct {
	client *Client
}

var _ pnl.Fetcher = (*Source)(nil)

func NewSource(client *Client) *Source {
	return &Source{client: client}
}

func (s *Source) PortfolioHistory(ctx context.Context, wallet string) pnl.PortfolioHistory {
	hist, err := s.client.Portfolio(ctx, wallet)
	if err != nil {
		logger.Warnf("hyperliquid portfolio fetch failed wallet=%s err=%v", wallet, err)
		return pnl.PortfolioHistory{}
	}
	return hist
}

func (s *Source) Fills(ctx context.Context, wallet string) []pnl.Fill {
	fills, err := s.client.UserFills(ctx, wallet)
	if err != nil {
		logger.Warnf("hyperliquid fills fetch failed wallet=%s err=%v", wallet, err)
		return []pnl.Fill{}
	}
	return fills
}

func (s *Source) Funding(ctx context.Context, wallet string, since time.Time) []pnl.FundingEvent {
	events, err := s.client.UserFunding(ctx, wallet, since.UnixMilli())
	if err != nil {
		logger.Warnf("hyperliquid funding fetch failed wallet=%s err=%v", wallet, err)
		return []pnl.FundingEvent{}
	}
	return events
}
