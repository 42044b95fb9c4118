package pnl

import (
	"context"
	"fmt"
	"time"

	"hlpnl/internal/logger"

	"golang.org/x/sync/errgroup"
)

// Calculator is what the HTTP layer and the CLI depend on.
type Calculator interface {
	Calculate(ctx context.Context, wallet, start, end string) (Report, error)
}

// DefaultMaxDays bounds a single request to roughly ten years.
const DefaultMaxDays = 3660

// Limits caps the work one Calculate call may do. MaxDays <= 0 means no cap.
type Limits struct {
	MaxDays int
}

// Service fans out to the data source and reconciles the results.
type Service struct {
	source Fetcher
	limits Limits
}

func NewService(source Fetcher, limits Limits) *Service {
	return &Service{source: source, limits: limits}
}

// Calculate fetches the three series concurrently and reconciles them over
// [start, end]. Funding is requested from one day before start.
func (s *Service) Calculate(ctx context.Context, wallet, start, end string) (Report, error) {
	if s == nil || s.source == nil {
		return Report{}, fmt.Errorf("pnl service not initialized")
	}
	from, err := ParseDate(start)
	if err != nil {
		return Report{}, fmt.Errorf("parse start: %w", err)
	}
	to, err := ParseDate(end)
	if err != nil {
		return Report{}, fmt.Errorf("parse end: %w", err)
	}
	if from.After(to) {
		return Report{}, ErrInvertedRange
	}
	if days := spanDays(from, to); s.limits.MaxDays > 0 && days > int64(s.limits.MaxDays) {
		return Report{}, fmt.Errorf("%w: %d days requested, limit is %d", ErrRangeTooLong, days, s.limits.MaxDays)
	}

	var in Input
	in.Start, in.End = from, to
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		in.Portfolio = s.source.PortfolioHistory(gctx, wallet)
		return nil
	})
	group.Go(func() error {
		in.Fills = s.source.Fills(gctx, wallet)
		return nil
	})
	group.Go(func() error {
		in.Funding = s.source.Funding(gctx, wallet, from.AddDate(0, 0, -1))
		return nil
	})
	if err := group.Wait(); err != nil {
		return Report{}, err
	}
	logger.Debugf("pnl inputs wallet=%s pnl_points=%d equity_points=%d fills=%d funding=%d",
		wallet, len(in.Portfolio.PnL), len(in.Portfolio.AccountValue), len(in.Fills), len(in.Funding))

	started := time.Now()
	report, err := Reconcile(in)
	if err != nil {
		return Report{}, err
	}
	logger.Debugf("pnl reconciled wallet=%s days=%d dur=%s", wallet, len(report.Daily), time.Since(started))
	return report, nil
}
