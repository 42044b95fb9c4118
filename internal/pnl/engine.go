package pnl

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvertedRange is returned when the start date falls after the end date.
	ErrInvertedRange = errors.New("start date is after end date")
	// ErrRangeTooLong is returned when [start, end] spans more days than allowed.
	ErrRangeTooLong = errors.New("date range too long")
)

// Input is everything Reconcile needs for one request.
type Input struct {
	Portfolio PortfolioHistory
	Fills     []Fill
	Funding   []FundingEvent
	Start     time.Time
	End       time.Time
}

type dayTotals struct {
	realized   decimal.Decimal
	unrealized decimal.Decimal
	fees       decimal.Decimal
	funding    decimal.Decimal
	net        decimal.Decimal
	equity     decimal.Decimal
}

func (d *dayTotals) add(o dayTotals) {
	d.realized = d.realized.Add(o.realized)
	d.unrealized = d.unrealized.Add(o.unrealized)
	d.fees = d.fees.Add(o.fees)
	d.funding = d.funding.Add(o.funding)
	d.net = d.net.Add(o.net)
}

// Reconcile builds one DailyRecord per UTC day in [Start, End] and a summary.
//
// Unrealized PnL has no feed of its own. It is backed out of
//
//	net = realized + unrealized - fees + funding
//
// where net is the change in the venue's cumulative PnL across the day. With
// no PnL history at all, net falls back to realized + funding - fees, which
// pins unrealized to zero.
func Reconcile(in Input) (Report, error) {
	start, end := startOfDay(in.Start), startOfDay(in.End)
	if start.After(end) {
		return Report{}, ErrInvertedRange
	}
	report := Report{Daily: make([]DailyRecord, 0, spanDays(start, end))}
	var totals dayTotals
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		t := reconcileDay(in, day)
		report.Daily = append(report.Daily, DailyRecord{
			Date:          day.Format(dateLayout),
			RealizedUSD:   round2(t.realized),
			UnrealizedUSD: round2(t.unrealized),
			FeesUSD:       round2(t.fees),
			FundingUSD:    round2(t.funding),
			NetUSD:        round2(t.net),
			EquityUSD:     round2(t.equity),
		})
		totals.add(t)
	}
	report.Summary = SummaryRecord{
		RealizedUSD:   round2(totals.realized),
		UnrealizedUSD: round2(totals.unrealized),
		FeesUSD:       round2(totals.fees),
		FundingUSD:    round2(totals.funding),
		NetUSD:        round2(totals.net),
	}
	return report, nil
}

func reconcileDay(in Input, day time.Time) dayTotals {
	dayStart, dayEnd := dayBounds(day)
	var t dayTotals
	for _, f := range in.Fills {
		if f.Time < dayStart || f.Time > dayEnd {
			continue
		}
		t.realized = t.realized.Add(f.ClosedPnL)
		t.fees = t.fees.Add(f.Fee)
	}
	for _, e := range in.Funding {
		if e.Time < dayStart || e.Time > dayEnd {
			continue
		}
		t.funding = t.funding.Add(e.USDC)
	}

	if len(in.Portfolio.PnL) > 0 {
		t.net = ValueAt(in.Portfolio.PnL, dayEnd).Sub(ValueAt(in.Portfolio.PnL, dayStart))
	} else {
		t.net = t.realized.Add(t.funding).Sub(t.fees)
	}
	t.equity = ValueAt(in.Portfolio.AccountValue, dayEnd)
	t.unrealized = t.net.Sub(t.realized).Add(t.fees).Sub(t.funding)
	return t
}

// round2 rounds half away from zero to cents.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
