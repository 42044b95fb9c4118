package pnl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the daily identity may drift by at most one cent after independent rounding
const centTolerance = 0.01 + 1e-9

func TestReconcileCalendarCoverage(t *testing.T) {
	cases := []struct {
		start, end string
		days       int
	}{
		{"2024-01-01", "2024-01-01", 1},
		{"2024-02-27", "2024-03-02", 5},
		{"2023-12-30", "2024-01-02", 4},
		{"2024-01-01", "2024-12-31", 366},
	}
	fills := []Fill{{Time: ms(t, "2024-02-28T10:00:00Z"), ClosedPnL: dec("1")}}
	for _, tc := range cases {
		t.Run(tc.start+".."+tc.end, func(t *testing.T) {
			report, err := Reconcile(Input{Fills: fills, Start: day(t, tc.start), End: day(t, tc.end)})
			require.NoError(t, err)
			require.Len(t, report.Daily, tc.days)
			assert.Equal(t, tc.start, report.Daily[0].Date)
			assert.Equal(t, tc.end, report.Daily[len(report.Daily)-1].Date)
			for i := 1; i < len(report.Daily); i++ {
				prev := day(t, report.Daily[i-1].Date)
				assert.Equal(t, prev.AddDate(0, 0, 1).Format(dateLayout), report.Daily[i].Date)
			}
		})
	}
}

func TestReconcileEmptyInputs(t *testing.T) {
	report, err := Reconcile(Input{Start: day(t, "2024-01-01"), End: day(t, "2024-01-03")})
	require.NoError(t, err)
	require.Len(t, report.Daily, 3)
	for _, d := range report.Daily {
		assert.Equal(t, DailyRecord{Date: d.Date}, d)
	}
	assert.Equal(t, SummaryRecord{}, report.Summary)
}

func TestReconcileFallbackWithoutPnLHistory(t *testing.T) {
	in := Input{
		Fills: []Fill{
			{Time: ms(t, "2024-01-01T12:00:00Z"), ClosedPnL: dec("10"), Fee: dec("1")},
		},
		Funding: []FundingEvent{
			{Time: ms(t, "2024-01-01T08:00:00Z"), USDC: dec("-2")},
		},
		Start: day(t, "2024-01-01"),
		End:   day(t, "2024-01-02"),
	}
	report, err := Reconcile(in)
	require.NoError(t, err)
	require.Len(t, report.Daily, 2)

	assert.Equal(t, DailyRecord{
		Date:          "2024-01-01",
		RealizedUSD:   10,
		UnrealizedUSD: 0,
		FeesUSD:       1,
		FundingUSD:    -2,
		NetUSD:        7,
		EquityUSD:     0,
	}, report.Daily[0])
	assert.Equal(t, DailyRecord{Date: "2024-01-02"}, report.Daily[1])
	assert.Equal(t, SummaryRecord{
		RealizedUSD:   10,
		UnrealizedUSD: 0,
		FeesUSD:       1,
		FundingUSD:    -2,
		NetUSD:        7,
	}, report.Summary)
}

func TestReconcileDerivesUnrealizedFromPnLHistory(t *testing.T) {
	in := Input{
		Portfolio: PortfolioHistory{
			PnL: []Point{
				{Time: ms(t, "2024-01-01T00:00:00Z"), Value: dec("100")},
				{Time: ms(t, "2024-01-01T12:00:00Z"), Value: dec("150")},
				{Time: ms(t, "2024-01-02T06:00:00Z"), Value: dec("120")},
			},
			AccountValue: []Point{
				{Time: ms(t, "2024-01-01T00:00:00Z"), Value: dec("1000")},
				{Time: ms(t, "2024-01-01T23:00:00Z"), Value: dec("1050.456")},
				{Time: ms(t, "2024-01-03T00:00:00Z"), Value: dec("999")},
			},
		},
		Fills: []Fill{
			{Time: ms(t, "2024-01-01T12:00:00Z"), ClosedPnL: dec("10"), Fee: dec("1")},
			{Time: ms(t, "2023-12-31T23:59:59Z"), ClosedPnL: dec("500"), Fee: dec("50")},
		},
		Funding: []FundingEvent{
			{Time: ms(t, "2024-01-01T08:00:00Z"), USDC: dec("-2")},
		},
		Start: day(t, "2024-01-01"),
		End:   day(t, "2024-01-02"),
	}
	report, err := Reconcile(in)
	require.NoError(t, err)
	require.Len(t, report.Daily, 2)

	d1 := report.Daily[0]
	assert.Equal(t, 10.0, d1.RealizedUSD)
	assert.Equal(t, 1.0, d1.FeesUSD)
	assert.Equal(t, -2.0, d1.FundingUSD)
	assert.Equal(t, 50.0, d1.NetUSD)
	assert.Equal(t, 43.0, d1.UnrealizedUSD)
	assert.Equal(t, 1050.46, d1.EquityUSD)

	d2 := report.Daily[1]
	assert.Equal(t, -30.0, d2.NetUSD)
	assert.Equal(t, -30.0, d2.UnrealizedUSD)
	assert.Equal(t, 1050.46, d2.EquityUSD, "equity carries the last sample forward")

	assert.Equal(t, SummaryRecord{
		RealizedUSD:   10,
		UnrealizedUSD: 13,
		FeesUSD:       1,
		FundingUSD:    -2,
		NetUSD:        20,
	}, report.Summary)
}

func TestReconcileIdentityHoldsEveryDay(t *testing.T) {
	in := Input{
		Portfolio: PortfolioHistory{
			PnL: []Point{
				{Time: ms(t, "2024-03-01T03:00:00Z"), Value: dec("12.3456")},
				{Time: ms(t, "2024-03-02T13:00:00Z"), Value: dec("-7.891")},
				{Time: ms(t, "2024-03-03T23:59:59Z"), Value: dec("3.3333")},
			},
		},
		Fills: []Fill{
			{Time: ms(t, "2024-03-01T04:00:00Z"), ClosedPnL: dec("3.335"), Fee: dec("0.125")},
			{Time: ms(t, "2024-03-02T04:00:00Z"), ClosedPnL: dec("-1.005"), Fee: dec("0.0049")},
			{Time: ms(t, "2024-03-03T04:00:00Z"), ClosedPnL: dec("0.777"), Fee: dec("-0.015")},
		},
		Funding: []FundingEvent{
			{Time: ms(t, "2024-03-01T16:00:00Z"), USDC: dec("0.3333")},
			{Time: ms(t, "2024-03-03T16:00:00Z"), USDC: dec("-0.6666")},
		},
		Start: day(t, "2024-03-01"),
		End:   day(t, "2024-03-04"),
	}
	report, err := Reconcile(in)
	require.NoError(t, err)
	for _, d := range report.Daily {
		sum := d.RealizedUSD + d.UnrealizedUSD - d.FeesUSD + d.FundingUSD
		assert.LessOrEqual(t, math.Abs(d.NetUSD-sum), centTolerance, d.Date)
	}
}

func TestReconcileSummaryUsesUnroundedTotals(t *testing.T) {
	var fills []Fill
	for _, ts := range []string{"2024-01-01T01:00:00Z", "2024-01-02T01:00:00Z", "2024-01-03T01:00:00Z"} {
		fills = append(fills, Fill{Time: ms(t, ts), ClosedPnL: dec("0.004")})
	}
	report, err := Reconcile(Input{Fills: fills, Start: day(t, "2024-01-01"), End: day(t, "2024-01-03")})
	require.NoError(t, err)
	for _, d := range report.Daily {
		assert.Equal(t, 0.0, d.RealizedUSD)
	}
	assert.Equal(t, 0.01, report.Summary.RealizedUSD)
	assert.Equal(t, 0.01, report.Summary.NetUSD)
}

func TestReconcileDayBoundariesAreInclusive(t *testing.T) {
	in := Input{
		Fills: []Fill{
			{Time: ms(t, "2024-01-01T00:00:00Z"), ClosedPnL: dec("1")},
			{Time: ms(t, "2024-01-01T00:00:00Z") + 86_400_000 - 1, ClosedPnL: dec("2")},
			{Time: ms(t, "2024-01-02T00:00:00Z"), ClosedPnL: dec("4")},
		},
		Start: day(t, "2024-01-01"),
		End:   day(t, "2024-01-01"),
	}
	report, err := Reconcile(in)
	require.NoError(t, err)
	assert.Equal(t, 3.0, report.Daily[0].RealizedUSD)
}

func TestReconcileInvertedRange(t *testing.T) {
	_, err := Reconcile(Input{Start: day(t, "2024-01-02"), End: day(t, "2024-01-01")})
	assert.ErrorIs(t, err, ErrInvertedRange)
}
