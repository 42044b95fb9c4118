package pnl

import "github.com/shopspring/decimal"

// ValueAt returns the value of the last point at or before ts, or zero when
// series is empty or ts precedes it. series must already be ascending.
func ValueAt(series []Point, ts int64) decimal.Decimal {
	last := decimal.Zero
	for _, p := range series {
		if p.Time > ts {
			break
		}
		last = p.Value
	}
	return last
}
