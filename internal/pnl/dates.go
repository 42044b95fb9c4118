package pnl

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var dateLayouts = []string{
	dateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp and returns
// midnight UTC of that day.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return startOfDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", raw)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// spanDays counts the calendar days in [from, to], both already at midnight UTC.
func spanDays(from, to time.Time) int64 {
	return (to.Unix()-from.Unix())/86400 + 1
}

// dayBounds returns the first and last millisecond of day d.
func dayBounds(d time.Time) (int64, int64) {
	start := startOfDay(d)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start.UnixMilli(), end.UnixMilli()
}
