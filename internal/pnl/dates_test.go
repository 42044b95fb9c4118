package pnl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2024-01-01", " 2024-01-01 ", "2024-01-01T18:30:00Z", "2024-01-01T18:30:00"} {
		got, err := ParseDate(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), raw)
	}

	// offsets are normalised to the UTC calendar day
	got, err := ParseDate("2024-01-01T22:00:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", got.Format(dateLayout))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "yesterday", "2024-13-01", "01/02/2024"} {
		_, err := ParseDate(raw)
		assert.Error(t, err, raw)
	}
}

func TestDayBounds(t *testing.T) {
	start, end := dayBounds(time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, int64(1704067200000), start)
	assert.Equal(t, int64(1704153599999), end)
}
