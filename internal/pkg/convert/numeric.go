// Package convert coerces loosely typed upstream values into decimals.
package convert

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// ToDecimal reads a gjson value that may be a JSON string or number.
// Missing, null or unparseable values yield zero.
func ToDecimal(v gjson.Result) decimal.Decimal {
	switch v.Type {
	case gjson.Number:
		if d, err := decimal.NewFromString(v.Raw); err == nil {
			return d
		}
		return decimal.NewFromFloat(v.Float())
	case gjson.String:
		d, err := decimal.NewFromString(strings.TrimSpace(v.Str))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// ToMillis reads an epoch-millisecond timestamp; anything else yields zero.
func ToMillis(v gjson.Result) int64 {
	switch v.Type {
	case gjson.Number:
		return v.Int()
	case gjson.String:
		return gjson.Parse(strings.TrimSpace(v.Str)).Int()
	default:
		return 0
	}
}
