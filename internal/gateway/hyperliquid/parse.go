package hyperliquid

import (
	"fmt"
	"sort"
	"strings"

	"hlpnl/internal/pkg/convert"
	"hlpnl/internal/pnl"

	"github.com/tidwall/gjson"
)

// portfolioWindows lists the portfolio windows in order of preference.
var portfolioWindows = []string{"daily", "allTime"}

// parsePortfolio reads [[window, {accountValueHistory, pnlHistory}], ...].
// A payload without a usable window is an empty history, not an error.
func parsePortfolio(raw []byte) (pnl.PortfolioHistory, error) {
	root, err := parseRoot(raw, typePortfolio)
	if err != nil {
		return pnl.PortfolioHistory{}, err
	}
	if root.Type == gjson.Null {
		return pnl.PortfolioHistory{}, nil
	}
	if !root.IsArray() {
		return pnl.PortfolioHistory{}, fmt.Errorf("portfolio response must be an array")
	}
	windows := make(map[string]gjson.Result)
	root.ForEach(func(_, entry gjson.Result) bool {
		name := strings.TrimSpace(entry.Get("0").String())
		if data := entry.Get("1"); name != "" && data.IsObject() {
			if _, seen := windows[name]; !seen {
				windows[name] = data
			}
		}
		return true
	})
	for _, name := range portfolioWindows {
		data, ok := windows[name]
		if !ok {
			continue
		}
		return pnl.PortfolioHistory{
			PnL:          parseSeries(data.Get("pnlHistory")),
			AccountValue: parseSeries(data.Get("accountValueHistory")),
		}, nil
	}
	return pnl.PortfolioHistory{}, nil
}

// parseSeries reads [[ts, "value"], ...] and sorts it by time.
func parseSeries(node gjson.Result) []pnl.Point {
	if !node.IsArray() {
		return nil
	}
	var out []pnl.Point
	node.ForEach(func(_, pair gjson.Result) bool {
		if !pair.IsArray() {
			return true
		}
		out = append(out, pnl.Point{
			Time:  convert.ToMillis(pair.Get("0")),
			Value: convert.ToDecimal(pair.Get("1")),
		})
		return true
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

func parseFills(raw []byte) ([]pnl.Fill, error) {
	root, err := parseRoot(raw, typeUserFills)
	if err != nil {
		return nil, err
	}
	if root.Type == gjson.Null {
		return nil, nil
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("userFills response must be an array")
	}
	var out []pnl.Fill
	root.ForEach(func(_, f gjson.Result) bool {
		if !f.IsObject() {
			return true
		}
		out = append(out, pnl.Fill{
			Time:      convert.ToMillis(f.Get("time")),
			ClosedPnL: convert.ToDecimal(f.Get("closedPnl")),
			Fee:       convert.ToDecimal(f.Get("fee")),
		})
		return true
	})
	return out, nil
}

// parseFunding accepts both the venue's nested delta.usdc and a flat usdc field.
func parseFunding(raw []byte) ([]pnl.FundingEvent, error) {
	root, err := parseRoot(raw, typeUserFunding)
	if err != nil {
		return nil, err
	}
	if root.Type == gjson.Null {
		return nil, nil
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("userFunding response must be an array")
	}
	var out []pnl.FundingEvent
	root.ForEach(func(_, e gjson.Result) bool {
		if !e.IsObject() {
			return true
		}
		usdc := e.Get("delta.usdc")
		if !usdc.Exists() {
			usdc = e.Get("usdc")
		}
		out = append(out, pnl.FundingEvent{
			Time: convert.ToMillis(e.Get("time")),
			USDC: convert.ToDecimal(usdc),
		})
		return true
	})
	return out, nil
}

func parseRoot(raw []byte, reqType string) (gjson.Result, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return gjson.Result{}, nil
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("%s response is not valid json", reqType)
	}
	return gjson.ParseBytes(raw), nil
}
