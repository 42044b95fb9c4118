// Package chart renders a PnL ledger as a standalone ECharts HTML page.
package chart

import (
	"fmt"
	"io"

	"hlpnl/internal/pnl"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	colorBackground    = "#060c1b"
	colorTextPrimary   = "#eceff4"
	colorTextSecondary = "#9ca3af"
	colorRealized      = "#34d399"
	colorUnrealized    = "#3b82f6"
	colorFunding       = "#fbbf24"
	colorFees          = "#f87171"
	colorNet           = "#a78bfa"
	colorEquity        = "#22d3ee"

	chartWidthPx  = 1200
	chartHeightPx = 420
)

// RenderDaily writes a page with the daily PnL components as bars and the
// net PnL and equity as lines.
func RenderDaily(w io.Writer, title string, report pnl.Report) error {
	if len(report.Daily) == 0 {
		return fmt.Errorf("no daily records to chart")
	}
	xAxis := make([]string, len(report.Daily))
	for i, d := range report.Daily {
		xAxis[i] = d.Date
	}

	bars := newBarChart(title, report.Summary)
	bars.SetXAxis(xAxis).
		AddSeries("Realized", barSeries(report.Daily, func(d pnl.DailyRecord) float64 { return d.RealizedUSD }),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorRealized})).
		AddSeries("Unrealized", barSeries(report.Daily, func(d pnl.DailyRecord) float64 { return d.UnrealizedUSD }),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorUnrealized})).
		AddSeries("Funding", barSeries(report.Daily, func(d pnl.DailyRecord) float64 { return d.FundingUSD }),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorFunding})).
		AddSeries("Fees", barSeries(report.Daily, func(d pnl.DailyRecord) float64 { return -d.FeesUSD }),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorFees}))

	trend := newLineChart()
	trend.SetXAxis(xAxis).
		AddSeries("Net PnL", lineSeries(report.Daily, func(d pnl.DailyRecord) float64 { return d.NetUSD }),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorNet})).
		AddSeries("Equity", lineSeries(report.Daily, func(d pnl.DailyRecord) float64 { return d.EquityUSD }),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorEquity}))

	return renderPage(w, title, bars, trend)
}

func renderPage(w io.Writer, title string, items ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = title
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(items...)
	return page.Render(w)
}

func initOpts() opts.Initialization {
	return opts.Initialization{
		Theme:           types.ThemeWesteros,
		Width:           fmt.Sprintf("%dpx", chartWidthPx),
		Height:          fmt.Sprintf("%dpx", chartHeightPx),
		BackgroundColor: colorBackground,
	}
}

func newBarChart(title string, s pnl.SummaryRecord) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts()),
		charts.WithTitleOpts(opts.Title{
			Title:         title,
			Subtitle:      summarySubtitle(s),
			Left:          "left",
			TitleStyle:    &opts.TextStyle{Color: colorTextPrimary, FontSize: 18},
			SubtitleStyle: &opts.TextStyle{Color: colorTextSecondary},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30", TextStyle: &opts.TextStyle{Color: colorTextPrimary}}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", AxisLabel: &opts.AxisLabel{Color: colorTextSecondary}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "USD", AxisLabel: &opts.AxisLabel{Color: colorTextSecondary}}),
	)
	return bar
}

func newLineChart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts()),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), TextStyle: &opts.TextStyle{Color: colorTextPrimary}}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", XAxisIndex: []int{0}}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", AxisLabel: &opts.AxisLabel{Color: colorTextSecondary}}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true), AxisLabel: &opts.AxisLabel{Color: colorTextSecondary}}),
	)
	return line
}

func barSeries(days []pnl.DailyRecord, pick func(pnl.DailyRecord) float64) []opts.BarData {
	out := make([]opts.BarData, len(days))
	for i, d := range days {
		out[i] = opts.BarData{Value: pick(d)}
	}
	return out
}

func lineSeries(days []pnl.DailyRecord, pick func(pnl.DailyRecord) float64) []opts.LineData {
	out := make([]opts.LineData, len(days))
	for i, d := range days {
		out[i] = opts.LineData{Value: pick(d)}
	}
	return out
}

func summarySubtitle(s pnl.SummaryRecord) string {
	return fmt.Sprintf("net %.2f | realized %.2f | unrealized %.2f | fees %.2f | funding %.2f",
		s.NetUSD, s.RealizedUSD, s.UnrealizedUSD, s.FeesUSD, s.FundingUSD)
}
