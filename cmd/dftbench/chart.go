package main

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderChart writes a bar chart of median and p90 time per strategy.
func renderChart(w io.Writer, cfg benchConfig, results []benchResult) error {
	labels := make([]string, len(results))
	medians := make([]opts.BarData, len(results))
	p90s := make([]opts.BarData, len(results))

	for i, r := range results {
		labels[i] = r.strategy.String()
		medians[i] = opts.BarData{Value: r.median / 1e3}
		p90s[i] = opts.BarData{Value: r.p90 / 1e3}
	}

	title := fmt.Sprintf("DFTBatch %s %dx%d", cfg.field, 1<<cfg.logHeight, cfg.width)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "microseconds per batch"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1000px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(labels).
		AddSeries("median", medians).
		AddSeries("p90", p90s)

	return bar.Render(w)
}
