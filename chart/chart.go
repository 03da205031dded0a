// Package chart renders study records as an interactive HTML report.
package chart

import (
	"io"
	"math"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/etnz/eventstudy"
)

// WritePage renders the full report to w: growth per event as grouped bars,
// an event × horizon heat map, and growth against event date.
func WritePage(w io.Writer, records []*eventstudy.Record) error {
	horizons := horizonsOf(records)

	page := components.NewPage()
	page.PageTitle = "Event Study"
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(
		resultsBar(records, horizons),
		resultsHeatMap(records, horizons),
		timeline(records, horizons),
	)
	return page.Render(w)
}

// resultsBar draws one bar group per event, one bar per horizon.
func resultsBar(records []*eventstudy.Record, horizons []eventstudy.Horizon) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Growth After Events",
			Subtitle: "Compound annual growth rate from two sessions after each event",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{AxisLabel: &opts.AxisLabel{Formatter: "{value} %"}}),
	)

	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Event)
	}
	bar.SetXAxis(names)

	for _, h := range horizons {
		data := make([]opts.BarData, 0, len(records))
		for _, r := range records {
			data = append(data, opts.BarData{Value: growthValue(r, h)})
		}
		bar.AddSeries(h.String(), data)
	}
	return bar
}

// resultsHeatMap draws the event × horizon grid, colored around zero so that
// losses and gains read at a glance.
func resultsHeatMap(records []*eventstudy.Record, horizons []eventstudy.Horizon) *charts.HeatMap {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Event)
	}
	labels := make([]string, 0, len(horizons))
	for _, h := range horizons {
		labels = append(labels, h.String())
	}

	bound := 10.0
	data := make([]opts.HeatMapData, 0, len(records)*len(horizons))
	for i, r := range records {
		for j, h := range horizons {
			m, ok := r.Get(h)
			if !ok || !m.Available {
				continue
			}
			v := round2(float64(m.CAGR))
			bound = math.Max(bound, math.Abs(v))
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, v}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Growth Heat Map"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: names}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: labels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(-bound),
			Max:        float32(bound),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#c23531", "#f5f5f5", "#314656"},
			},
		}),
	)
	hm.AddSeries("CAGR %", data)
	return hm
}

// timeline draws growth against event date, one line per horizon.
func timeline(records []*eventstudy.Record, horizons []eventstudy.Horizon) *charts.Line {
	ordered := slices.Clone(records)
	slices.SortStableFunc(ordered, func(a, b *eventstudy.Record) int {
		switch {
		case a.EventDate.Before(b.EventDate):
			return -1
		case b.EventDate.Before(a.EventDate):
			return 1
		}
		return 0
	})

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Growth Through History"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{AxisLabel: &opts.AxisLabel{Formatter: "{value} %"}}),
	)

	dates := make([]string, 0, len(ordered))
	for _, r := range ordered {
		dates = append(dates, r.EventDate.String())
	}
	line.SetXAxis(dates)

	for _, h := range horizons {
		data := make([]opts.LineData, 0, len(ordered))
		for _, r := range ordered {
			data = append(data, opts.LineData{Value: growthValue(r, h)})
		}
		line.AddSeries(h.String(), data, charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	}
	return line
}

// growthValue returns the chart value for one record and horizon, the echarts
// missing-point marker when the horizon could not be measured.
func growthValue(r *eventstudy.Record, h eventstudy.Horizon) interface{} {
	m, ok := r.Get(h)
	if !ok || !m.Available {
		return "-"
	}
	return round2(float64(m.CAGR))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// horizonsOf returns the horizon columns of the first record, or the study
// defaults when there is nothing to look at.
func horizonsOf(records []*eventstudy.Record) []eventstudy.Horizon {
	for _, r := range records {
		horizons := make([]eventstudy.Horizon, 0, len(r.Measures))
		for _, m := range r.Measures {
			horizons = append(horizons, m.Horizon)
		}
		return horizons
	}
	return eventstudy.DefaultHorizons
}
