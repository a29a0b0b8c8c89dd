package server

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"maps"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/healthwrapped/models"
)

var chartInit = opts.Initialization{
	Theme:  "macarons",
	Width:  "900px",
	Height: "420px",
}

// generateMonthlyBarChart plots a month mapping as twelve bars, Jan..Dec.
func generateMonthlyBarChart(title, subtitle, seriesName string, series [12]float64) *charts.Bar {
	bar := charts.NewBar()

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(chartInit),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "shadow",
			},
			BackgroundColor: "rgba(255, 255, 255, 0.9)",
			BorderColor:     "#ccc",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	bar.SetXAxis(models.MonthLabels).
		AddSeries(seriesName, monthlyBarItems(series))

	return bar
}

// monthlyBarItems converts the twelve month values to bar items.
func monthlyBarItems(series [12]float64) []opts.BarData {
	items := make([]opts.BarData, 0, len(series))
	for _, v := range series {
		items = append(items, opts.BarData{Value: v})
	}
	return items
}

func generateLineChart(data models.ChartData) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(chartInit),
		charts.WithTitleOpts(opts.Title{
			Title:    data.Title,
			Subtitle: data.Subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:            opts.Bool(true),
			Trigger:         "item",
			BackgroundColor: "#f5f5f5",
			BorderColor:     "#ccc",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
			}}),
	)

	if data.YAxis != "" {
		line.SetGlobalOptions(
			charts.WithYAxisOpts(opts.YAxis{
				Name:         data.YAxis,
				NameLocation: "middle",
				NameGap:      50,
				Scale:        opts.Bool(true),
			}),
		)
	}

	// X-axis data
	line.SetXAxis(data.XAxis)

	// Series are added in name order so the legend is stable between renders
	for _, name := range slices.Sorted(maps.Keys(data.Series)) {
		line.AddSeries(name, generateLineItems(data.Series[name]))
	}

	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line
}

// generateLineItems converts a float slice to LineData slice
func generateLineItems(data []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, v := range data {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}

type chartRenderer interface {
	Render(w io.Writer) error
}

func renderChart(chart chartRenderer) (template.HTML, error) {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return template.HTML(buf.String()), nil
}
