package models

import (
	"fmt"
	"math"
	"time"
)

type ChartData struct {
	Title    string
	Subtitle string
	XAxis    []string
	Series   map[string][]float64
	YAxis    string
}

// NightlySleepChart converts the nightly bedtime and wake time records into
// a two series line chart.
func (w *WrappedData) NightlySleepChart() ChartData {
	chart := ChartData{
		Title:    "Bedtime & Wake Time",
		Subtitle: fmt.Sprintf("Every night of %d", w.WrappedYear),
		XAxis:    make([]string, len(w.NightlySleepData)),
		Series: map[string][]float64{
			"Bedtime":   make([]float64, len(w.NightlySleepData)),
			"Wake Time": make([]float64, len(w.NightlySleepData)),
		},
		YAxis: "Hour of day",
	}

	for i, night := range w.NightlySleepData {
		t, err := time.Parse("2006-01-02", night.Date)
		if err != nil {
			chart.XAxis[i] = night.Date // Fallback to raw date if parsing fails
		} else {
			chart.XAxis[i] = t.Format("Jan 02")
		}
		chart.Series["Bedtime"][i] = round(night.BedtimeHours, 2)
		chart.Series["Wake Time"][i] = round(night.WakeTimeHours, 2)
	}
	return chart
}

// RunDistancesChart plots every run in the order it happened.
func (w *WrappedData) RunDistancesChart() ChartData {
	chart := ChartData{
		Title:    "Every Run",
		Subtitle: fmt.Sprintf("%d runs in %d", len(w.RunDistances), w.WrappedYear),
		XAxis:    make([]string, len(w.RunDistances)),
		Series:   map[string][]float64{"Distance": make([]float64, len(w.RunDistances))},
		YAxis:    "Distance (km)",
	}

	for i, d := range w.RunDistances {
		chart.XAxis[i] = fmt.Sprintf("#%d", i+1)
		chart.Series["Distance"][i] = round(d, 2)
	}
	return chart
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
