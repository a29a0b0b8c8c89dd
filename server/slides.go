package server

import (
	"fmt"
	"math"

	"github.com/healthwrapped/messages"
	"github.com/healthwrapped/models"
	"github.com/healthwrapped/templates"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable stands in for any optional field the snapshot omits.
const NotAvailable = "N/A"

var printer = message.NewPrinter(language.English)

// BuildSlides maps a snapshot onto the fixed slide sequence: hero, then
// steps, sleep, running and workouts chapters, then the finale. Slides do not
// share state; each reads only the fields it shows.
func BuildSlides(data *models.WrappedData) ([]templates.Slide, error) {
	slides := []templates.Slide{heroSlide(data)}

	steps, err := stepsChapter(data)
	if err != nil {
		return nil, err
	}
	slides = append(slides, steps...)

	sleep, err := sleepChapter(data)
	if err != nil {
		return nil, err
	}
	slides = append(slides, sleep...)

	running, err := runningChapter(data)
	if err != nil {
		return nil, err
	}
	slides = append(slides, running...)

	workouts, err := workoutsChapter(data)
	if err != nil {
		return nil, err
	}
	slides = append(slides, workouts...)

	return append(slides, finaleSlide(data)), nil
}

func heroSlide(data *models.WrappedData) templates.Slide {
	title := "Your year in review"
	if data.WrappedYear > 0 {
		title = fmt.Sprintf("Your %d in review", data.WrappedYear)
	}
	return templates.Slide{
		ID:      "hero",
		Kind:    templates.KindHero,
		Theme:   "hero",
		Eyebrow: "Health Wrapped",
		Title:   title,
		Message: "Every step, every night, every sweat. Scroll down to relive it.",
	}
}

func introSlide(theme string, chapter int, lead string) templates.Slide {
	return templates.Slide{
		ID:      theme + "-intro",
		Kind:    templates.KindIntro,
		Theme:   theme,
		Eyebrow: fmt.Sprintf("Chapter %d", chapter),
		Title:   cases.Title(language.English).String(theme),
		Message: lead,
	}
}

func stepsChapter(data *models.WrappedData) ([]templates.Slide, error) {
	busiest := templates.Stat{Label: "Busiest month", Value: NotAvailable}
	if label, value, ok := data.StepsMonthly.BusiestMonth(); ok {
		busiest.Value = label
		busiest.Note = formatInt(int(value)) + " steps"
	}

	monthly, err := monthlyChartSlide("steps-monthly", "steps", "Steps per month",
		"Which months got you moving", "Steps", data.StepsMonthly)
	if err != nil {
		return nil, err
	}

	return []templates.Slide{
		introSlide("steps", 1, "First up: how much ground did you cover?"),
		{
			ID:       "steps",
			Kind:     templates.KindStat,
			Theme:    "steps",
			Eyebrow:  "This year you took",
			Headline: formatInt(data.StepsTotal),
			Unit:     "steps",
			Message:  messages.Steps(data.StepsTotal),
			Stats:    []templates.Stat{busiest},
		},
		{
			ID:      "distance",
			Kind:    templates.KindStat,
			Theme:   "steps",
			Eyebrow: "All those steps added up",
			Stats: []templates.Stat{
				{
					Label:   "Distance walked & run",
					Value:   formatFloat(data.DistanceTotalKm, 1) + " km",
					Message: messages.Distance(data.DistanceTotalKm),
				},
				{
					Label:   "Flights climbed",
					Value:   formatInt(data.FlightsTotal),
					Message: messages.Flights(data.FlightsTotal),
				},
			},
		},
		monthly,
	}, nil
}

func sleepChapter(data *models.WrappedData) ([]templates.Slide, error) {
	nights := NotAvailable
	if data.TotalNightsWithData != nil {
		nights = formatInt(*data.TotalNightsWithData)
	}
	total := NotAvailable
	if data.TotalNetSleepHours != nil {
		total = formatFloat(*data.TotalNetSleepHours, 0) + " h"
	}

	schedule := templates.Slide{
		ID:      "sleep-schedule",
		Kind:    templates.KindChart,
		Theme:   "sleep",
		Eyebrow: "Your sleep schedule",
		Stats: []templates.Stat{
			{
				Label:   "Average bedtime",
				Value:   orNotAvailable(data.AvgBedtime),
				Message: messages.Bedtime(data.AvgBedtime),
			},
			{
				Label: "Average wake time",
				Value: orNotAvailable(data.AvgWaketime),
			},
		},
	}
	nightly := data.NightlySleepChart()
	html, err := renderChart(generateLineChart(nightly))
	if err != nil {
		return nil, err
	}
	schedule.Chart = &templates.Chart{Title: nightly.Title, XAxis: nightly.XAxis, HTML: html}

	monthly, err := monthlyChartSlide("sleep-monthly", "sleep", "Hours slept per month",
		"Net sleep, awake time excluded", "Hours", data.SleepMonthlyHours)
	if err != nil {
		return nil, err
	}

	return []templates.Slide{
		introSlide("sleep", 2, "Now, how well did you recharge?"),
		{
			ID:       "sleep",
			Kind:     templates.KindStat,
			Theme:    "sleep",
			Eyebrow:  "On an average night you slept",
			Headline: formatHours(data.AvgSleepPerNight),
			Unit:     "hours",
			Message:  messages.AvgSleep(data.AvgSleepPerNight),
			Stats: []templates.Stat{
				{Label: "Nights tracked", Value: nights},
				{Label: "Total sleep", Value: total},
			},
		},
		{
			ID:      "sleep-nights",
			Kind:    templates.KindStat,
			Theme:   "sleep",
			Eyebrow: "The nights that stood out",
			Stats: []templates.Stat{
				sleepNightStat("Longest night", data.LongestSleepNight),
				sleepNightStat("Shortest night", data.ShortestSleepNight),
				wokenNightStat(data.MostWokenNight),
			},
		},
		schedule,
		monthly,
	}, nil
}

func runningChapter(data *models.WrappedData) ([]templates.Slide, error) {
	distances := data.RunDistancesChart()
	html, err := renderChart(generateLineChart(distances))
	if err != nil {
		return nil, err
	}

	return []templates.Slide{
		introSlide("running", 3, "Lace up, it's time to talk running."),
		{
			ID:       "running",
			Kind:     templates.KindStat,
			Theme:    "running",
			Eyebrow:  "You went out for",
			Headline: formatInt(data.TotalRuns),
			Unit:     "runs",
			Message:  messages.Runs(data.TotalRuns),
			Stats: []templates.Stat{
				{Label: "Longest run", Value: formatFloat(data.LongestRunKm, 2) + " km"},
				{
					Label:   "Fastest pace",
					Value:   formatPace(data.FastestPaceMinPerKm),
					Message: messages.Pace(data.FastestPaceMinPerKm),
				},
			},
		},
		{
			ID:      "run-distances",
			Kind:    templates.KindChart,
			Theme:   "running",
			Eyebrow: "Every run, in order",
			Chart: &templates.Chart{
				Title:  distances.Title,
				XAxis:  distances.XAxis,
				Values: distances.Series["Distance"],
				HTML:   html,
			},
		},
	}, nil
}

func workoutsChapter(data *models.WrappedData) ([]templates.Slide, error) {
	bestDay := templates.Stat{Label: "Biggest burn", Value: orNotAvailable(data.MostCaloriesBurnedDay)}
	if bestDay.Value != NotAvailable {
		bestDay.Note = formatFloat(data.MostCaloriesBurnedValue, 0) + " kcal"
	}

	monthly, err := monthlyChartSlide("workouts-monthly", "workouts", "Workouts per month",
		"Your training calendar", "Workouts", data.WorkoutsMonthly)
	if err != nil {
		return nil, err
	}

	return []templates.Slide{
		introSlide("workouts", 4, "Finally, let's see you sweat."),
		{
			ID:       "workouts",
			Kind:     templates.KindStat,
			Theme:    "workouts",
			Eyebrow:  "You logged",
			Headline: formatInt(data.WorkoutsCount),
			Unit:     "workouts",
			Message:  messages.Workouts(data.WorkoutsCount),
			Stats: []templates.Stat{
				{Label: "Average workout", Value: formatFloat(data.AvgWorkoutTimeMin, 1) + " min"},
				{
					Label:   "Calories burned",
					Value:   formatFloat(data.TotalWorkoutCalories, 0) + " kcal",
					Message: messages.Calories(data.TotalWorkoutCalories),
				},
				{Label: "Per workout", Value: formatFloat(data.AvgCaloriesPerWorkout, 0) + " kcal"},
				bestDay,
			},
		},
		{
			ID:      "heart",
			Kind:    templates.KindStat,
			Theme:   "workouts",
			Eyebrow: "Your heart kept up",
			Stats: []templates.Stat{
				{Label: "Highest workout BPM", Value: formatFloat(data.HighestWorkoutBPM, 0)},
				{Label: "Average workout BPM", Value: formatFloat(data.AvgWorkoutBPM, 0)},
				{
					Label:   "Resting heart rate",
					Value:   formatFloat(data.RestingHRAvg, 1) + " bpm",
					Message: messages.RestingHeartRate(data.RestingHRAvg),
				},
			},
		},
		monthly,
	}, nil
}

func finaleSlide(data *models.WrappedData) templates.Slide {
	nights := NotAvailable
	if data.TotalNightsWithData != nil {
		nights = formatInt(*data.TotalNightsWithData)
	}
	return templates.Slide{
		ID:      "finale",
		Kind:    templates.KindFinale,
		Theme:   "finale",
		Eyebrow: "That's a wrap",
		Title:   "Your year, in numbers",
		Message: "See you next year!",
		Stats: []templates.Stat{
			{Label: "Steps", Value: formatInt(data.StepsTotal)},
			{Label: "Kilometres", Value: formatFloat(data.DistanceTotalKm, 1)},
			{Label: "Nights tracked", Value: nights},
			{Label: "Runs", Value: formatInt(data.TotalRuns)},
			{Label: "Workouts", Value: formatInt(data.WorkoutsCount)},
			{Label: "Exercise minutes", Value: formatFloat(data.ExerciseTotal, 0)},
			{Label: "Stand hours", Value: formatFloat(data.StandTotal, 0)},
		},
	}
}

func monthlyChartSlide(id, theme, title, subtitle, seriesName string, monthly models.Monthly) (templates.Slide, error) {
	series := monthly.Series()
	html, err := renderChart(generateMonthlyBarChart(title, subtitle, seriesName, series))
	if err != nil {
		return templates.Slide{}, err
	}
	return templates.Slide{
		ID:      id,
		Kind:    templates.KindChart,
		Theme:   theme,
		Eyebrow: title,
		Stats: []templates.Stat{
			{Label: "Year total", Value: formatFloat(monthly.Total(), 0)},
		},
		Chart: &templates.Chart{
			Title:  title,
			XAxis:  models.MonthLabels,
			Values: series[:],
			HTML:   html,
		},
	}, nil
}

func sleepNightStat(label string, night *models.SleepNight) templates.Stat {
	if night == nil {
		return templates.Stat{Label: label, Value: NotAvailable}
	}
	return templates.Stat{
		Label: label,
		Value: formatFloat(night.DurationHours, 1) + " h",
		Note:  night.DateWoke,
	}
}

func wokenNightStat(night *models.WokenNight) templates.Stat {
	stat := templates.Stat{
		Label:   "Most restless night",
		Value:   NotAvailable,
		Message: messages.Awakenings(night),
	}
	if night != nil {
		stat.Value = printer.Sprintf("%d awakenings", night.AwakeningCount)
		stat.Note = night.DateWoke
	}
	return stat
}

func formatInt(n int) string {
	return printer.Sprintf("%d", n)
}

func formatFloat(v float64, decimals int) string {
	switch decimals {
	case 0:
		return printer.Sprintf("%.0f", v)
	case 1:
		return printer.Sprintf("%.1f", v)
	default:
		return printer.Sprintf("%.2f", v)
	}
}

func formatHours(hours *float64) string {
	if hours == nil {
		return NotAvailable
	}
	return formatFloat(*hours, 1)
}

// formatPace renders minutes per km as m:ss.
func formatPace(minPerKm *float64) string {
	if minPerKm == nil || *minPerKm <= 0 {
		return NotAvailable
	}
	total := int(math.Round(*minPerKm * 60))
	return fmt.Sprintf("%d:%02d /km", total/60, total%60)
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
