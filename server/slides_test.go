package server

import (
	"testing"

	"github.com/healthwrapped/messages"
	"github.com/healthwrapped/models"
	"github.com/healthwrapped/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSlide(t *testing.T, slides []templates.Slide, id string) templates.Slide {
	t.Helper()
	for _, s := range slides {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("slide %q not found", id)
	return templates.Slide{}
}

func findStat(t *testing.T, slide templates.Slide, label string) templates.Stat {
	t.Helper()
	for _, s := range slide.Stats {
		if s.Label == label {
			return s
		}
	}
	t.Fatalf("stat %q not found on slide %q", label, slide.ID)
	return templates.Stat{}
}

func TestBuildSlidesOrder(t *testing.T) {
	slides, err := BuildSlides(&models.WrappedData{WrappedYear: 2025})
	require.NoError(t, err)

	ids := make([]string, len(slides))
	for i, s := range slides {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{
		"hero",
		"steps-intro", "steps", "distance", "steps-monthly",
		"sleep-intro", "sleep", "sleep-nights", "sleep-schedule", "sleep-monthly",
		"running-intro", "running", "run-distances",
		"workouts-intro", "workouts", "heart", "workouts-monthly",
		"finale",
	}, ids)

	assert.Equal(t, "Your 2025 in review", slides[0].Title)
	assert.Equal(t, "Steps", findSlide(t, slides, "steps-intro").Title)
}

func TestStepsSlide(t *testing.T) {
	slides, err := BuildSlides(&models.WrappedData{
		StepsTotal:   600000,
		StepsMonthly: models.Monthly{3: 500, 7: 1200},
	})
	require.NoError(t, err)

	steps := findSlide(t, slides, "steps")
	assert.Equal(t, "600,000", steps.Headline)
	assert.Equal(t, "Holy moly cuz... that's alot of steps!", steps.Message)

	busiest := findStat(t, steps, "Busiest month")
	assert.Equal(t, "Jul", busiest.Value)
	assert.Equal(t, "1,200 steps", busiest.Note)

	chart := findSlide(t, slides, "steps-monthly").Chart
	require.NotNil(t, chart)
	require.Len(t, chart.Values, 12)
	assert.Equal(t, 500.0, chart.Values[2])
	assert.Equal(t, 1200.0, chart.Values[6])
	assert.Equal(t, models.MonthLabels, chart.XAxis)
	assert.NotEmpty(t, chart.HTML)
}

func TestMonthlySlidesShowYearTotal(t *testing.T) {
	slides, err := BuildSlides(&models.WrappedData{
		StepsMonthly:      models.Monthly{3: 500, 7: 1200, 14: 99999},
		SleepMonthlyHours: models.Monthly{1: 210.4, 2: 190.3},
	})
	require.NoError(t, err)

	assert.Equal(t, "1,700", findStat(t, findSlide(t, slides, "steps-monthly"), "Year total").Value)
	assert.Equal(t, "401", findStat(t, findSlide(t, slides, "sleep-monthly"), "Year total").Value)
	assert.Equal(t, "0", findStat(t, findSlide(t, slides, "workouts-monthly"), "Year total").Value)
}

func TestEmptyWorkoutsMonthlyRendersTwelveZeroBars(t *testing.T) {
	slides, err := BuildSlides(&models.WrappedData{WorkoutsMonthly: models.Monthly{}})
	require.NoError(t, err)

	chart := findSlide(t, slides, "workouts-monthly").Chart
	require.NotNil(t, chart)
	assert.Equal(t, make([]float64, 12), chart.Values)
}

func TestMissingOptionalFieldsRenderNotAvailable(t *testing.T) {
	var slides []templates.Slide
	require.NotPanics(t, func() {
		var err error
		slides, err = BuildSlides(&models.WrappedData{MostCaloriesBurnedDay: "N/A"})
		require.NoError(t, err)
	})

	sleep := findSlide(t, slides, "sleep")
	assert.Equal(t, NotAvailable, sleep.Headline)
	assert.Equal(t, messages.AvgSleepMessages[0], sleep.Message)
	assert.Equal(t, NotAvailable, findStat(t, sleep, "Nights tracked").Value)
	assert.Equal(t, NotAvailable, findStat(t, sleep, "Total sleep").Value)

	nights := findSlide(t, slides, "sleep-nights")
	assert.Equal(t, NotAvailable, findStat(t, nights, "Longest night").Value)
	assert.Equal(t, NotAvailable, findStat(t, nights, "Shortest night").Value)
	assert.Equal(t, NotAvailable, findStat(t, nights, "Most restless night").Value)

	schedule := findSlide(t, slides, "sleep-schedule")
	assert.Equal(t, NotAvailable, findStat(t, schedule, "Average bedtime").Value)

	running := findSlide(t, slides, "running")
	pace := findStat(t, running, "Fastest pace")
	assert.Equal(t, NotAvailable, pace.Value)
	assert.Equal(t, messages.PaceMessages[0], pace.Message)

	best := findStat(t, findSlide(t, slides, "workouts"), "Biggest burn")
	assert.Equal(t, NotAvailable, best.Value)
	assert.Empty(t, best.Note)
}

func TestSleepSlidesWithData(t *testing.T) {
	avg := 7.34
	nights := 351
	slides, err := BuildSlides(&models.WrappedData{
		AvgSleepPerNight:    &avg,
		TotalNightsWithData: &nights,
		LongestSleepNight:   &models.SleepNight{DateWoke: "2025-01-02", DurationHours: 10.42},
		MostWokenNight:      &models.WokenNight{DateWoke: "2025-03-09", AwakeningCount: 9},
		AvgBedtime:          "11:24 PM",
		NightlySleepData: []models.NightlySleep{
			{Date: "2025-01-01", BedtimeHours: 24.5, WakeTimeHours: 31.75},
		},
	})
	require.NoError(t, err)

	sleep := findSlide(t, slides, "sleep")
	assert.Equal(t, "7.3", sleep.Headline)
	assert.Equal(t, "351", findStat(t, sleep, "Nights tracked").Value)

	n := findSlide(t, slides, "sleep-nights")
	longest := findStat(t, n, "Longest night")
	assert.Equal(t, "10.4 h", longest.Value)
	assert.Equal(t, "2025-01-02", longest.Note)
	woken := findStat(t, n, "Most restless night")
	assert.Equal(t, "9 awakenings", woken.Value)
	assert.Equal(t, messages.Awakenings(&models.WokenNight{AwakeningCount: 9}), woken.Message)

	schedule := findSlide(t, slides, "sleep-schedule")
	assert.Equal(t, "11:24 PM", findStat(t, schedule, "Average bedtime").Value)
	require.NotNil(t, schedule.Chart)
	assert.Equal(t, []string{"Jan 01"}, schedule.Chart.XAxis)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "600,000", formatInt(600000))
	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "2,511.4", formatFloat(2511.38, 1))
	assert.Equal(t, "21.19", formatFloat(21.19, 2))
	assert.Equal(t, "67,666", formatFloat(67666.4, 0))

	pace := 4.72
	assert.Equal(t, "4:43 /km", formatPace(&pace))
	assert.Equal(t, NotAvailable, formatPace(nil))
}
