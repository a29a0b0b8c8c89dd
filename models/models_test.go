package models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrappedDataParsing(t *testing.T) {
	// Test JSON data
	testJSON := `{
        "wrapped_year": 2025,
        "steps_total": 600000,
        "steps_monthly": {"1": 1000, "3": 500},
        "fastest_pace_min_per_km": null,
        "longest_sleep_night": {"date_woke": "2025-01-02", "duration_hours": 10.42},
        "most_woken_night": {"date_woke": "2025-03-09", "awakening_count": 9},
        "nightly_sleep_data": [{"date": "2025-01-01", "bedtime_h_dec": 24.5, "wake_time_h_dec": 31.75}],
        "sleep_monthly_hours": {"2": 198.25},
        "workouts_monthly": {},
        "most_calories_burned_day": "N/A"
    }`

	var data WrappedData
	err := json.Unmarshal([]byte(testJSON), &data)
	require.NoError(t, err, "Failed to parse wrapped JSON")

	assert.Equal(t, 2025, data.WrappedYear)
	assert.Equal(t, Monthly{1: 1000, 3: 500}, data.StepsMonthly)
	assert.Nil(t, data.FastestPaceMinPerKm)
	assert.Nil(t, data.ShortestSleepNight)
	assert.Nil(t, data.AvgSleepPerNight)
	require.NotNil(t, data.LongestSleepNight)
	assert.Equal(t, 10.42, data.LongestSleepNight.DurationHours)
	assert.Equal(t, 9, data.MostWokenNight.AwakeningCount)
	assert.Equal(t, 24.5, data.NightlySleepData[0].BedtimeHours)
	assert.Equal(t, 198.25, data.SleepMonthlyHours[2])
	assert.Empty(t, data.WorkoutsMonthly)
	assert.Equal(t, "N/A", data.MostCaloriesBurnedDay)
}

func TestMonthlySeries(t *testing.T) {
	series := Monthly{3: 500}.Series()
	for i, v := range series {
		if i == 2 {
			assert.Equal(t, 500.0, v)
			continue
		}
		assert.Zero(t, v, "month index %d", i)
	}

	assert.Equal(t, [12]float64{}, Monthly{}.Series())
	assert.Equal(t, [12]float64{}, Monthly(nil).Series())

	// out of range months are dropped
	series = Monthly{0: 1, 12: 7, 13: 9, -1: 4}.Series()
	assert.Equal(t, 7.0, series[11])
	assert.Equal(t, 7.0, Monthly{0: 1, 12: 7, 13: 9}.Total())
}

func TestMonthlyBusiestMonth(t *testing.T) {
	label, value, ok := Monthly{2: 10, 5: 30, 9: 20}.BusiestMonth()
	assert.True(t, ok)
	assert.Equal(t, "May", label)
	assert.Equal(t, 30.0, value)

	_, _, ok = Monthly{}.BusiestMonth()
	assert.False(t, ok)
}

func TestCharts(t *testing.T) {
	data := WrappedData{
		WrappedYear: 2025,
		NightlySleepData: []NightlySleep{
			{Date: "2025-01-01", BedtimeHours: 24.456, WakeTimeHours: 31.75},
			{Date: "garbage", BedtimeHours: 23, WakeTimeHours: 30},
		},
		RunDistances: []float64{5.016, 10},
	}

	sleep := data.NightlySleepChart()
	assert.Equal(t, []string{"Jan 01", "garbage"}, sleep.XAxis)
	assert.Equal(t, []float64{24.46, 23}, sleep.Series["Bedtime"])
	assert.Equal(t, []float64{31.75, 30}, sleep.Series["Wake Time"])

	runs := data.RunDistancesChart()
	assert.Equal(t, []string{"#1", "#2"}, runs.XAxis)
	assert.Equal(t, []float64{5.02, 10}, runs.Series["Distance"])
	assert.Equal(t, "2 runs in 2025", runs.Subtitle)
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "wrapped.json")

	pace := 4.72
	want := &WrappedData{WrappedYear: 2025, StepsTotal: 42, FastestPaceMinPerKm: &pace, WorkoutsMonthly: Monthly{4: 3}}
	require.NoError(t, SaveSnapshot(path, want))

	got, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSnapshotErrors(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = LoadSnapshot(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSnapshotNotFound)
}
