package models

// WrappedData is the year-in-review snapshot returned by the aggregation
// service. It is decoded once per page view and never mutated afterwards.
type WrappedData struct {
	WrappedYear int `json:"wrapped_year"`

	StepsTotal      int     `json:"steps_total"`
	StepsMonthly    Monthly `json:"steps_monthly"`
	DistanceTotalKm float64 `json:"distance_total_km"`
	FlightsTotal    int     `json:"flights_total"`

	RestingHRAvg float64 `json:"resting_hr_avg"`
	WorkoutHRAvg float64 `json:"workout_hr_avg"`

	WorkoutsCount           int     `json:"workouts_count"`
	HighestWorkoutBPM       float64 `json:"highest_workout_bpm"`
	AvgWorkoutBPM           float64 `json:"avg_workout_bpm"`
	AvgWorkoutTimeMin       float64 `json:"avg_workout_time_min"`
	AvgCaloriesPerWorkout   float64 `json:"avg_calories_per_workout"`
	TotalWorkoutCalories    float64 `json:"total_workout_calories"`
	MostCaloriesBurnedDay   string  `json:"most_calories_burned_day"`
	MostCaloriesBurnedValue float64 `json:"most_calories_burned_value"`

	TotalRuns           int       `json:"total_runs"`
	LongestRunKm        float64   `json:"longest_run_km"`
	RunDistances        []float64 `json:"run_distances"`
	FastestPaceMinPerKm *float64  `json:"fastest_pace_min_per_km"`

	// The sleep block is only present when the export had sleep records.
	TotalNetSleepHours  *float64       `json:"total_net_sleep_hours,omitempty"`
	TotalNightsWithData *int           `json:"total_nights_with_data,omitempty"`
	AvgSleepPerNight    *float64       `json:"avg_sleep_per_night,omitempty"`
	AvgBedtime          string         `json:"avg_bedtime,omitempty"`
	AvgWaketime         string         `json:"avg_waketime,omitempty"`
	LongestSleepNight   *SleepNight    `json:"longest_sleep_night,omitempty"`
	ShortestSleepNight  *SleepNight    `json:"shortest_sleep_night,omitempty"`
	MostWokenNight      *WokenNight    `json:"most_woken_night,omitempty"`
	NightlySleepData    []NightlySleep `json:"nightly_sleep_data,omitempty"`
	SleepMonthlyHours   Monthly        `json:"sleep_monthly_hours"`

	WorkoutsMonthly Monthly `json:"workouts_monthly"`
	ExerciseTotal   float64 `json:"exercise_total"`
	StandTotal      float64 `json:"stand_total"`
}

type SleepNight struct {
	DateWoke      string  `json:"date_woke"`
	DurationHours float64 `json:"duration_hours"`
}

type WokenNight struct {
	DateWoke       string `json:"date_woke"`
	AwakeningCount int    `json:"awakening_count"`
}

// NightlySleep holds one consolidated night. Times are decimal hours; a
// bedtime after midnight is reported past 24 so the series stays monotonic.
type NightlySleep struct {
	Date          string  `json:"date"`
	BedtimeHours  float64 `json:"bedtime_h_dec"`
	WakeTimeHours float64 `json:"wake_time_h_dec"`
}

// MonthLabels are the x axis labels of every monthly chart.
var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Monthly is a sparse month number (1-12) to value mapping.
type Monthly map[int]float64

// Series returns the mapping as twelve values, January first. Missing months
// are zero and keys outside 1-12 are dropped.
func (m Monthly) Series() [12]float64 {
	var out [12]float64
	for month, v := range m {
		if month < 1 || month > 12 {
			continue
		}
		out[month-1] = v
	}
	return out
}

// Total sums every month in range.
func (m Monthly) Total() float64 {
	var sum float64
	for _, v := range m.Series() {
		sum += v
	}
	return sum
}

// BusiestMonth returns the label and value of the highest month. ok is false
// when every month is zero.
func (m Monthly) BusiestMonth() (label string, value float64, ok bool) {
	series := m.Series()
	best := -1
	for i, v := range series {
		if v > 0 && (best < 0 || v > series[best]) {
			best = i
		}
	}
	if best < 0 {
		return "", 0, false
	}
	return MonthLabels[best], series[best], true
}
