// Package messages picks the commentary shown under each statistic. Every
// selector is a pure function over its whole input domain: thresholds are
// checked in order and the first match wins.
package messages

import (
	"time"

	"github.com/healthwrapped/models"
)

var StepsMessages = []string{
	"A gentle stroll through the year. Every step counts!",
	"Solid steppin'. Your shoes have seen some things.",
	"Now we're talking, you were on the move all year!",
	"Holy moly cuz... that's alot of steps!",
}

func Steps(steps int) string {
	switch {
	case steps < 50000:
		return StepsMessages[0]
	case steps < 200000:
		return StepsMessages[1]
	case steps < 500000:
		return StepsMessages[2]
	default:
		return StepsMessages[3]
	}
}

var DistanceMessages = []string{
	"A few laps around the neighbourhood.",
	"That's a decent road trip, on foot.",
	"You could have walked across a country.",
	"Basically a pilgrimage. Legendary.",
}

func Distance(km float64) string {
	switch {
	case km < 100:
		return DistanceMessages[0]
	case km < 500:
		return DistanceMessages[1]
	case km < 1500:
		return DistanceMessages[2]
	default:
		return DistanceMessages[3]
	}
}

var FlightsMessages = []string{
	"Elevators were your friend this year.",
	"A respectable climb.",
	"You've scaled a skyscraper or two.",
	"Mountain goat status unlocked.",
}

func Flights(flights int) string {
	switch {
	case flights < 100:
		return FlightsMessages[0]
	case flights < 500:
		return FlightsMessages[1]
	case flights < 1000:
		return FlightsMessages[2]
	default:
		return FlightsMessages[3]
	}
}

var AvgSleepMessages = []string{
	"No sleep data this year. Mysterious.",
	"Running on fumes. Go to bed!",
	"Almost there, a little more shut-eye wouldn't hurt.",
	"Right in the sweet spot. Well rested!",
	"Sleeping beauty, is that you?",
}

// AvgSleep takes the average hours slept per night.
func AvgSleep(hours *float64) string {
	switch {
	case hours == nil:
		return AvgSleepMessages[0]
	case *hours < 6:
		return AvgSleepMessages[1]
	case *hours < 7:
		return AvgSleepMessages[2]
	case *hours < 9:
		return AvgSleepMessages[3]
	default:
		return AvgSleepMessages[4]
	}
}

var AwakeningsMessages = []string{
	"No restless nights on record.",
	"Even your worst night was pretty peaceful.",
	"One rough night. We've all been there.",
	"Tossing and turning much?",
	"Was there a party next door?",
}

func Awakenings(night *models.WokenNight) string {
	switch {
	case night == nil:
		return AwakeningsMessages[0]
	case night.AwakeningCount <= 2:
		return AwakeningsMessages[1]
	case night.AwakeningCount <= 5:
		return AwakeningsMessages[2]
	case night.AwakeningCount <= 10:
		return AwakeningsMessages[3]
	default:
		return AwakeningsMessages[4]
	}
}

var BedtimeMessages = []string{
	"Your bedtime is a mystery.",
	"Early to bed, early to rise.",
	"Lights out before midnight. Respect.",
	"A certified night owl.",
	"Do you even sleep?",
}

// Bedtime takes the average bedtime as formatted by the aggregation service,
// e.g. "11:42 PM".
func Bedtime(bedtime string) string {
	t, err := time.Parse("03:04 PM", bedtime)
	if err != nil {
		return BedtimeMessages[0]
	}
	// minutes since noon, so that 1 AM sorts after 11 PM
	minutes := t.Hour()*60 + t.Minute() - 12*60
	if minutes < 0 {
		minutes += 24 * 60
	}
	switch {
	case minutes < 10*60:
		return BedtimeMessages[1]
	case minutes < 12*60:
		return BedtimeMessages[2]
	case minutes < 14*60:
		return BedtimeMessages[3]
	default:
		return BedtimeMessages[4]
	}
}

var RunsMessages = []string{
	"No runs this year. Walking is cool too.",
	"A few runs here and there.",
	"A regular on the pavement!",
	"Certified runner. Those shoes are worn out.",
	"Are you training for something? Because wow.",
}

func Runs(runs int) string {
	switch {
	case runs <= 0:
		return RunsMessages[0]
	case runs < 10:
		return RunsMessages[1]
	case runs < 50:
		return RunsMessages[2]
	case runs < 100:
		return RunsMessages[3]
	default:
		return RunsMessages[4]
	}
}

var PaceMessages = []string{
	"No pace to brag about, yet.",
	"Speed demon! Blink and we missed you.",
	"Quick on your feet.",
	"Steady and strong.",
	"It's about the journey, not the pace.",
}

// Pace takes the fastest pace in minutes per kilometre.
func Pace(minPerKm *float64) string {
	switch {
	case minPerKm == nil || *minPerKm <= 0:
		return PaceMessages[0]
	case *minPerKm < 4.5:
		return PaceMessages[1]
	case *minPerKm < 5.5:
		return PaceMessages[2]
	case *minPerKm < 6.5:
		return PaceMessages[3]
	default:
		return PaceMessages[4]
	}
}

var WorkoutsMessages = []string{
	"The couch missed you... wait, no it didn't.",
	"Getting those workouts in!",
	"Consistency king, right here.",
	"The gym should name a bench after you.",
	"Is working out your full-time job?",
}

func Workouts(count int) string {
	switch {
	case count <= 0:
		return WorkoutsMessages[0]
	case count < 50:
		return WorkoutsMessages[1]
	case count < 150:
		return WorkoutsMessages[2]
	case count < 250:
		return WorkoutsMessages[3]
	default:
		return WorkoutsMessages[4]
	}
}

var CaloriesMessages = []string{
	"A light burn. Snacks are still earned.",
	"That's a lot of pizza slices burned off.",
	"You torched a small bakery's worth.",
	"Human furnace. Absolutely on fire.",
}

func Calories(kcal float64) string {
	switch {
	case kcal < 10000:
		return CaloriesMessages[0]
	case kcal < 50000:
		return CaloriesMessages[1]
	case kcal < 100000:
		return CaloriesMessages[2]
	default:
		return CaloriesMessages[3]
	}
}

var RestingHeartRateMessages = []string{
	"No resting heart rate on record.",
	"Athlete's heart. Calm and collected.",
	"A nice, healthy rhythm.",
	"Right in the normal range.",
	"Maybe a few more chill days next year.",
}

func RestingHeartRate(bpm float64) string {
	switch {
	case bpm <= 0:
		return RestingHeartRateMessages[0]
	case bpm < 60:
		return RestingHeartRateMessages[1]
	case bpm < 70:
		return RestingHeartRateMessages[2]
	case bpm < 80:
		return RestingHeartRateMessages[3]
	default:
		return RestingHeartRateMessages[4]
	}
}
