package lifecalc

import "math"

// WeeklyActivity is a recurring weekly time cost tracked by a user.
type WeeklyActivity struct {
	Label        string
	HoursPerWeek float64
	IsActive     bool
}

// AggregateYears sums the weekly hours of the active activities, converts them to years
// and clamps the result to [0, remainingYears].
func AggregateYears(activities []WeeklyActivity, remainingYears float64) float64 {
	var hoursPerWeek float64
	for _, a := range activities {
		if a.IsActive {
			hoursPerWeek += a.HoursPerWeek
		}
	}

	years := HoursPerWeekToYears(hoursPerWeek, remainingYears)
	if math.IsNaN(years) {
		// overflowing sum over a zero horizon
		years = 0
	}

	// lower bound first, so a negative horizon yields the horizon itself
	if years < 0 {
		years = 0
	}
	if years > remainingYears {
		years = remainingYears
	}
	return years
}
