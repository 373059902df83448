// Package lifecalc converts daily and weekly time allocations into years of remaining life.
package lifecalc

import "math"

// Calendar constants used by every conversion.
const (
	DaysPerYear  = 365
	WeeksPerYear = 52
	HoursPerDay  = 24
)

const hoursPerYear = HoursPerDay * DaysPerYear

// RemainingYears returns lifeExpectancy - age. The result is negative when age exceeds lifeExpectancy.
func RemainingYears(age, lifeExpectancy int) float64 {
	return float64(lifeExpectancy - age)
}

// HoursPerDayToYears converts a daily allocation into years over the remaining horizon.
func HoursPerDayToYears(hoursPerDay, remainingYears float64) float64 {
	return hoursPerDay * DaysPerYear * remainingYears / hoursPerYear
}

// HoursPerWeekToYears converts a weekly allocation into years over the remaining horizon.
func HoursPerWeekToYears(hoursPerWeek, remainingYears float64) float64 {
	return hoursPerWeek * WeeksPerYear * remainingYears / hoursPerYear
}

// IsFinite reports whether v is neither NaN nor infinite. Extreme inputs overflow the conversions.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
