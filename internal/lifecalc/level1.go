package lifecalc

// Level1Input holds the daily and weekly time allocations of one user.
type Level1Input struct {
	SleepHoursPerDay       float64
	WorkHoursPerDay        float64
	WorkDaysPerWeek        int
	CommuteHoursPerWorkday float64
	DailyRoutineHours      float64
}

// Level1Result is the baseline split of the remaining years.
type Level1Result struct {
	RemainingYears float64
	SleepYears     float64
	WorkYears      float64
	CommuteYears   float64
	RoutineYears   float64
	FreeYears      float64
}

// CalculateLevel1 splits remainingYears into sleep, work, commute, routine and free years.
// Individual categories are not capped; only FreeYears is floored at zero.
func CalculateLevel1(remainingYears float64, in Level1Input) Level1Result {
	workHoursPerWeek := in.WorkHoursPerDay * float64(in.WorkDaysPerWeek)
	commuteHoursPerWeek := in.CommuteHoursPerWorkday * float64(in.WorkDaysPerWeek)

	res := Level1Result{
		RemainingYears: remainingYears,
		SleepYears:     HoursPerDayToYears(in.SleepHoursPerDay, remainingYears),
		WorkYears:      HoursPerWeekToYears(workHoursPerWeek, remainingYears),
		CommuteYears:   HoursPerWeekToYears(commuteHoursPerWeek, remainingYears),
		RoutineYears:   HoursPerDayToYears(in.DailyRoutineHours, remainingYears),
	}

	used := res.SleepYears + res.WorkYears + res.CommuteYears + res.RoutineYears
	res.FreeYears = floorZero(remainingYears - used)
	return res
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
