package dto

// Level1InputRequest replaces the user's Level-1 time input
type Level1InputRequest struct {
	SleepHoursPerDay       *float64 `json:"sleep_hours_per_day" binding:"required"`
	WorkHoursPerDay        *float64 `json:"work_hours_per_day" binding:"required"`
	WorkDaysPerWeek        *int     `json:"work_days_per_week" binding:"required,min=0"`
	CommuteHoursPerWorkday *float64 `json:"commute_hours_per_workday" binding:"required"`
	DailyRoutineHours      *float64 `json:"daily_routine_hours" binding:"required"`
}

// Level1Response is the Level-1 breakdown
type Level1Response struct {
	RemainingYears float64 `json:"remaining_years"`
	SleepYears     float64 `json:"sleep_years"`
	WorkYears      float64 `json:"work_years"`
	CommuteYears   float64 `json:"commute_years"`
	RoutineYears   float64 `json:"routine_years"`
	FreeYears      float64 `json:"free_years"`
}
