package models

import (
	"time"
)

// TimeInput is the Level-1 questionnaire, one per profile
type TimeInput struct {
	ID                     uint      `gorm:"primarykey" json:"id"`
	UserID                 uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	SleepHoursPerDay       float64   `gorm:"not null" json:"sleep_hours_per_day"`
	WorkHoursPerDay        float64   `gorm:"not null" json:"work_hours_per_day"`
	WorkDaysPerWeek        int       `gorm:"not null" json:"work_days_per_week"`
	CommuteHoursPerWorkday float64   `gorm:"not null" json:"commute_hours_per_workday"`
	DailyRoutineHours      float64   `gorm:"not null" json:"daily_routine_hours"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func (TimeInput) TableName() string {
	return "time_inputs"
}
