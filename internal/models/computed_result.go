package models

import (
	"time"
)

// ComputedResult caches the Level-1 breakdown; rewritten on every TimeInput submission
type ComputedResult struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	RemainingYears float64   `gorm:"not null" json:"remaining_years"`
	SleepYears     float64   `gorm:"not null" json:"sleep_years"`
	WorkYears      float64   `gorm:"not null" json:"work_years"`
	CommuteYears   float64   `gorm:"not null" json:"commute_years"`
	RoutineYears   float64   `gorm:"not null" json:"routine_years"`
	FreeYears      float64   `gorm:"not null" json:"free_years"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (ComputedResult) TableName() string {
	return "computed_results"
}
