package models

import (
	"time"
)

// UserProfile is the owner of every other row
type UserProfile struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Age            int       `gorm:"not null" json:"age"`
	LifeExpectancy int       `gorm:"not null" json:"life_expectancy"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// associations
	TimeInput      *TimeInput      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"time_input,omitempty"`
	ComputedResult *ComputedResult `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"computed_result,omitempty"`
	Activities     []Activity      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"activities,omitempty"`
}

// TableName overrides the table name
func (UserProfile) TableName() string {
	return "user_profiles"
}
