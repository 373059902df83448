package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ActivityKind selects the summary bucket an activity belongs to
type ActivityKind string

const (
	KindMaintenance ActivityKind = "maintenance" // category2
	KindLeakage     ActivityKind = "leakage"     // category3
)

// ActivitySource is only set for maintenance activities
type ActivitySource string

const (
	SourcePreset ActivitySource = "preset"
	SourceUser   ActivitySource = "user"
)

// Activity is a weekly time cost. Deactivated through IsActive, never hard-deleted by the API.
// IsActive and HoursPerWeek carry no gorm default so that false and 0 are written as given.
type Activity struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `gorm:"not null;uniqueIndex:idx_activity_owner_kind_name,priority:1" json:"user_id"`
	Kind         ActivityKind   `gorm:"size:20;not null;uniqueIndex:idx_activity_owner_kind_name,priority:2" json:"kind"`
	Name         string         `gorm:"size:255;not null;uniqueIndex:idx_activity_owner_kind_name,priority:3" json:"name"`
	HoursPerWeek float64        `gorm:"not null" json:"hours_per_week"`
	IsActive     bool           `gorm:"not null" json:"is_active"`
	Source       ActivitySource `gorm:"size:20" json:"source,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TableName overrides the table name
func (Activity) TableName() string {
	return "activities"
}

// BeforeSave defaults maintenance rows to the preset source and rejects
// source tags the kind does not allow.
func (a *Activity) BeforeSave(tx *gorm.DB) error {
	switch a.Kind {
	case KindMaintenance:
		switch a.Source {
		case "":
			a.Source = SourcePreset
		case SourcePreset, SourceUser:
		default:
			return fmt.Errorf("activity %q: unknown source %q", a.Name, a.Source)
		}
	case KindLeakage:
		if a.Source != "" {
			return fmt.Errorf("activity %q: leakage activities carry no source", a.Name)
		}
	}
	return nil
}
