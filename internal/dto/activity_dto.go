package dto

// CreateActivityRequest creates a maintenance or leakage activity.
// A source field in the body is ignored.
type CreateActivityRequest struct {
	Name         string   `json:"name" binding:"required,max=255,activityname"`
	HoursPerWeek *float64 `json:"hours_per_week"`
	IsActive     *bool    `json:"is_active"`
}

// PatchActivityRequest updates only the fields that are present
type PatchActivityRequest struct {
	Name         *string  `json:"name" binding:"omitempty,max=255,activityname"`
	HoursPerWeek *float64 `json:"hours_per_week"`
	IsActive     *bool    `json:"is_active"`
}

// MaintenanceActivityResponse is a category2 activity
type MaintenanceActivityResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	HoursPerWeek float64 `json:"hours_per_week"`
	Source       string  `json:"source"`
	IsActive     bool    `json:"is_active"`
}

// LeakageActivityResponse has no source
type LeakageActivityResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	HoursPerWeek float64 `json:"hours_per_week"`
	IsActive     bool    `json:"is_active"`
}

// PresetListResponse lists the suggested maintenance activities
type PresetListResponse struct {
	Presets []string `json:"presets"`
}
