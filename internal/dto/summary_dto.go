package dto

// BreakdownItem is one activity in a category breakdown
type BreakdownItem struct {
	Label string  `json:"label"`
	Years float64 `json:"years"`
}

// LifeSummaryResponse is the baseline plus the adjusted free years
type LifeSummaryResponse struct {
	Level1           Level1Response  `json:"level1"`
	MaintenanceYears float64         `json:"maintenance_years"`
	LeakageYears     float64         `json:"leakage_years"`
	Category2        []BreakdownItem `json:"category2"`
	Category3        []BreakdownItem `json:"category3"`
	Adjusted         Level1Response  `json:"adjusted"`
}
