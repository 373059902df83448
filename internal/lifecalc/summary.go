package lifecalc

// BreakdownItem is the year-equivalent of a single activity.
type BreakdownItem struct {
	Label string
	Years float64
}

// Summary combines the Level-1 baseline with the maintenance and leakage categories.
type Summary struct {
	Level1               Level1Result
	MaintenanceYears     float64
	LeakageYears         float64
	MaintenanceBreakdown []BreakdownItem
	LeakageBreakdown     []BreakdownItem
	Adjusted             Level1Result
}

// ComposeSummary reduces the baseline free years by the clamped maintenance and leakage totals.
// Breakdown items are computed per activity against the same horizon and are not clamped.
func ComposeSummary(baseline Level1Result, maintenance, leakage []WeeklyActivity) Summary {
	remaining := baseline.RemainingYears

	s := Summary{
		Level1:               baseline,
		MaintenanceYears:     AggregateYears(maintenance, remaining),
		LeakageYears:         AggregateYears(leakage, remaining),
		MaintenanceBreakdown: Breakdown(maintenance, remaining),
		LeakageBreakdown:     Breakdown(leakage, remaining),
	}

	s.Adjusted = baseline
	s.Adjusted.FreeYears = floorZero(baseline.FreeYears - s.MaintenanceYears - s.LeakageYears)
	return s
}

// Breakdown lists the active activities with positive hours and positive year-equivalents,
// in input order.
func Breakdown(activities []WeeklyActivity, remainingYears float64) []BreakdownItem {
	items := make([]BreakdownItem, 0, len(activities))
	for _, a := range activities {
		if !a.IsActive || a.HoursPerWeek <= 0 {
			continue
		}
		years := HoursPerWeekToYears(a.HoursPerWeek, remainingYears)
		if years <= 0 {
			continue
		}
		items = append(items, BreakdownItem{Label: a.Label, Years: years})
	}
	return items
}
