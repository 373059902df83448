package service

import (
	"context"
	"fmt"
	"strconv"

	"life-go/internal/dto"
	apperrors "life-go/internal/errors"
	"life-go/internal/lifecalc"
	"life-go/internal/models"
	"life-go/internal/repository"
	"life-go/internal/utils"
)

// SummaryService composes the life summary from the stored baseline and the active activities
type SummaryService struct {
	profileRepo  *repository.ProfileRepository
	level1Repo   *repository.Level1Repository
	activityRepo *repository.ActivityRepository
}

// NewSummaryService creates a SummaryService
func NewSummaryService(
	profileRepo *repository.ProfileRepository,
	level1Repo *repository.Level1Repository,
	activityRepo *repository.ActivityRepository,
) *SummaryService {
	return &SummaryService{
		profileRepo:  profileRepo,
		level1Repo:   level1Repo,
		activityRepo: activityRepo,
	}
}

// Get returns the summary, or a precondition error when Level-1 was never submitted
func (s *SummaryService) Get(ctx context.Context, userID uint) (*dto.LifeSummaryResponse, error) {
	if _, err := loadProfile(ctx, s.profileRepo, userID); err != nil {
		return nil, err
	}

	result, err := loadLevel1Result(ctx, s.level1Repo, userID)
	if err != nil {
		return nil, err
	}

	maintenance, err := s.activeWeekly(ctx, userID, models.KindMaintenance)
	if err != nil {
		return nil, err
	}
	leakage, err := s.activeWeekly(ctx, userID, models.KindLeakage)
	if err != nil {
		return nil, err
	}

	summary := lifecalc.ComposeSummary(toLevel1Result(result), maintenance, leakage)

	return &dto.LifeSummaryResponse{
		Level1:           level1ResultResponse(summary.Level1),
		MaintenanceYears: summary.MaintenanceYears,
		LeakageYears:     summary.LeakageYears,
		Category2:        toBreakdown(summary.MaintenanceBreakdown),
		Category3:        toBreakdown(summary.LeakageBreakdown),
		Adjusted:         level1ResultResponse(summary.Adjusted),
	}, nil
}

func (s *SummaryService) activeWeekly(ctx context.Context, userID uint, kind models.ActivityKind) ([]lifecalc.WeeklyActivity, error) {
	activities, err := s.activityRepo.ListActiveByUserID(ctx, userID, kind)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	weekly := make([]lifecalc.WeeklyActivity, len(activities))
	for i, a := range activities {
		weekly[i] = lifecalc.WeeklyActivity{
			Label:        a.Name,
			HoursPerWeek: a.HoursPerWeek,
			IsActive:     a.IsActive,
		}
	}
	return weekly, nil
}

func toBreakdown(items []lifecalc.BreakdownItem) []dto.BreakdownItem {
	out := make([]dto.BreakdownItem, len(items))
	for i, item := range items {
		out[i] = dto.BreakdownItem{Label: item.Label, Years: item.Years}
	}
	return out
}

// ExportCSV renders the submitted input and the summary as section,label,value rows.
// It also returns the file name to use.
func (s *SummaryService) ExportCSV(ctx context.Context, userID uint) ([]byte, string, error) {
	summary, err := s.Get(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	input, err := s.level1Repo.GetInputByUserID(ctx, userID)
	if err != nil {
		return nil, "", apperrors.NewDatabaseError(err)
	}

	var rows [][]string
	rows = append(rows, inputRows(input)...)
	rows = append(rows, level1Rows("level1", summary.Level1)...)
	for _, item := range summary.Category2 {
		rows = append(rows, yearsRow("category2", item.Label, item.Years))
	}
	rows = append(rows, yearsRow("category2", "total", summary.MaintenanceYears))
	for _, item := range summary.Category3 {
		rows = append(rows, yearsRow("category3", item.Label, item.Years))
	}
	rows = append(rows, yearsRow("category3", "total", summary.LeakageYears))
	rows = append(rows, level1Rows("adjusted", summary.Adjusted)...)

	data, err := utils.EncodeCSV([]string{"section", "label", "value"}, rows)
	if err != nil {
		return nil, "", apperrors.NewInternalError(err)
	}
	return data, fmt.Sprintf("life_summary_%d.csv", userID), nil
}

func inputRows(in *models.TimeInput) [][]string {
	return [][]string{
		hoursRow("sleep_hours_per_day", in.SleepHoursPerDay),
		hoursRow("work_hours_per_day", in.WorkHoursPerDay),
		hoursRow("work_days_per_week", float64(in.WorkDaysPerWeek)),
		hoursRow("commute_hours_per_workday", in.CommuteHoursPerWorkday),
		hoursRow("daily_routine_hours", in.DailyRoutineHours),
	}
}

func hoursRow(label string, value float64) []string {
	return []string{"input", label, strconv.FormatFloat(value, 'f', -1, 64)}
}

func level1Rows(section string, r dto.Level1Response) [][]string {
	return [][]string{
		yearsRow(section, "remaining_years", r.RemainingYears),
		yearsRow(section, "sleep_years", r.SleepYears),
		yearsRow(section, "work_years", r.WorkYears),
		yearsRow(section, "commute_years", r.CommuteYears),
		yearsRow(section, "routine_years", r.RoutineYears),
		yearsRow(section, "free_years", r.FreeYears),
	}
}

func yearsRow(section, label string, years float64) []string {
	return []string{section, label, strconv.FormatFloat(years, 'f', -1, 64)}
}
