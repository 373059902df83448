package service

import (
	"context"
	"errors"

	"life-go/internal/dto"
	apperrors "life-go/internal/errors"
	"life-go/internal/lifecalc"
	"life-go/internal/models"
	"life-go/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Level1Service computes and stores the Level-1 baseline
type Level1Service struct {
	profileRepo *repository.ProfileRepository
	level1Repo  *repository.Level1Repository
	logger      *logrus.Logger
}

// NewLevel1Service creates a Level1Service
func NewLevel1Service(profileRepo *repository.ProfileRepository, level1Repo *repository.Level1Repository, logger *logrus.Logger) *Level1Service {
	return &Level1Service{
		profileRepo: profileRepo,
		level1Repo:  level1Repo,
		logger:      logger,
	}
}

// Submit replaces the user's time input and recomputes the stored result
func (s *Level1Service) Submit(ctx context.Context, userID uint, req *dto.Level1InputRequest) (*dto.Level1Response, error) {
	profile, err := loadProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	in := lifecalc.Level1Input{
		SleepHoursPerDay:       *req.SleepHoursPerDay,
		WorkHoursPerDay:        *req.WorkHoursPerDay,
		WorkDaysPerWeek:        *req.WorkDaysPerWeek,
		CommuteHoursPerWorkday: *req.CommuteHoursPerWorkday,
		DailyRoutineHours:      *req.DailyRoutineHours,
	}
	res := lifecalc.CalculateLevel1(lifecalc.RemainingYears(profile.Age, profile.LifeExpectancy), in)
	if err := checkLevel1Finite(res); err != nil {
		return nil, err
	}

	input := &models.TimeInput{
		UserID:                 profile.ID,
		SleepHoursPerDay:       in.SleepHoursPerDay,
		WorkHoursPerDay:        in.WorkHoursPerDay,
		WorkDaysPerWeek:        in.WorkDaysPerWeek,
		CommuteHoursPerWorkday: in.CommuteHoursPerWorkday,
		DailyRoutineHours:      in.DailyRoutineHours,
	}
	result := &models.ComputedResult{
		UserID:         profile.ID,
		RemainingYears: res.RemainingYears,
		SleepYears:     res.SleepYears,
		WorkYears:      res.WorkYears,
		CommuteYears:   res.CommuteYears,
		RoutineYears:   res.RoutineYears,
		FreeYears:      res.FreeYears,
	}
	if err := s.level1Repo.Save(ctx, input, result); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	entry := s.logger.WithFields(logrus.Fields{
		"user_id":         profile.ID,
		"remaining_years": res.RemainingYears,
		"free_years":      res.FreeYears,
	})
	if res.RemainingYears < 0 {
		entry.Warn("level1 recomputed with negative remaining years")
	} else {
		entry.Info("level1 recomputed")
	}

	return toLevel1Response(result), nil
}

// Get returns the stored result, or a precondition error before the first submission
func (s *Level1Service) Get(ctx context.Context, userID uint) (*dto.Level1Response, error) {
	if _, err := loadProfile(ctx, s.profileRepo, userID); err != nil {
		return nil, err
	}

	result, err := loadLevel1Result(ctx, s.level1Repo, userID)
	if err != nil {
		return nil, err
	}
	return toLevel1Response(result), nil
}

func loadLevel1Result(ctx context.Context, repo *repository.Level1Repository, userID uint) (*models.ComputedResult, error) {
	result, err := repo.GetResultByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewLevel1Missing()
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return result, nil
}

func toLevel1Result(r *models.ComputedResult) lifecalc.Level1Result {
	return lifecalc.Level1Result{
		RemainingYears: r.RemainingYears,
		SleepYears:     r.SleepYears,
		WorkYears:      r.WorkYears,
		CommuteYears:   r.CommuteYears,
		RoutineYears:   r.RoutineYears,
		FreeYears:      r.FreeYears,
	}
}

func toLevel1Response(r *models.ComputedResult) *dto.Level1Response {
	resp := level1ResultResponse(toLevel1Result(r))
	return &resp
}

func level1ResultResponse(r lifecalc.Level1Result) dto.Level1Response {
	return dto.Level1Response{
		RemainingYears: r.RemainingYears,
		SleepYears:     r.SleepYears,
		WorkYears:      r.WorkYears,
		CommuteYears:   r.CommuteYears,
		RoutineYears:   r.RoutineYears,
		FreeYears:      r.FreeYears,
	}
}

// checkLevel1Finite rejects inputs large enough to overflow a derived value
func checkLevel1Finite(r lifecalc.Level1Result) error {
	checks := []struct {
		field string
		years float64
	}{
		{"sleep_hours_per_day", r.SleepYears},
		{"work_hours_per_day", r.WorkYears},
		{"commute_hours_per_workday", r.CommuteYears},
		{"daily_routine_hours", r.RoutineYears},
		{"non_field_errors", r.FreeYears},
	}
	for _, c := range checks {
		if !lifecalc.IsFinite(c.years) {
			return apperrors.NewFieldError(c.field, outOfRangeMessage)
		}
	}
	return nil
}
