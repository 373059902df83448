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

// MaintenancePresets are the suggested maintenance activities offered to new users
var MaintenancePresets = []string{
	"Exercising",
	"Learning / studying",
	"Health care",
	"Relationship care",
}

const outOfRangeMessage = "Ensure this value is small enough to convert into years."

// ActivityService manages maintenance (category2) and leakage (category3) activities
type ActivityService struct {
	profileRepo  *repository.ProfileRepository
	activityRepo *repository.ActivityRepository
	logger       *logrus.Logger
}

// NewActivityService creates an ActivityService
func NewActivityService(profileRepo *repository.ProfileRepository, activityRepo *repository.ActivityRepository, logger *logrus.Logger) *ActivityService {
	return &ActivityService{
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Presets returns a copy of the maintenance presets
func (s *ActivityService) Presets() []string {
	presets := make([]string, len(MaintenancePresets))
	copy(presets, MaintenancePresets)
	return presets
}

// List returns the user's activities of one kind in creation order.
// Inactive activities are skipped unless includeInactive is set.
func (s *ActivityService) List(ctx context.Context, userID uint, kind models.ActivityKind, includeInactive bool) ([]models.Activity, error) {
	if _, err := loadProfile(ctx, s.profileRepo, userID); err != nil {
		return nil, err
	}

	var activities []models.Activity
	var err error
	if includeInactive {
		activities, err = s.activityRepo.ListByUserID(ctx, userID, kind)
	} else {
		activities, err = s.activityRepo.ListActiveByUserID(ctx, userID, kind)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return activities, nil
}

// Create adds an activity. Hours default to 0, is_active to true and maintenance source to preset.
func (s *ActivityService) Create(ctx context.Context, userID uint, kind models.ActivityKind, req *dto.CreateActivityRequest) (*models.Activity, error) {
	profile, err := loadProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueName(ctx, userID, kind, req.Name, 0); err != nil {
		return nil, err
	}

	activity := &models.Activity{
		UserID:   userID,
		Kind:     kind,
		Name:     req.Name,
		IsActive: true,
	}
	if req.HoursPerWeek != nil {
		if err := checkHoursFinite(profile, *req.HoursPerWeek); err != nil {
			return nil, err
		}
		activity.HoursPerWeek = *req.HoursPerWeek
	}
	if req.IsActive != nil {
		activity.IsActive = *req.IsActive
	}
	if kind == models.KindMaintenance {
		activity.Source = models.SourcePreset
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicateName(req.Name)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":        userID,
		"activity_id":    activity.ID,
		"kind":           kind,
		"hours_per_week": activity.HoursPerWeek,
	}).Info("activity created")

	return activity, nil
}

// Patch applies the fields present in req. The source tag cannot be changed.
func (s *ActivityService) Patch(ctx context.Context, userID uint, kind models.ActivityKind, activityID uint, req *dto.PatchActivityRequest) (*models.Activity, error) {
	profile, err := loadProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.GetByIDAndUserID(ctx, activityID, userID, kind)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewActivityNotFound(activityID)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	if req.Name != nil && *req.Name != activity.Name {
		if err := s.ensureUniqueName(ctx, userID, kind, *req.Name, activity.ID); err != nil {
			return nil, err
		}
		activity.Name = *req.Name
	}
	if req.HoursPerWeek != nil {
		if err := checkHoursFinite(profile, *req.HoursPerWeek); err != nil {
			return nil, err
		}
		activity.HoursPerWeek = *req.HoursPerWeek
	}
	if req.IsActive != nil {
		activity.IsActive = *req.IsActive
	}

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicateName(activity.Name)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":        userID,
		"activity_id":    activity.ID,
		"kind":           kind,
		"hours_per_week": activity.HoursPerWeek,
		"is_active":      activity.IsActive,
	}).Info("activity patched")

	return activity, nil
}

func (s *ActivityService) ensureUniqueName(ctx context.Context, userID uint, kind models.ActivityKind, name string, excludeID uint) error {
	exists, err := s.activityRepo.ExistsByName(ctx, userID, kind, name, excludeID)
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if exists {
		return apperrors.NewDuplicateName(name)
	}
	return nil
}

// checkHoursFinite rejects weekly hours whose year-equivalent overflows for this profile
func checkHoursFinite(profile *models.UserProfile, hoursPerWeek float64) error {
	remaining := lifecalc.RemainingYears(profile.Age, profile.LifeExpectancy)
	if !lifecalc.IsFinite(lifecalc.HoursPerWeekToYears(hoursPerWeek, remaining)) {
		return apperrors.NewFieldError("hours_per_week", outOfRangeMessage)
	}
	return nil
}
