package service

import (
	"context"
	"errors"

	"life-go/internal/config"
	"life-go/internal/dto"
	apperrors "life-go/internal/errors"
	"life-go/internal/models"
	"life-go/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProfileService manages user profiles
type ProfileService struct {
	profileRepo *repository.ProfileRepository
	cfg         *config.Config
	logger      *logrus.Logger
}

// NewProfileService creates a ProfileService
func NewProfileService(profileRepo *repository.ProfileRepository, cfg *config.Config, logger *logrus.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// Create stores a new profile. A missing life expectancy takes the configured default.
func (s *ProfileService) Create(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	lifeExpectancy := s.cfg.Life.DefaultLifeExpectancy
	if req.LifeExpectancy != nil {
		lifeExpectancy = *req.LifeExpectancy
	}

	profile := &models.UserProfile{
		Age:            *req.Age,
		LifeExpectancy: lifeExpectancy,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":         profile.ID,
		"age":             profile.Age,
		"life_expectancy": profile.LifeExpectancy,
	}).Info("profile created")

	return toProfileResponse(profile), nil
}

// Get returns one profile
func (s *ProfileService) Get(ctx context.Context, userID uint) (*dto.ProfileResponse, error) {
	profile, err := loadProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// List returns a page of profiles for the admin API
func (s *ProfileService) List(ctx context.Context, page, perPage int) (*dto.PaginatedResponse, error) {
	offset := (page - 1) * perPage
	profiles, total, err := s.profileRepo.List(ctx, offset, perPage)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	items := make([]dto.AdminProfileResponse, len(profiles))
	for i, p := range profiles {
		items[i] = dto.AdminProfileResponse{
			ID:             p.ID,
			Age:            p.Age,
			LifeExpectancy: p.LifeExpectancy,
			CreatedAt:      p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return &dto.PaginatedResponse{
		Data:    items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// Delete removes a profile together with its input, result and activities
func (s *ProfileService) Delete(ctx context.Context, userID uint) error {
	err := s.profileRepo.Delete(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewUserNotFound(userID)
	}
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}

	s.logger.WithField("user_id", userID).Info("profile deleted")
	return nil
}

// loadProfile maps a missing row to a NotFound error
func loadProfile(ctx context.Context, repo *repository.ProfileRepository, userID uint) (*models.UserProfile, error) {
	profile, err := repo.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewUserNotFound(userID)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return profile, nil
}

func toProfileResponse(p *models.UserProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:             p.ID,
		Age:            p.Age,
		LifeExpectancy: p.LifeExpectancy,
	}
}
