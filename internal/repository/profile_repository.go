package repository

import (
	"context"

	"life-go/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository is the data access layer for user profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a ProfileRepository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByID returns gorm.ErrRecordNotFound when the profile does not exist
func (r *ProfileRepository) GetByID(ctx context.Context, id uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns a page of profiles, newest first
func (r *ProfileRepository) List(ctx context.Context, offset, limit int) ([]models.UserProfile, int64, error) {
	var profiles []models.UserProfile
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.UserProfile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&profiles).Error
	return profiles, total, err
}

// Delete removes the profile and every row it owns in one transaction.
// Children are deleted explicitly so the cascade does not depend on driver foreign-key support.
func (r *ProfileRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.ComputedResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.TimeInput{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.UserProfile{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
