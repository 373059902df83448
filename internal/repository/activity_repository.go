package repository

import (
	"context"

	"life-go/internal/models"

	"gorm.io/gorm"
)

// ActivityRepository is the data access layer for maintenance and leakage activities
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates an ActivityRepository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts an activity
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// Update saves every column of the activity
func (r *ActivityRepository) Update(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

// GetByIDAndUserID returns the activity only when it belongs to userID and kind
func (r *ActivityRepository) GetByIDAndUserID(ctx context.Context, id, userID uint, kind models.ActivityKind) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND kind = ?", id, userID, kind).
		First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListActiveByUserID returns the active activities of one kind in creation order
func (r *ActivityRepository) ListActiveByUserID(ctx context.Context, userID uint, kind models.ActivityKind) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND is_active = ?", userID, kind, true).
		Order("created_at ASC, id ASC").
		Find(&activities).Error
	return activities, err
}

// ListByUserID returns every activity of one kind, active or not, in creation order
func (r *ActivityRepository) ListByUserID(ctx context.Context, userID uint, kind models.ActivityKind) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at ASC, id ASC").
		Find(&activities).Error
	return activities, err
}

// ExistsByName checks the (user, kind, name) uniqueness, ignoring excludeID
func (r *ActivityRepository) ExistsByName(ctx context.Context, userID uint, kind models.ActivityKind, name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Activity{}).
		Where("user_id = ? AND kind = ? AND name = ?", userID, kind, name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
