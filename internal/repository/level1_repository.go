package repository

import (
	"context"
	"errors"

	"life-go/internal/models"

	"gorm.io/gorm"
)

// Level1Repository stores the Level-1 input and its computed result
type Level1Repository struct {
	db *gorm.DB
}

// NewLevel1Repository creates a Level1Repository
func NewLevel1Repository(db *gorm.DB) *Level1Repository {
	return &Level1Repository{db: db}
}

// Save replaces the user's input and result atomically. Both rows are keyed by UserID.
func (r *Level1Repository) Save(ctx context.Context, input *models.TimeInput, result *models.ComputedResult) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existingInput models.TimeInput
		err := tx.Where("user_id = ?", input.UserID).Take(&existingInput).Error
		switch {
		case err == nil:
			input.ID = existingInput.ID
			input.CreatedAt = existingInput.CreatedAt
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		if err := tx.Save(input).Error; err != nil {
			return err
		}

		var existingResult models.ComputedResult
		err = tx.Where("user_id = ?", result.UserID).Take(&existingResult).Error
		switch {
		case err == nil:
			result.ID = existingResult.ID
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Save(result).Error
	})
}

// GetResultByUserID returns gorm.ErrRecordNotFound until Level-1 has been submitted
func (r *Level1Repository) GetResultByUserID(ctx context.Context, userID uint) (*models.ComputedResult, error) {
	var result models.ComputedResult
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetInputByUserID returns the last submitted Level-1 input
func (r *Level1Repository) GetInputByUserID(ctx context.Context, userID uint) (*models.TimeInput, error) {
	var input models.TimeInput
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&input).Error
	if err != nil {
		return nil, err
	}
	return &input, nil
}
