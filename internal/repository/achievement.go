package repository

import (
	"context"
	"errors"

	"github.com/Adryeh/Portfolio-Creator/internal/models"

	"gorm.io/gorm"
)

// AchievementRepository defines persistence operations for achievements.
type AchievementRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Achievement, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Achievement, error)
	Create(ctx context.Context, achievement *models.Achievement) error
	Delete(ctx context.Context, id uint) error
}

type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository returns a new AchievementRepository implementation.
func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) GetByID(ctx context.Context, id uint) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := r.db.WithContext(ctx).First(&achievement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Achievement", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &achievement, nil
}

func (r *achievementRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&achievements).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return achievements, nil
}

func (r *achievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	if err := r.db.WithContext(ctx).Create(achievement).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *achievementRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Achievement{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
