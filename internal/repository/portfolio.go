package repository

import (
	"context"
	"errors"

	"github.com/Adryeh/Portfolio-Creator/internal/models"

	"gorm.io/gorm"
)

// PortfolioRepository defines persistence operations for portfolios.
type PortfolioRepository interface {
	GetByOwner(ctx context.Context, ownerID uint) (*models.Portfolio, error)
	Create(ctx context.Context, portfolio *models.Portfolio) error
	Update(ctx context.Context, portfolio *models.Portfolio) error
	Delete(ctx context.Context, id uint) error
}

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository returns a new PortfolioRepository implementation.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

// GetByOwner returns the owner's portfolio, or (nil, nil) when none exists.
func (r *portfolioRepository) GetByOwner(ctx context.Context, ownerID uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).First(&portfolio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &portfolio, nil
}

func (r *portfolioRepository) Create(ctx context.Context, portfolio *models.Portfolio) error {
	if err := r.db.WithContext(ctx).Create(portfolio).Error; err != nil {
		// The unique index on user_id catches two creates racing past the
		// application-level existence check.
		if isUniqueConstraintError(err) {
			return models.NewAlreadyExistsError("Portfolio")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *portfolioRepository) Update(ctx context.Context, portfolio *models.Portfolio) error {
	if err := r.db.WithContext(ctx).Save(portfolio).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Portfolio{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
