package service

import (
	"context"
	"strings"

	"github.com/Adryeh/Portfolio-Creator/internal/models"
	"github.com/Adryeh/Portfolio-Creator/internal/repository"
	"github.com/Adryeh/Portfolio-Creator/internal/validation"
)

// AchievementService manages per-user achievement lists.
type AchievementService struct {
	achievementRepo repository.AchievementRepository
}

// NewAchievementService returns a new AchievementService.
func NewAchievementService(achievementRepo repository.AchievementRepository) *AchievementService {
	return &AchievementService{achievementRepo: achievementRepo}
}

// Add creates an achievement for the owner. The kind must be one of the
// accepted values.
func (s *AchievementService) Add(ctx context.Context, ownerID uint, title, kind string) (*models.Achievement, error) {
	if fieldErrs := validation.ValidateAchievement(validation.AchievementInput{Title: title, Type: kind}); len(fieldErrs) > 0 {
		return nil, models.NewFieldValidationError(fieldErrs)
	}

	achievement := &models.Achievement{
		Title:  strings.TrimSpace(title),
		Type:   kind,
		UserID: ownerID,
	}
	if err := s.achievementRepo.Create(ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

// List returns every achievement owned by ownerID.
func (s *AchievementService) List(ctx context.Context, ownerID uint) ([]models.Achievement, error) {
	return s.achievementRepo.ListByOwner(ctx, ownerID)
}

// Delete removes one achievement. A missing record is NOT_FOUND; a record
// owned by someone else is FORBIDDEN and is left untouched.
func (s *AchievementService) Delete(ctx context.Context, callerID, achievementID uint) error {
	achievement, err := s.achievementRepo.GetByID(ctx, achievementID)
	if err != nil {
		return err
	}
	if achievement.UserID != callerID {
		return models.NewForbiddenError("You can't delete this one")
	}

	return s.achievementRepo.Delete(ctx, achievement.ID)
}
