package service

import (
	"context"
	"strings"

	"github.com/Adryeh/Portfolio-Creator/internal/models"
	"github.com/Adryeh/Portfolio-Creator/internal/repository"
	"github.com/Adryeh/Portfolio-Creator/internal/validation"
)

// PortfolioService manages the single portfolio each user may own.
type PortfolioService struct {
	portfolioRepo repository.PortfolioRepository
	userRepo      repository.UserRepository
}

// NewPortfolioService returns a new PortfolioService.
func NewPortfolioService(portfolioRepo repository.PortfolioRepository, userRepo repository.UserRepository) *PortfolioService {
	return &PortfolioService{portfolioRepo: portfolioRepo, userRepo: userRepo}
}

// PortfolioCreateInput carries the full portfolio form. Author is absent on
// purpose: it is always derived from the owner.
type PortfolioCreateInput struct {
	Title           string
	Content         string
	About           string
	Link            string
	Avg             string
	School          string
	BackgroundColor string
	FontColor       string
}

// PortfolioUpdateInput carries a partial edit. Nil fields keep their stored
// values; provided fields overwrite.
type PortfolioUpdateInput struct {
	Title           *string
	Content         *string
	About           *string
	Link            *string
	Avg             *string
	School          *string
	BackgroundColor *string
	FontColor       *string
}

// Create creates the owner's portfolio. It fails with ALREADY_EXISTS when one
// exists, and the author field is forced to the owner's username rather than
// any caller-supplied value.
func (s *PortfolioService) Create(ctx context.Context, ownerID uint, in PortfolioCreateInput) (*models.Portfolio, error) {
	if fieldErrs := validation.ValidatePortfolio(validation.PortfolioInput{Title: in.Title}); len(fieldErrs) > 0 {
		return nil, models.NewFieldValidationError(fieldErrs)
	}

	existing, err := s.portfolioRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewAlreadyExistsError("Portfolio")
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	portfolio := &models.Portfolio{
		Title:           strings.TrimSpace(in.Title),
		Author:          owner.Username,
		Content:         in.Content,
		About:           in.About,
		Link:            in.Link,
		Avg:             in.Avg,
		School:          in.School,
		BackgroundColor: in.BackgroundColor,
		FontColor:       in.FontColor,
		UserID:          ownerID,
	}
	if portfolio.BackgroundColor == "" {
		portfolio.BackgroundColor = models.DefaultBackgroundColor
	}
	if portfolio.FontColor == "" {
		portfolio.FontColor = models.DefaultFontColor
	}

	if err := s.portfolioRepo.Create(ctx, portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}

// Get returns the caller's portfolio, or NO_PORTFOLIO so the handler can send
// the user to the creation flow instead of a dead-end not-found.
func (s *PortfolioService) Get(ctx context.Context, ownerID uint) (*models.Portfolio, error) {
	portfolio, err := s.portfolioRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, models.NewNoPortfolioError()
	}
	return portfolio, nil
}

// Update edits the caller's portfolio. Omitted fields keep their stored
// values. The stored owner must equal the caller or the edit is FORBIDDEN.
func (s *PortfolioService) Update(ctx context.Context, callerID uint, in PortfolioUpdateInput) (*models.Portfolio, error) {
	portfolio, err := s.portfolioRepo.GetByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, models.NewNoPortfolioError()
	}
	if portfolio.UserID != callerID {
		return nil, models.NewForbiddenError("You can't edit this portfolio")
	}

	if in.Title != nil {
		if fieldErrs := validation.ValidatePortfolio(validation.PortfolioInput{Title: *in.Title}); len(fieldErrs) > 0 {
			return nil, models.NewFieldValidationError(fieldErrs)
		}
		portfolio.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		portfolio.Content = *in.Content
	}
	if in.About != nil {
		portfolio.About = *in.About
	}
	if in.Link != nil {
		portfolio.Link = *in.Link
	}
	if in.Avg != nil {
		portfolio.Avg = *in.Avg
	}
	if in.School != nil {
		portfolio.School = *in.School
	}
	if in.BackgroundColor != nil {
		portfolio.BackgroundColor = *in.BackgroundColor
	}
	if in.FontColor != nil {
		portfolio.FontColor = *in.FontColor
	}

	if err := s.portfolioRepo.Update(ctx, portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}

// Delete permanently removes the caller's portfolio.
func (s *PortfolioService) Delete(ctx context.Context, callerID uint) error {
	portfolio, err := s.portfolioRepo.GetByOwner(ctx, callerID)
	if err != nil {
		return err
	}
	if portfolio == nil {
		return models.NewNoPortfolioError()
	}
	if portfolio.UserID != callerID {
		return models.NewForbiddenError("You can't delete this portfolio")
	}

	return s.portfolioRepo.Delete(ctx, portfolio.ID)
}
