// Package testutil provides shared test doubles and fixtures for backend tests.
package testutil

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"time"

	"github.com/Adryeh/Portfolio-Creator/internal/models"
)

// UserRepoStub is an in-memory user repository implementation for tests.
type UserRepoStub struct {
	Users  map[uint]*models.User
	nextID uint
}

// NewUserRepoStub creates an in-memory user repository stub for tests.
func NewUserRepoStub() *UserRepoStub {
	return &UserRepoStub{Users: make(map[uint]*models.User), nextID: 1}
}

func (s *UserRepoStub) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := s.Users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	return user, nil
}

func (s *UserRepoStub) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (s *UserRepoStub) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range s.Users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (s *UserRepoStub) Create(_ context.Context, user *models.User) error {
	if user.ID == 0 {
		user.ID = s.nextID
		s.nextID++
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.Users[user.ID] = user
	return nil
}

func (s *UserRepoStub) Update(_ context.Context, user *models.User) error {
	if _, ok := s.Users[user.ID]; !ok {
		return models.NewNotFoundError("User", user.ID)
	}
	user.UpdatedAt = time.Now().UTC()
	s.Users[user.ID] = user
	return nil
}

// PortfolioRepoStub is an in-memory portfolio repository implementation for tests.
type PortfolioRepoStub struct {
	Portfolios map[uint]*models.Portfolio
	nextID     uint
}

// NewPortfolioRepoStub creates an in-memory portfolio repository stub for tests.
func NewPortfolioRepoStub() *PortfolioRepoStub {
	return &PortfolioRepoStub{Portfolios: make(map[uint]*models.Portfolio), nextID: 1}
}

func (s *PortfolioRepoStub) GetByOwner(_ context.Context, ownerID uint) (*models.Portfolio, error) {
	for _, portfolio := range s.Portfolios {
		if portfolio.UserID == ownerID {
			return portfolio, nil
		}
	}
	return nil, nil
}

func (s *PortfolioRepoStub) Create(_ context.Context, portfolio *models.Portfolio) error {
	for _, existing := range s.Portfolios {
		if existing.UserID == portfolio.UserID {
			return models.NewAlreadyExistsError("Portfolio")
		}
	}
	if portfolio.ID == 0 {
		portfolio.ID = s.nextID
		s.nextID++
	}
	s.Portfolios[portfolio.ID] = portfolio
	return nil
}

func (s *PortfolioRepoStub) Update(_ context.Context, portfolio *models.Portfolio) error {
	if _, ok := s.Portfolios[portfolio.ID]; !ok {
		return models.NewNotFoundError("Portfolio", portfolio.ID)
	}
	s.Portfolios[portfolio.ID] = portfolio
	return nil
}

func (s *PortfolioRepoStub) Delete(_ context.Context, id uint) error {
	delete(s.Portfolios, id)
	return nil
}

// AchievementRepoStub is an in-memory achievement repository implementation for tests.
type AchievementRepoStub struct {
	Achievements map[uint]*models.Achievement
	nextID       uint
}

// NewAchievementRepoStub creates an in-memory achievement repository stub for tests.
func NewAchievementRepoStub() *AchievementRepoStub {
	return &AchievementRepoStub{Achievements: make(map[uint]*models.Achievement), nextID: 1}
}

func (s *AchievementRepoStub) GetByID(_ context.Context, id uint) (*models.Achievement, error) {
	achievement, ok := s.Achievements[id]
	if !ok {
		return nil, models.NewNotFoundError("Achievement", id)
	}
	return achievement, nil
}

func (s *AchievementRepoStub) ListByOwner(_ context.Context, ownerID uint) ([]models.Achievement, error) {
	var result []models.Achievement
	for _, achievement := range s.Achievements {
		if achievement.UserID == ownerID {
			result = append(result, *achievement)
		}
	}
	return result, nil
}

func (s *AchievementRepoStub) Create(_ context.Context, achievement *models.Achievement) error {
	if achievement.ID == 0 {
		achievement.ID = s.nextID
		s.nextID++
	}
	achievement.CreatedAt = time.Now().UTC()
	s.Achievements[achievement.ID] = achievement
	return nil
}

func (s *AchievementRepoStub) Delete(_ context.Context, id uint) error {
	delete(s.Achievements, id)
	return nil
}

// failer is the subset of testing.TB the fixture helpers need.
type failer interface {
	Helper()
	Fatalf(string, ...any)
}

// TinyPNG returns an in-memory PNG byte slice with the requested dimensions.
func TinyPNG(t failer, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// TinyJPEG returns an in-memory JPEG byte slice with the requested dimensions.
func TinyJPEG(t failer, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 80}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}
