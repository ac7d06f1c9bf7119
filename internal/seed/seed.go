// Package seed populates a development database with plausible fake data.
package seed

import (
	"context"
	"fmt"

	"github.com/Adryeh/Portfolio-Creator/internal/middleware"
	"github.com/Adryeh/Portfolio-Creator/internal/models"
	"github.com/Adryeh/Portfolio-Creator/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the login password for every seeded account.
const DefaultPassword = "password123"

// Options controls how much data Seed generates.
type Options struct {
	Users                int
	AchievementsPerUser  int
	PortfolioProbability float32
}

// DefaultOptions returns a reasonable amount of development data.
func DefaultOptions() Options {
	return Options{
		Users:                10,
		AchievementsPerUser:  3,
		PortfolioProbability: 0.8,
	}
}

// Seed creates fake users with portfolios and achievements. It is meant for
// empty development databases; seeded usernames are unique per run only by
// virtue of gofakeit's generator plus a numeric suffix.
func Seed(ctx context.Context, db *gorm.DB, opts Options) error {
	userRepo := repository.NewUserRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for i := 0; i < opts.Users; i++ {
		username := fmt.Sprintf("%s%d", gofakeit.Username(), i)
		if len(username) > 20 {
			username = username[:20]
		}
		user := &models.User{
			Username:  username,
			Email:     fmt.Sprintf("%d_%s", i, gofakeit.Email()),
			Password:  string(hashed),
			ImageFile: models.DefaultImageFile,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}

		if gofakeit.Float32Range(0, 1) < opts.PortfolioProbability {
			portfolio := &models.Portfolio{
				Title:           gofakeit.JobTitle(),
				Author:          user.Username,
				Content:         gofakeit.Paragraph(2, 3, 12, " "),
				About:           gofakeit.Paragraph(1, 2, 10, " "),
				Link:            gofakeit.URL(),
				Avg:             fmt.Sprintf("%.1f", gofakeit.Float32Range(2, 5)),
				School:          gofakeit.Company(),
				BackgroundColor: models.DefaultBackgroundColor,
				FontColor:       models.DefaultFontColor,
				UserID:          user.ID,
			}
			if err := portfolioRepo.Create(ctx, portfolio); err != nil {
				return fmt.Errorf("seed portfolio for user %d: %w", user.ID, err)
			}
		}

		for j := 0; j < opts.AchievementsPerUser; j++ {
			achievement := &models.Achievement{
				Title:  gofakeit.BuzzWord() + " " + gofakeit.HackerNoun(),
				Type:   gofakeit.RandomString(models.AchievementKinds),
				UserID: user.ID,
			}
			if err := achievementRepo.Create(ctx, achievement); err != nil {
				return fmt.Errorf("seed achievement for user %d: %w", user.ID, err)
			}
		}
	}

	middleware.Logger.InfoContext(ctx, "seeding complete", "users", opts.Users)
	return nil
}
