package seed

import (
	"context"
	"testing"

	"github.com/Adryeh/Portfolio-Creator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Portfolio{}, &models.Achievement{}))
	return db
}

func TestSeed(t *testing.T) {
	db := setupSeedTestDB(t)

	opts := Options{Users: 5, AchievementsPerUser: 2, PortfolioProbability: 1}
	require.NoError(t, Seed(context.Background(), db, opts))

	var userCount, portfolioCount, achievementCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Portfolio{}).Count(&portfolioCount)
	db.Model(&models.Achievement{}).Count(&achievementCount)

	assert.EqualValues(t, 5, userCount)
	assert.EqualValues(t, 5, portfolioCount)
	assert.EqualValues(t, 10, achievementCount)

	// Every seeded account can log in with the documented password.
	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	for _, user := range users {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(DefaultPassword)),
			"user %s should use the default password", user.Username)
		assert.LessOrEqual(t, len(user.Username), 20)
	}

	// Achievements only use accepted kinds.
	var achievements []models.Achievement
	require.NoError(t, db.Find(&achievements).Error)
	for _, a := range achievements {
		assert.True(t, models.IsValidAchievementKind(a.Type), "unexpected kind %q", a.Type)
	}
}

func TestSeed_NoPortfolios(t *testing.T) {
	db := setupSeedTestDB(t)

	opts := Options{Users: 3, AchievementsPerUser: 0, PortfolioProbability: 0}
	require.NoError(t, Seed(context.Background(), db, opts))

	var portfolioCount, achievementCount int64
	db.Model(&models.Portfolio{}).Count(&portfolioCount)
	db.Model(&models.Achievement{}).Count(&achievementCount)
	assert.Zero(t, portfolioCount)
	assert.Zero(t, achievementCount)
}
