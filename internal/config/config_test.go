package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDevConfig() *Config {
	return &Config{
		Port:            "5000",
		SessionSecret:   "change-me-in-production",
		SessionTTLHours: 24,
		RememberTTLDays: 30,
		DBDriver:        "postgres",
		DBPassword:      "password",
		Env:             "development",
	}
}

func TestValidate_DevelopmentDefaultsPass(t *testing.T) {
	assert.NoError(t, validDevConfig().Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := validDevConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())

	cfg = validDevConfig()
	cfg.SessionSecret = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_DBDriver(t *testing.T) {
	cfg := validDevConfig()
	cfg.DBDriver = "sqlite"
	assert.NoError(t, cfg.Validate())

	cfg.DBDriver = "mysql"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestValidate_ProductionRejectsDefaultSecret(t *testing.T) {
	cfg := validDevConfig()
	cfg.Env = "production"
	cfg.DBPassword = "s3cure-and-unique"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestValidate_ProductionRejectsShortSecret(t *testing.T) {
	cfg := validDevConfig()
	cfg.Env = "production"
	cfg.SessionSecret = "short"
	cfg.DBPassword = "s3cure-and-unique"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 characters")
}

func TestValidate_ProductionRejectsWeakDBPassword(t *testing.T) {
	cfg := validDevConfig()
	cfg.Env = "production"
	cfg.SessionSecret = strings.Repeat("s", 40)
	cfg.DBPassword = "password"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestValidate_ProductionWithStrongValuesPasses(t *testing.T) {
	cfg := validDevConfig()
	cfg.Env = "production"
	cfg.SessionSecret = strings.Repeat("s", 40)
	cfg.DBPassword = "s3cure-and-unique"
	cfg.DBSSLMode = "require"

	assert.NoError(t, cfg.Validate())
}

func TestValidate_SQLiteProductionNeedsNoDBPassword(t *testing.T) {
	cfg := validDevConfig()
	cfg.Env = "production"
	cfg.SessionSecret = strings.Repeat("s", 40)
	cfg.DBDriver = "sqlite"
	cfg.DBPassword = ""

	assert.NoError(t, cfg.Validate())
}
