package server

import (
	"testing"

	"github.com/Adryeh/Portfolio-Creator/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSafeNextTarget(t *testing.T) {
	tests := []struct {
		name     string
		next     string
		expected string
	}{
		{"empty", "", "/"},
		{"relative path", "/portfolio", "/portfolio"},
		{"path with query", "/portfolio?tab=2", "/portfolio?tab=2"},
		{"absolute url refused", "https://evil.example.com/", "/"},
		{"protocol-relative refused", "//evil.example.com", "/"},
		{"backslash variant refused", "/\\evil.example.com", "/"},
		{"no leading slash refused", "portfolio", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, safeNextTarget(tt.next))
		})
	}
}

func TestIsChecked(t *testing.T) {
	for _, v := range []string{"on", "true", "1", "y", "yes", "ON", "True"} {
		assert.True(t, isChecked(v), "%q should count as checked", v)
	}
	for _, v := range []string{"", "off", "false", "0", "no"} {
		assert.False(t, isChecked(v), "%q should not count as checked", v)
	}
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", models.NewValidationError("bad"), fiber.StatusBadRequest},
		{"duplicate username", models.NewDuplicateUsernameError(), fiber.StatusConflict},
		{"duplicate email", models.NewDuplicateEmailError(), fiber.StatusConflict},
		{"already exists", models.NewAlreadyExistsError("Portfolio"), fiber.StatusConflict},
		{"invalid credentials", models.NewInvalidCredentialsError(), fiber.StatusUnauthorized},
		{"unauthenticated", models.NewUnauthenticatedError("who are you"), fiber.StatusUnauthorized},
		{"forbidden", models.NewForbiddenError("no"), fiber.StatusForbidden},
		{"not found", models.NewNotFoundError("Achievement", 1), fiber.StatusNotFound},
		{"no portfolio", models.NewNoPortfolioError(), fiber.StatusNotFound},
		{"internal", models.NewInternalError(assert.AnError), fiber.StatusInternalServerError},
		{"foreign error", assert.AnError, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusForError(tt.err))
		})
	}
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "/static/profile_pics/default.jpg", imageURL("default.jpg"))
}
