package server

import (
	"errors"
	"strings"

	"github.com/Adryeh/Portfolio-Creator/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// statusForError maps application error codes to HTTP status codes.
func statusForError(err error) int {
	switch models.CodeOf(err) {
	case models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeDuplicateUsername, models.CodeDuplicateEmail, models.CodeAlreadyExists:
		return fiber.StatusConflict
	case models.CodeInvalidCredentials, models.CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case models.CodeForbidden:
		return fiber.StatusForbidden
	case models.CodeNotFound, models.CodeNoPortfolio:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten;
// callers should then return nil.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// safeNextTarget returns the post-login redirect target. Only same-site
// relative paths are honored so the next parameter cannot be abused as an
// open redirect.
func safeNextTarget(next string) string {
	if next == "" {
		return "/"
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

// isChecked interprets a checkbox-style form value.
func isChecked(value string) bool {
	switch strings.ToLower(value) {
	case "on", "true", "1", "y", "yes":
		return true
	default:
		return false
	}
}

// imageURL builds the public URL for a stored profile picture filename.
func imageURL(filename string) string {
	return "/static/profile_pics/" + filename
}
