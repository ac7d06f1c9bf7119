package server

import (
	"github.com/Adryeh/Portfolio-Creator/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListAchievements handles GET /account/achievements
func (s *Server) ListAchievements(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	achievements, err := s.achievementService.List(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"achievements": achievements,
		"types":        models.AchievementKinds,
	})
}

// AddAchievement handles POST /account/achievements
func (s *Server) AddAchievement(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title string `json:"title" form:"title"`
		Type  string `json:"type" form:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.achievementService.Add(c.UserContext(), userID, req.Title, req.Type); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Redirect("/account/achievements", fiber.StatusSeeOther)
}

// DeleteAchievement handles GET/POST /delete/:id. Only the owner may delete;
// a foreign record is refused and left in place.
func (s *Server) DeleteAchievement(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	achievementID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.achievementService.Delete(c.UserContext(), userID, achievementID); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Redirect("/account/achievements", fiber.StatusSeeOther)
}
