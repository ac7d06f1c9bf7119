package server

import (
	"github.com/Adryeh/Portfolio-Creator/internal/models"
	"github.com/Adryeh/Portfolio-Creator/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePortfolioForm handles GET /create_portfolio
func (s *Server) CreatePortfolioForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"fields": []string{
			"title", "content", "about", "link", "avg",
			"school", "background_color", "font_color",
		},
	})
}

// CreatePortfolio handles POST /create_portfolio. Each user gets at most one
// portfolio; a second attempt is refused.
func (s *Server) CreatePortfolio(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title           string `json:"title" form:"title"`
		Content         string `json:"content" form:"content"`
		About           string `json:"about" form:"about"`
		Link            string `json:"link" form:"link"`
		Avg             string `json:"avg" form:"avg"`
		School          string `json:"school" form:"school"`
		BackgroundColor string `json:"background_color" form:"background_color"`
		FontColor       string `json:"font_color" form:"font_color"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	_, err := s.portfolioService.Create(c.UserContext(), userID, service.PortfolioCreateInput{
		Title:           req.Title,
		Content:         req.Content,
		About:           req.About,
		Link:            req.Link,
		Avg:             req.Avg,
		School:          req.School,
		BackgroundColor: req.BackgroundColor,
		FontColor:       req.FontColor,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Redirect("/portfolio", fiber.StatusSeeOther)
}

// GetPortfolio handles GET /portfolio. A user without a portfolio is sent to
// the creation flow rather than shown a not-found.
func (s *Server) GetPortfolio(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	portfolio, err := s.portfolioService.Get(c.UserContext(), userID)
	if err != nil {
		if models.CodeOf(err) == models.CodeNoPortfolio {
			return c.Redirect("/create_portfolio", fiber.StatusSeeOther)
		}
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(portfolio)
}

// EditPortfolioForm handles GET /portfolio/update, returning current values
// for form prefill.
func (s *Server) EditPortfolioForm(c *fiber.Ctx) error {
	return s.GetPortfolio(c)
}

// UpdatePortfolio handles POST /portfolio/update. Omitted fields keep their
// stored values.
func (s *Server) UpdatePortfolio(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title           *string `json:"title" form:"title"`
		Content         *string `json:"content" form:"content"`
		About           *string `json:"about" form:"about"`
		Link            *string `json:"link" form:"link"`
		Avg             *string `json:"avg" form:"avg"`
		School          *string `json:"school" form:"school"`
		BackgroundColor *string `json:"background_color" form:"background_color"`
		FontColor       *string `json:"font_color" form:"font_color"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	_, err := s.portfolioService.Update(c.UserContext(), userID, service.PortfolioUpdateInput{
		Title:           req.Title,
		Content:         req.Content,
		About:           req.About,
		Link:            req.Link,
		Avg:             req.Avg,
		School:          req.School,
		BackgroundColor: req.BackgroundColor,
		FontColor:       req.FontColor,
	})
	if err != nil {
		if models.CodeOf(err) == models.CodeNoPortfolio {
			return c.Redirect("/create_portfolio", fiber.StatusSeeOther)
		}
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Redirect("/portfolio", fiber.StatusSeeOther)
}

// DeletePortfolio handles POST /port/delete
func (s *Server) DeletePortfolio(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.portfolioService.Delete(c.UserContext(), userID); err != nil {
		if models.CodeOf(err) == models.CodeNoPortfolio {
			return c.Redirect("/create_portfolio", fiber.StatusSeeOther)
		}
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}
