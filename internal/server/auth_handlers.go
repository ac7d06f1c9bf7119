package server

import (
	"github.com/Adryeh/Portfolio-Creator/internal/middleware"
	"github.com/Adryeh/Portfolio-Creator/internal/models"
	"github.com/Adryeh/Portfolio-Creator/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// RegisterForm handles GET /register. Authenticated users are sent home.
func (s *Server) RegisterForm(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentUserID(c); ok {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{
		"fields": []string{"username", "email", "password", "confirm_password"},
	})
}

// Register handles POST /register
func (s *Server) Register(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentUserID(c); ok {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	var req struct {
		Username        string `json:"username" form:"username"`
		Email           string `json:"email" form:"email"`
		Password        string `json:"password" form:"password"`
		ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	_, err := s.accountService.Register(c.UserContext(), validation.RegistrationInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	// Account created; the user can now log in.
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// LoginForm handles GET /login. Authenticated users are sent home.
func (s *Server) LoginForm(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentUserID(c); ok {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{
		"fields": []string{"email", "password", "remember"},
		"next":   c.Query("next"),
	})
}

// Login handles POST /login. On success the session cookie is issued and the
// browser is sent back to the originally requested destination, if any.
func (s *Server) Login(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentUserID(c); ok {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	var req struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
		Remember string `json:"remember" form:"remember"`
		Next     string `json:"next" form:"next"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fieldErrs := validation.ValidateLogin(validation.LoginInput{Email: req.Email, Password: req.Password}); len(fieldErrs) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(fieldErrs))
	}

	user, err := s.accountService.Verify(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	if err := middleware.IssueSessionCookie(c, user.ID, user.Username, isChecked(req.Remember)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	// c.Query already returns the decoded value; decoding again would
	// corrupt targets that carry percent-encoded characters.
	next := req.Next
	if next == "" {
		next = c.Query("next")
	}
	return c.Redirect(safeNextTarget(next), fiber.StatusSeeOther)
}

// Logout handles GET /logout
func (s *Server) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
