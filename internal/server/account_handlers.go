package server

import (
	"io"

	"github.com/Adryeh/Portfolio-Creator/internal/models"
	"github.com/Adryeh/Portfolio-Creator/internal/service"
	"github.com/Adryeh/Portfolio-Creator/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AccountResponse is the API view of the caller's account.
type AccountResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	ImageFile string `json:"image_file"`
	ImageURL  string `json:"image_url"`
}

// GetAccount handles GET /account, returning the current values so the form
// can be prefilled.
func (s *Server) GetAccount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(AccountResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		ImageFile: user.ImageFile,
		ImageURL:  imageURL(user.ImageFile),
	})
}

// UpdateAccount handles POST /account. The multipart form carries username,
// email and an optional replacement picture.
func (s *Server) UpdateAccount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Username string `json:"username" form:"username"`
		Email    string `json:"email" form:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var picture *service.IngestInput
	if file, err := c.FormFile("picture"); err == nil && file != nil {
		src, openErr := file.Open()
		if openErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Unable to read uploaded file"))
		}
		content, readErr := io.ReadAll(src)
		_ = src.Close()
		if readErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Unable to read uploaded file"))
		}

		picture = &service.IngestInput{
			Filename: file.Filename,
			Content:  content,
		}
	}

	_, err := s.accountService.UpdateAccount(c.UserContext(), userID, validation.AccountUpdateInput{
		Username: req.Username,
		Email:    req.Email,
	}, picture)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Redirect("/account", fiber.StatusSeeOther)
}
