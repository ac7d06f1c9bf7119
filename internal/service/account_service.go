// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"github.com/Adryeh/Portfolio-Creator/internal/middleware"
	"github.com/Adryeh/Portfolio-Creator/internal/models"
	"github.com/Adryeh/Portfolio-Creator/internal/repository"
	"github.com/Adryeh/Portfolio-Creator/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the email is unknown so a login attempt
// costs the same with or without a matching account.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AccountService handles registration, credential verification and account
// updates.
type AccountService struct {
	userRepo repository.UserRepository
	images   *ImageService
}

// NewAccountService returns a new AccountService.
func NewAccountService(userRepo repository.UserRepository, images *ImageService) *AccountService {
	return &AccountService{userRepo: userRepo, images: images}
}

// Register validates the form, checks username and email uniqueness
// independently so both collisions can be reported together, hashes the
// password and creates the account. The plaintext password is never stored or
// logged.
func (s *AccountService) Register(ctx context.Context, in validation.RegistrationInput) (*models.User, error) {
	fieldErrs := validation.ValidateRegistration(in)

	var dupUsername, dupEmail bool
	if in.Username != "" {
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			dupUsername = true
			fieldErrs = append(fieldErrs, models.FieldError{Field: "username", Reason: "already taken"})
		}
	}
	if in.Email != "" {
		existing, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			dupEmail = true
			fieldErrs = append(fieldErrs, models.FieldError{Field: "email", Reason: "already taken"})
		}
	}

	if len(fieldErrs) > 0 {
		// A lone duplicate keeps its specific code; anything else is reported
		// as a collected validation failure that still names every field.
		if len(fieldErrs) == 1 {
			if dupUsername {
				return nil, models.NewDuplicateUsernameError()
			}
			if dupEmail {
				return nil, models.NewDuplicateEmailError()
			}
		}
		return nil, models.NewFieldValidationError(fieldErrs)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hashed),
		ImageFile: models.DefaultImageFile,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "account created", "username", user.Username)
	return user, nil
}

// Verify checks the credentials and returns the matching user. An unknown
// email and a wrong password produce the identical error, and the bcrypt
// comparison runs in both cases.
func (s *AccountService) Verify(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		middleware.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, models.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		middleware.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, models.NewInvalidCredentialsError()
	}

	middleware.LoginAttempts.WithLabelValues("success").Inc()
	return user, nil
}

// UpdateAccount applies a username/email/picture change. Uniqueness is only
// re-checked for values that actually differ from the stored ones, so a user
// can resubmit their current username or email without a false duplicate.
// The picture is ingested only after every check passes, so a rejected form
// leaves no derivative on disk.
func (s *AccountService) UpdateAccount(ctx context.Context, userID uint, in validation.AccountUpdateInput, picture *IngestInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fieldErrs := validation.ValidateAccountUpdate(in)

	var dupUsername, dupEmail bool
	if in.Username != "" && in.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			dupUsername = true
			fieldErrs = append(fieldErrs, models.FieldError{Field: "username", Reason: "already taken"})
		}
	}
	if in.Email != "" && in.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			dupEmail = true
			fieldErrs = append(fieldErrs, models.FieldError{Field: "email", Reason: "already taken"})
		}
	}

	if len(fieldErrs) > 0 {
		if len(fieldErrs) == 1 {
			if dupUsername {
				return nil, models.NewDuplicateUsernameError()
			}
			if dupEmail {
				return nil, models.NewDuplicateEmailError()
			}
		}
		return nil, models.NewFieldValidationError(fieldErrs)
	}

	if picture != nil {
		imageRef, err := s.images.Ingest(ctx, *picture)
		if err != nil {
			return nil, err
		}
		user.ImageFile = imageRef
	}

	user.Username = in.Username
	user.Email = in.Email

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
