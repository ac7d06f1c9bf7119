// Package validation provides input validation utilities
package validation

import (
	"regexp"
	"strings"

	"github.com/Adryeh/Portfolio-Creator/internal/models"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

const (
	minUsernameLen = 2
	maxUsernameLen = 20
	maxEmailLen    = 120
)

// RegistrationInput carries the raw registration form fields.
type RegistrationInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput carries the raw login form fields.
type LoginInput struct {
	Email    string
	Password string
}

// AccountUpdateInput carries the raw account form fields.
type AccountUpdateInput struct {
	Username string
	Email    string
}

// PortfolioInput carries the raw portfolio creation form fields.
type PortfolioInput struct {
	Title string
}

// AchievementInput carries the raw achievement form fields.
type AchievementInput struct {
	Title string
	Type  string
}

// checkUsername appends username format errors to errs.
func checkUsername(username string, errs []models.FieldError) []models.FieldError {
	switch {
	case username == "":
		errs = append(errs, models.FieldError{Field: "username", Reason: "is required"})
	case len(username) < minUsernameLen || len(username) > maxUsernameLen:
		errs = append(errs, models.FieldError{Field: "username", Reason: "must be between 2 and 20 characters"})
	case !usernameRegex.MatchString(username):
		errs = append(errs, models.FieldError{Field: "username", Reason: "can only contain letters, numbers, underscores, and hyphens"})
	}
	return errs
}

// checkEmail appends email format errors to errs.
func checkEmail(email string, errs []models.FieldError) []models.FieldError {
	switch {
	case email == "":
		errs = append(errs, models.FieldError{Field: "email", Reason: "is required"})
	case len(email) > maxEmailLen || !emailRegex.MatchString(email):
		errs = append(errs, models.FieldError{Field: "email", Reason: "is not a valid email address"})
	}
	return errs
}

// ValidateRegistration checks every registration field and returns the full
// list of failures so the caller can render all of them at once.
func ValidateRegistration(in RegistrationInput) []models.FieldError {
	var errs []models.FieldError
	errs = checkUsername(in.Username, errs)
	errs = checkEmail(in.Email, errs)
	if in.Password == "" {
		errs = append(errs, models.FieldError{Field: "password", Reason: "is required"})
	}
	if in.ConfirmPassword == "" {
		errs = append(errs, models.FieldError{Field: "confirm_password", Reason: "is required"})
	} else if in.Password != "" && in.Password != in.ConfirmPassword {
		errs = append(errs, models.FieldError{Field: "confirm_password", Reason: "must match password"})
	}
	return errs
}

// ValidateLogin checks the login form fields.
func ValidateLogin(in LoginInput) []models.FieldError {
	var errs []models.FieldError
	errs = checkEmail(in.Email, errs)
	if in.Password == "" {
		errs = append(errs, models.FieldError{Field: "password", Reason: "is required"})
	}
	return errs
}

// ValidateAccountUpdate checks the account form fields.
func ValidateAccountUpdate(in AccountUpdateInput) []models.FieldError {
	var errs []models.FieldError
	errs = checkUsername(in.Username, errs)
	errs = checkEmail(in.Email, errs)
	return errs
}

// ValidatePortfolio checks the portfolio form fields. Title is the only
// required field; everything else is free text.
func ValidatePortfolio(in PortfolioInput) []models.FieldError {
	var errs []models.FieldError
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, models.FieldError{Field: "title", Reason: "is required"})
	}
	return errs
}

// ValidateAchievement checks the achievement form fields.
func ValidateAchievement(in AchievementInput) []models.FieldError {
	var errs []models.FieldError
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, models.FieldError{Field: "title", Reason: "is required"})
	}
	if !models.IsValidAchievementKind(in.Type) {
		errs = append(errs, models.FieldError{Field: "type", Reason: "must be one of Medal, Diploma, Other"})
	}
	return errs
}
