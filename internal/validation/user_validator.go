package validation

import (
	"regexp"
)

// UserValidator provides validation for registration and login input.
type UserValidator struct {
	validator     *Validator
	usernameChars *regexp.Regexp
}

// NewUserValidator creates a new user validator
func NewUserValidator() *UserValidator {
	return &UserValidator{
		validator:     NewValidator(),
		usernameChars: regexp.MustCompile(`^[a-zA-Z0-9._-]+$`),
	}
}

// ValidateUsername validates a username for registration or login.
func (uv *UserValidator) ValidateUsername(username string) error {
	validationError := NewValidationError()

	trimmed := uv.validator.TrimAndValidateString(username)
	if !uv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("username")
		return validationError
	}

	if !uv.validator.IsValidStringLength(trimmed, 1, 64) {
		validationError.AddInvalidLengthError("username", trimmed, 1, 64)
	}
	if !uv.usernameChars.MatchString(trimmed) {
		validationError.AddInvalidCharacterError("username", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidatePassword validates a password for registration.
func (uv *UserValidator) ValidatePassword(password string) error {
	validationError := NewValidationError()

	if password == "" {
		validationError.AddRequiredError("password")
		return validationError
	}
	// bcrypt truncates beyond 72 bytes
	if len(password) < 6 || len(password) > 72 {
		validationError.AddInvalidLengthError("password", nil, 6, 72)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidUsername returns a cleaned username if valid
func (uv *UserValidator) GetValidUsername(username string) (string, error) {
	if err := uv.ValidateUsername(username); err != nil {
		return "", err
	}
	return uv.validator.TrimAndValidateString(username), nil
}
