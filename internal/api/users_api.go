package api

import (
	"context"

	"deadline-tracker/internal/domain"
	"deadline-tracker/internal/errors"
	"deadline-tracker/internal/validation"
)

// RegisterUser creates a new account. A taken username is reported as a
// validation error and nothing is written.
func (a *apiImpl) RegisterUser(ctx context.Context, username, password string) (*domain.User, error) {
	cleanedName, err := a.userValidator.GetValidUsername(username)
	if err != nil {
		return nil, err
	}
	if err := a.userValidator.ValidatePassword(password); err != nil {
		return nil, err
	}

	if _, err := a.repo.GetUserByUsername(ctx, cleanedName); err == nil {
		validationError := validation.NewValidationError()
		validationError.AddInvalidValueError("username", cleanedName, "already taken")
		return nil, validationError
	} else if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil, err
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := a.mapper.User.ToDatabase(domain.User{Username: cleanedName, PasswordHash: hash})
	if err := a.repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	domainUser := a.mapper.User.FromDatabase(user)
	return &domainUser, nil
}

// Authenticate verifies a username/password pair against the users table.
// Wrong credentials surface as an authentication failure, never a panic or
// a not-found leak; the caller's session stays unauthenticated.
func (a *apiImpl) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	dbUser, err := a.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewUnauthenticatedError("invalid username or password")
		}
		return nil, err
	}

	if !a.hasher.Verify(password, dbUser.PasswordHash) {
		return nil, errors.NewUnauthenticatedError("invalid username or password")
	}

	domainUser := a.mapper.User.FromDatabase(*dbUser)
	return &domainUser, nil
}
