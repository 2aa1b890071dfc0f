package model

import (
	"errors"

	"portfolio-backend/internal/shared/apperror"
)

var ErrUserNotFound = errors.New("user not found")

// NewInvalidCredentialsError is returned for an unknown email and a wrong password alike.
func NewInvalidCredentialsError() *apperror.AppError {
	return apperror.Unauthenticated(apperror.CodeInvalidCreds, "Invalid email or password")
}
