package model

import (
	"errors"

	"portfolio-backend/internal/shared/apperror"
)

var ErrEducationNotFound = errors.New("education not found")

func NewEducationNotFoundError() *apperror.AppError {
	return apperror.NotFound("Education").Wrap(ErrEducationNotFound)
}
