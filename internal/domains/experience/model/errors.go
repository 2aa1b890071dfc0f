package model

import (
	"errors"

	"portfolio-backend/internal/shared/apperror"
)

var ErrExperienceNotFound = errors.New("experience not found")

func NewExperienceNotFoundError() *apperror.AppError {
	return apperror.NotFound("Experience").Wrap(ErrExperienceNotFound)
}
