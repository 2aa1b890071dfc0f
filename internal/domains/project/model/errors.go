package model

import (
	"errors"

	"portfolio-backend/internal/shared/apperror"
)

var ErrProjectNotFound = errors.New("project not found")

func NewProjectNotFoundError() *apperror.AppError {
	return apperror.NotFound("Project").Wrap(ErrProjectNotFound)
}
