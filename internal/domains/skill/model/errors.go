package model

import (
	"errors"

	"portfolio-backend/internal/shared/apperror"
)

var ErrSkillNotFound = errors.New("skill not found")

func NewSkillNotFoundError() *apperror.AppError {
	return apperror.NotFound("Skill").Wrap(ErrSkillNotFound)
}
