package model

import (
	"errors"

	"portfolio-backend/internal/shared/apperror"
)

var ErrMessageNotFound = errors.New("message not found")

func NewMessageNotFoundError() *apperror.AppError {
	return apperror.NotFound("Message").Wrap(ErrMessageNotFound)
}
