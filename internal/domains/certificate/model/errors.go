package model

import (
	"errors"

	"portfolio-backend/internal/shared/apperror"
)

var ErrCertificateNotFound = errors.New("certificate not found")

func NewCertificateNotFoundError() *apperror.AppError {
	return apperror.NotFound("Certificate").Wrap(ErrCertificateNotFound)
}
