package model

import (
	"errors"

	"portfolio-backend/internal/shared/apperror"
)

var (
	ErrBlogPostNotFound = errors.New("blog post not found")
	// ErrSlugTaken is returned by writes that lost a race for the slug.
	ErrSlugTaken = errors.New("slug already in use")
)

func NewBlogPostNotFoundError() *apperror.AppError {
	return apperror.NotFound("Blog post").Wrap(ErrBlogPostNotFound)
}
