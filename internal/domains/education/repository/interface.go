package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/education/model"
	"portfolio-backend/internal/shared/pagination"
)

type EducationRepository interface {
	Create(ctx context.Context, e *model.Education) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Education, error)
	Update(ctx context.Context, e *model.Education) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List orders by start_date, latest first.
	List(ctx context.Context, filter model.EducationFilter, page pagination.Params) ([]*model.Education, int64, error)
}
