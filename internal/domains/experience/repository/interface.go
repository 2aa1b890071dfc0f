package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/experience/model"
	"portfolio-backend/internal/shared/pagination"
)

type ExperienceRepository interface {
	Create(ctx context.Context, e *model.Experience) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Experience, error)
	Update(ctx context.Context, e *model.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.ExperienceFilter, page pagination.Params) ([]*model.Experience, int64, error)
}
