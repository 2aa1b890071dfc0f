package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/shared/pagination"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	// GetByID returns model.ErrProjectNotFound for unknown ids.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.ProjectFilter, page pagination.Params) ([]*model.Project, int64, error)
}
