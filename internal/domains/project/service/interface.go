package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/pagination"
)

type ServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, in *model.ProjectInput, image *storage.File) (*model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, in *model.ProjectInput, image *storage.File) (*model.Project, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.ProjectFilter, page pagination.Params) (*pagination.Page[*model.Project], error)

	// Public reads only ever see active projects.
	GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicProject, error)
	ListPublic(ctx context.Context, filter model.ProjectFilter, page pagination.Params) (*pagination.Page[*model.PublicProject], error)
}
