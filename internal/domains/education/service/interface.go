package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/education/model"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/pagination"
)

type ServiceInterface interface {
	// Create validates input, stores the optional image and inserts the education.
	Create(ctx context.Context, actorID uuid.UUID, in *model.EducationInput, image *storage.File) (*model.Education, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Education, error)
	// Update merges the sent fields; the bool is false when nothing changed.
	Update(ctx context.Context, id uuid.UUID, in *model.EducationInput, image *storage.File) (*model.Education, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.EducationFilter, page pagination.Params) (*pagination.Page[*model.Education], error)

	GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicEducation, error)
	ListPublic(ctx context.Context, filter model.EducationFilter, page pagination.Params) (*pagination.Page[*model.PublicEducation], error)
}
