package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/experience/model"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/pagination"
)

type ServiceInterface interface {
	// Create validates input, stores the optional image and inserts the experience.
	Create(ctx context.Context, actorID uuid.UUID, in *model.ExperienceInput, image *storage.File) (*model.Experience, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Experience, error)
	// Update merges the sent fields; the bool is false when nothing changed.
	Update(ctx context.Context, id uuid.UUID, in *model.ExperienceInput, image *storage.File) (*model.Experience, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.ExperienceFilter, page pagination.Params) (*pagination.Page[*model.Experience], error)

	GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicExperience, error)
	ListPublic(ctx context.Context, filter model.ExperienceFilter, page pagination.Params) (*pagination.Page[*model.PublicExperience], error)
}
