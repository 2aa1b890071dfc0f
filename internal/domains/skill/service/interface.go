package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/pagination"
)

type ServiceInterface interface {
	// Create validates input, stores the optional image and inserts the skill.
	Create(ctx context.Context, actorID uuid.UUID, in *model.SkillInput, image *storage.File) (*model.Skill, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	// Update merges the sent fields; the bool is false when nothing changed.
	Update(ctx context.Context, id uuid.UUID, in *model.SkillInput, image *storage.File) (*model.Skill, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.SkillFilter, page pagination.Params) (*pagination.Page[*model.Skill], error)

	GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicSkill, error)
	ListPublic(ctx context.Context, filter model.SkillFilter, page pagination.Params) (*pagination.Page[*model.PublicSkill], error)
}
