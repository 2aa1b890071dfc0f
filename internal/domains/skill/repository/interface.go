package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/shared/pagination"
)

// SkillRepository persists skills. Lookups of unknown ids return model.ErrSkillNotFound.
type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page, most recently created first, and the filtered total.
	List(ctx context.Context, filter model.SkillFilter, page pagination.Params) ([]*model.Skill, int64, error)
}
