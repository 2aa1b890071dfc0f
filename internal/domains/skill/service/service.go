package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/domains/skill/repository"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

type skillService struct {
	repo   repository.SkillRepository
	assets storage.Assets
}

func NewSkillService(repo repository.SkillRepository, assets storage.Assets) ServiceInterface {
	return &skillService{repo: repo, assets: assets}
}

// =====================================================
// ADMIN OPERATIONS
// =====================================================

func (s *skillService) Create(
	ctx context.Context,
	actorID uuid.UUID,
	in *model.SkillInput,
	image *storage.File,
) (*model.Skill, error) {
	// Step 1: Validate before touching storage
	if err := in.ValidateCreate(); err != nil {
		return nil, apperror.Validation(err)
	}

	skill := in.NewSkill(actorID, utils.Now())

	// Step 2: Persist the image, the insert is skipped if this fails
	if image != nil {
		ref, err := s.assets.Store(ctx, image, model.AssetCategory)
		if err != nil {
			return nil, err
		}
		skill.ImageURL = ref
	}

	// Step 3: Insert, dropping the new image if the row is not written
	if err := s.repo.Create(ctx, skill); err != nil {
		if image != nil {
			s.assets.Discard(ctx, skill.ImageURL)
		}
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}

	return skill, nil
}

func (s *skillService) Get(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return skill, nil
}

func (s *skillService) Update(
	ctx context.Context,
	id uuid.UUID,
	in *model.SkillInput,
	image *storage.File,
) (*model.Skill, bool, error) {
	if err := in.ValidateUpdate(); err != nil {
		return nil, false, apperror.Validation(err)
	}

	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, mapRepoError(err)
	}
	previousImage := skill.ImageURL

	changed := in.Apply(skill)

	var newImage string
	if image != nil {
		newImage, err = s.assets.Store(ctx, image, model.AssetCategory)
		if err != nil {
			return nil, false, err
		}
		skill.ImageURL = newImage
		changed = true
	}

	if !changed {
		return skill, false, nil
	}

	skill.UpdatedAt = utils.NextTimestamp(skill.UpdatedAt)
	if err := s.repo.Update(ctx, skill); err != nil {
		if newImage != "" {
			s.assets.Discard(ctx, newImage)
		}
		return nil, false, mapRepoError(err)
	}

	storage.ReleaseReplaced(ctx, s.assets, previousImage, skill.ImageURL)
	return skill, true, nil
}

// Delete removes the row, then its image on a best-effort basis.
func (s *skillService) Delete(ctx context.Context, id uuid.UUID) error {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}

	if skill.ImageURL != "" {
		s.assets.Discard(ctx, skill.ImageURL)
	}
	return nil
}

func (s *skillService) List(
	ctx context.Context,
	filter model.SkillFilter,
	page pagination.Params,
) (*pagination.Page[*model.Skill], error) {
	skills, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	return pagination.NewPage(skills, total, page), nil
}

// =====================================================
// PUBLIC OPERATIONS
// =====================================================

func (s *skillService) GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicSkill, error) {
	skill, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return skill.ToPublic(s.assets.PublicURL), nil
}

func (s *skillService) ListPublic(
	ctx context.Context,
	filter model.SkillFilter,
	page pagination.Params,
) (*pagination.Page[*model.PublicSkill], error) {
	result, err := s.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return pagination.Map(result, func(skill *model.Skill) *model.PublicSkill {
		return skill.ToPublic(s.assets.PublicURL)
	}), nil
}

func mapRepoError(err error) error {
	if errors.Is(err, model.ErrSkillNotFound) {
		return model.NewSkillNotFoundError()
	}
	return apperror.Upstream(apperror.CodeInternal, err)
}
