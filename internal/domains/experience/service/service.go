package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/experience/model"
	"portfolio-backend/internal/domains/experience/repository"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

type experienceService struct {
	repo   repository.ExperienceRepository
	assets storage.Assets
}

func NewExperienceService(repo repository.ExperienceRepository, assets storage.Assets) ServiceInterface {
	return &experienceService{repo: repo, assets: assets}
}

// =====================================================
// ADMIN OPERATIONS
// =====================================================

func (s *experienceService) Create(
	ctx context.Context,
	actorID uuid.UUID,
	in *model.ExperienceInput,
	image *storage.File,
) (*model.Experience, error) {
	if err := in.ValidateCreate(); err != nil {
		return nil, apperror.Validation(err)
	}

	experience := in.NewExperience(actorID, utils.Now())

	if image != nil {
		ref, err := s.assets.Store(ctx, image, model.AssetCategory)
		if err != nil {
			return nil, err
		}
		experience.ImageURL = ref
	}

	if err := s.repo.Create(ctx, experience); err != nil {
		if image != nil {
			s.assets.Discard(ctx, experience.ImageURL)
		}
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}

	return experience, nil
}

func (s *experienceService) Get(ctx context.Context, id uuid.UUID) (*model.Experience, error) {
	experience, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return experience, nil
}

func (s *experienceService) Update(
	ctx context.Context,
	id uuid.UUID,
	in *model.ExperienceInput,
	image *storage.File,
) (*model.Experience, bool, error) {
	if err := in.ValidateUpdate(); err != nil {
		return nil, false, apperror.Validation(err)
	}

	experience, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, mapRepoError(err)
	}
	previousImage := experience.ImageURL

	changed := in.Apply(experience)

	var newImage string
	if image != nil {
		newImage, err = s.assets.Store(ctx, image, model.AssetCategory)
		if err != nil {
			return nil, false, err
		}
		experience.ImageURL = newImage
		changed = true
	}

	if !changed {
		return experience, false, nil
	}

	experience.UpdatedAt = utils.NextTimestamp(experience.UpdatedAt)
	if err := s.repo.Update(ctx, experience); err != nil {
		if newImage != "" {
			s.assets.Discard(ctx, newImage)
		}
		return nil, false, mapRepoError(err)
	}

	storage.ReleaseReplaced(ctx, s.assets, previousImage, experience.ImageURL)
	return experience, true, nil
}

// Delete removes the row, then its image on a best-effort basis.
func (s *experienceService) Delete(ctx context.Context, id uuid.UUID) error {
	experience, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}

	if experience.ImageURL != "" {
		s.assets.Discard(ctx, experience.ImageURL)
	}
	return nil
}

func (s *experienceService) List(
	ctx context.Context,
	filter model.ExperienceFilter,
	page pagination.Params,
) (*pagination.Page[*model.Experience], error) {
	experiences, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	return pagination.NewPage(experiences, total, page), nil
}

// =====================================================
// PUBLIC OPERATIONS
// =====================================================

func (s *experienceService) GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicExperience, error) {
	experience, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return experience.ToPublic(s.assets.PublicURL), nil
}

func (s *experienceService) ListPublic(
	ctx context.Context,
	filter model.ExperienceFilter,
	page pagination.Params,
) (*pagination.Page[*model.PublicExperience], error) {
	result, err := s.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return pagination.Map(result, func(experience *model.Experience) *model.PublicExperience {
		return experience.ToPublic(s.assets.PublicURL)
	}), nil
}

func mapRepoError(err error) error {
	if errors.Is(err, model.ErrExperienceNotFound) {
		return model.NewExperienceNotFoundError()
	}
	return apperror.Upstream(apperror.CodeInternal, err)
}
