package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/education/model"
	"portfolio-backend/internal/domains/education/repository"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

type educationService struct {
	repo   repository.EducationRepository
	assets storage.Assets
}

func NewEducationService(repo repository.EducationRepository, assets storage.Assets) ServiceInterface {
	return &educationService{repo: repo, assets: assets}
}

// =====================================================
// ADMIN OPERATIONS
// =====================================================

func (s *educationService) Create(
	ctx context.Context,
	actorID uuid.UUID,
	in *model.EducationInput,
	image *storage.File,
) (*model.Education, error) {
	if err := in.ValidateCreate(); err != nil {
		return nil, apperror.Validation(err)
	}

	education := in.NewEducation(actorID, utils.Now())

	if image != nil {
		ref, err := s.assets.Store(ctx, image, model.AssetCategory)
		if err != nil {
			return nil, err
		}
		education.ImageURL = ref
	}

	if err := s.repo.Create(ctx, education); err != nil {
		if image != nil {
			s.assets.Discard(ctx, education.ImageURL)
		}
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}

	return education, nil
}

func (s *educationService) Get(ctx context.Context, id uuid.UUID) (*model.Education, error) {
	education, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return education, nil
}

func (s *educationService) Update(
	ctx context.Context,
	id uuid.UUID,
	in *model.EducationInput,
	image *storage.File,
) (*model.Education, bool, error) {
	if err := in.ValidateUpdate(); err != nil {
		return nil, false, apperror.Validation(err)
	}

	education, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, mapRepoError(err)
	}
	previousImage := education.ImageURL

	changed := in.Apply(education)

	var newImage string
	if image != nil {
		newImage, err = s.assets.Store(ctx, image, model.AssetCategory)
		if err != nil {
			return nil, false, err
		}
		education.ImageURL = newImage
		changed = true
	}

	if !changed {
		return education, false, nil
	}

	education.UpdatedAt = utils.NextTimestamp(education.UpdatedAt)
	if err := s.repo.Update(ctx, education); err != nil {
		if newImage != "" {
			s.assets.Discard(ctx, newImage)
		}
		return nil, false, mapRepoError(err)
	}

	storage.ReleaseReplaced(ctx, s.assets, previousImage, education.ImageURL)
	return education, true, nil
}

// Delete removes the row, then its image on a best-effort basis.
func (s *educationService) Delete(ctx context.Context, id uuid.UUID) error {
	education, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}

	if education.ImageURL != "" {
		s.assets.Discard(ctx, education.ImageURL)
	}
	return nil
}

func (s *educationService) List(
	ctx context.Context,
	filter model.EducationFilter,
	page pagination.Params,
) (*pagination.Page[*model.Education], error) {
	educations, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	return pagination.NewPage(educations, total, page), nil
}

// =====================================================
// PUBLIC OPERATIONS
// =====================================================

func (s *educationService) GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicEducation, error) {
	education, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return education.ToPublic(s.assets.PublicURL), nil
}

func (s *educationService) ListPublic(
	ctx context.Context,
	filter model.EducationFilter,
	page pagination.Params,
) (*pagination.Page[*model.PublicEducation], error) {
	result, err := s.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return pagination.Map(result, func(education *model.Education) *model.PublicEducation {
		return education.ToPublic(s.assets.PublicURL)
	}), nil
}

func mapRepoError(err error) error {
	if errors.Is(err, model.ErrEducationNotFound) {
		return model.NewEducationNotFoundError()
	}
	return apperror.Upstream(apperror.CodeInternal, err)
}
