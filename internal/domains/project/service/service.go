package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/repository"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

type projectService struct {
	repo   repository.ProjectRepository
	assets storage.Assets
}

func NewProjectService(repo repository.ProjectRepository, assets storage.Assets) ServiceInterface {
	return &projectService{repo: repo, assets: assets}
}

func (s *projectService) Create(
	ctx context.Context,
	actorID uuid.UUID,
	in *model.ProjectInput,
	image *storage.File,
) (*model.Project, error) {
	if err := in.ValidateCreate(); err != nil {
		return nil, apperror.Validation(err)
	}

	project := in.NewProject(actorID, utils.Now())

	if image != nil {
		ref, err := s.assets.Store(ctx, image, model.AssetCategory)
		if err != nil {
			return nil, err
		}
		project.ImageURL = ref
	}

	if err := s.repo.Create(ctx, project); err != nil {
		if image != nil {
			s.assets.Discard(ctx, project.ImageURL)
		}
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	return project, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return project, nil
}

func (s *projectService) Update(
	ctx context.Context,
	id uuid.UUID,
	in *model.ProjectInput,
	image *storage.File,
) (*model.Project, bool, error) {
	if err := in.ValidateUpdate(); err != nil {
		return nil, false, apperror.Validation(err)
	}

	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, mapRepoError(err)
	}
	previousImage := project.ImageURL

	changed := in.Apply(project)

	var newImage string
	if image != nil {
		if newImage, err = s.assets.Store(ctx, image, model.AssetCategory); err != nil {
			return nil, false, err
		}
		project.ImageURL = newImage
		changed = true
	}
	if !changed {
		return project, false, nil
	}

	project.UpdatedAt = utils.NextTimestamp(project.UpdatedAt)
	if err := s.repo.Update(ctx, project); err != nil {
		if newImage != "" {
			s.assets.Discard(ctx, newImage)
		}
		return nil, false, mapRepoError(err)
	}

	storage.ReleaseReplaced(ctx, s.assets, previousImage, project.ImageURL)
	return project, true, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	if project.ImageURL != "" {
		s.assets.Discard(ctx, project.ImageURL)
	}
	return nil
}

func (s *projectService) List(
	ctx context.Context,
	filter model.ProjectFilter,
	page pagination.Params,
) (*pagination.Page[*model.Project], error) {
	projects, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	return pagination.NewPage(projects, total, page), nil
}

func (s *projectService) GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicProject, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.IsPublic() {
		return nil, model.NewProjectNotFoundError()
	}
	return project.ToPublic(s.assets.PublicURL), nil
}

func (s *projectService) ListPublic(
	ctx context.Context,
	filter model.ProjectFilter,
	page pagination.Params,
) (*pagination.Page[*model.PublicProject], error) {
	filter.Status = model.StatusActive

	result, err := s.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return pagination.Map(result, func(p *model.Project) *model.PublicProject {
		return p.ToPublic(s.assets.PublicURL)
	}), nil
}

func mapRepoError(err error) error {
	if errors.Is(err, model.ErrProjectNotFound) {
		return model.NewProjectNotFoundError()
	}
	return apperror.Upstream(apperror.CodeInternal, err)
}
