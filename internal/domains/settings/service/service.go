package service

import (
	"context"
	"errors"

	"portfolio-backend/internal/domains/settings/model"
	"portfolio-backend/internal/domains/settings/repository"
	"portfolio-backend/internal/shared/apperror"
)

type settingsService struct {
	repo repository.Repository
}

func NewSettingsService(repo repository.Repository) Service {
	return &settingsService{repo: repo}
}

// Get serves the defaults until the document has been seeded.
func (s *settingsService) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, model.ErrSettingsNotFound) {
			return model.Defaults(), nil
		}
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, patch *model.Patch) (*model.Settings, error) {
	if err := patch.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}
	if patch.IsEmpty() {
		return s.Get(ctx)
	}

	seed := model.Defaults()
	patch.Apply(seed)

	settings, err := s.repo.Merge(ctx, patch, seed)
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSocial(ctx context.Context, social map[string]string) (*model.Settings, error) {
	return s.Update(ctx, &model.Patch{Social: social})
}

func (s *settingsService) ContactInfo(ctx context.Context) (*model.PublicContact, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return settings.Contact(), nil
}

func (s *settingsService) EnsureDefaults(ctx context.Context) (bool, error) {
	return s.repo.Seed(ctx, model.Defaults())
}
