package service

import (
	"context"

	"portfolio-backend/internal/domains/settings/model"
)

type Service interface {
	Get(ctx context.Context) (*model.Settings, error)
	// Update merges the patch; an empty patch returns the current document.
	Update(ctx context.Context, patch *model.Patch) (*model.Settings, error)
	UpdateSocial(ctx context.Context, social map[string]string) (*model.Settings, error)
	ContactInfo(ctx context.Context) (*model.PublicContact, error)
	// EnsureDefaults seeds the document once; it reports whether it wrote one.
	EnsureDefaults(ctx context.Context) (bool, error)
}
