package repository

import (
	"context"

	"portfolio-backend/internal/domains/settings/model"
)

type Repository interface {
	// Get returns model.ErrSettingsNotFound before the document is seeded.
	Get(ctx context.Context) (*model.Settings, error)

	// Merge applies the patch in one statement so concurrent patches to
	// different keys both survive. A missing document is created from seed.
	Merge(ctx context.Context, patch *model.Patch, seed *model.Settings) (*model.Settings, error)

	// Seed writes s only when no document exists and reports whether it did.
	Seed(ctx context.Context, s *model.Settings) (bool, error)
}
