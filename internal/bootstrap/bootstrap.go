package bootstrap

import (
	"context"
	"fmt"

	"portfolio-backend/internal/config"
	usermodel "portfolio-backend/internal/domains/user/model"
	"portfolio-backend/pkg/logger"
)

type AdminSeeder interface {
	EnsureAdmin(ctx context.Context, seed *usermodel.AdminSeed) (bool, error)
}

type SettingsSeeder interface {
	EnsureDefaults(ctx context.Context) (bool, error)
}

// Result reports what a run actually wrote.
type Result struct {
	AdminCreated   bool
	SettingsSeeded bool
}

// Run creates the first admin and the default settings document.
// Both steps are idempotent, so Run is safe on every start.
func Run(ctx context.Context, admins AdminSeeder, settings SettingsSeeder, admin config.AdminConfig) (*Result, error) {
	res := &Result{}

	// Step 1: admin identity
	created, err := admins.EnsureAdmin(ctx, &usermodel.AdminSeed{
		Username: admin.Username,
		Email:    admin.Email,
		Password: admin.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}
	res.AdminCreated = created
	if created {
		logger.Info("[BOOTSTRAP] admin created", map[string]interface{}{"email": admin.Email})
	}

	// Step 2: settings singleton
	seeded, err := settings.EnsureDefaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap settings: %w", err)
	}
	res.SettingsSeeded = seeded
	if seeded {
		logger.Info("[BOOTSTRAP] default settings written", nil)
	}

	return res, nil
}
