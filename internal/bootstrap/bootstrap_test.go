package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/config"
	usermodel "portfolio-backend/internal/domains/user/model"
)

type fakeAdmins struct {
	seeds []*usermodel.AdminSeed
	err   error
}

func (f *fakeAdmins) EnsureAdmin(_ context.Context, seed *usermodel.AdminSeed) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.seeds = append(f.seeds, seed)
	return len(f.seeds) == 1, nil
}

type fakeSettings struct {
	calls int
	err   error
}

func (f *fakeSettings) EnsureDefaults(context.Context) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.calls++
	return f.calls == 1, nil
}

var adminCfg = config.AdminConfig{Username: "admin", Email: "admin@portfolio.com", Password: "Admin@1234"}

func TestRunIsIdempotent(t *testing.T) {
	admins, settings := &fakeAdmins{}, &fakeSettings{}

	first, err := Run(context.Background(), admins, settings, adminCfg)
	require.NoError(t, err)
	assert.Equal(t, &Result{AdminCreated: true, SettingsSeeded: true}, first)

	second, err := Run(context.Background(), admins, settings, adminCfg)
	require.NoError(t, err)
	assert.Equal(t, &Result{}, second)

	require.Len(t, admins.seeds, 2)
	assert.Equal(t, "admin@portfolio.com", admins.seeds[0].Email)
	assert.Equal(t, "Admin@1234", admins.seeds[0].Password)
}

func TestRunStopsOnAdminFailure(t *testing.T) {
	settings := &fakeSettings{}

	_, err := Run(context.Background(), &fakeAdmins{err: errors.New("db down")}, settings, adminCfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bootstrap admin")
	assert.Zero(t, settings.calls)
}

func TestRunReportsSettingsFailure(t *testing.T) {
	_, err := Run(context.Background(), &fakeAdmins{}, &fakeSettings{err: errors.New("db down")}, adminCfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bootstrap settings")
}
