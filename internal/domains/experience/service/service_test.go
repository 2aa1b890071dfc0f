package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/experience/model"
	"portfolio-backend/internal/infrastructure/storage/storagetest"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
)

type memoryExperienceRepo struct {
	items       map[uuid.UUID]model.Experience
	failCreate  bool
	deleteCalls int
}

func (r *memoryExperienceRepo) Create(_ context.Context, e *model.Experience) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.items[e.ID] = *e
	return nil
}

func (r *memoryExperienceRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Experience, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, model.ErrExperienceNotFound
	}
	return &e, nil
}

func (r *memoryExperienceRepo) Update(_ context.Context, e *model.Experience) error {
	r.items[e.ID] = *e
	return nil
}

func (r *memoryExperienceRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleteCalls++
	delete(r.items, id)
	return nil
}

func (r *memoryExperienceRepo) List(context.Context, model.ExperienceFilter, pagination.Params) ([]*model.Experience, int64, error) {
	return nil, 0, nil
}

func str(s string) *string { return &s }

func newFixture() (ServiceInterface, *memoryExperienceRepo, *storagetest.Assets) {
	repo := &memoryExperienceRepo{items: map[uuid.UUID]model.Experience{}}
	assets := storagetest.NewAssets()
	return NewExperienceService(repo, assets), repo, assets
}

func TestCreateExperienceRequiresThreeFields(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Create(context.Background(), uuid.New(), &model.ExperienceInput{Position: str("Engineer")}, nil)

	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Invalid fields: company, description", appErr.Message)
}

func TestCreateExperienceDefaults(t *testing.T) {
	svc, _, _ := newFixture()

	created, err := svc.Create(context.Background(), uuid.New(), &model.ExperienceInput{
		Position:         str("Engineer"),
		Company:          str("Acme"),
		Description:      str("Built things"),
		Responsibilities: []string{"APIs"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, created.Technologies)
	assert.Equal(t, []string{"APIs"}, created.Responsibilities)
	assert.Empty(t, created.ImageURL)
}

func TestCreateExperienceCompensatesImage(t *testing.T) {
	svc, repo, assets := newFixture()
	repo.failCreate = true

	_, err := svc.Create(context.Background(), uuid.New(), &model.ExperienceInput{
		Position: str("Engineer"), Company: str("Acme"), Description: str("d"),
	}, storagetest.File("logo.webp"))

	require.Error(t, err)
	assert.Zero(t, assets.Count())
	assert.Empty(t, repo.items)
}

func TestDeleteUnknownExperienceSkipsStore(t *testing.T) {
	svc, repo, _ := newFixture()

	err := svc.Delete(context.Background(), uuid.New())

	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, repo.deleteCalls)
}
