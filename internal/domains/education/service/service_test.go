package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/education/model"
	"portfolio-backend/internal/infrastructure/storage/storagetest"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
)

type memoryEducationRepo struct {
	items map[uuid.UUID]model.Education
}

func (r *memoryEducationRepo) Create(_ context.Context, e *model.Education) error {
	r.items[e.ID] = *e
	return nil
}

func (r *memoryEducationRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Education, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, model.ErrEducationNotFound
	}
	return &e, nil
}

func (r *memoryEducationRepo) Update(_ context.Context, e *model.Education) error {
	r.items[e.ID] = *e
	return nil
}

func (r *memoryEducationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return model.ErrEducationNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memoryEducationRepo) List(context.Context, model.EducationFilter, pagination.Params) ([]*model.Education, int64, error) {
	out := make([]*model.Education, 0, len(r.items))
	for _, e := range r.items {
		e := e
		out = append(out, &e)
	}
	return out, int64(len(out)), nil
}

func newTestService() (ServiceInterface, *storagetest.Assets) {
	assets := storagetest.NewAssets()
	return NewEducationService(&memoryEducationRepo{items: map[uuid.UUID]model.Education{}}, assets), assets
}

func str(s string) *string { return &s }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateEducation(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), uuid.New(), &model.EducationInput{
		Degree:      str("BSc Computer Science"),
		Institution: str("HUST"),
		StartDate:   str("2016-09"),
		GPA:         dec("3.45"),
	}, nil)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2016-09", got.StartDate)
	assert.True(t, got.GPA.Equal(decimal.RequireFromString("3.45")))
	assert.Equal(t, []string{}, got.Courses)
	assert.False(t, got.Featured)
}

func TestGPAOutOfRange(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), uuid.New(), &model.EducationInput{
		Degree:      str("BSc"),
		Institution: str("HUST"),
		GPA:         dec("12.5"),
	}, nil)

	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Details, "gpa")
}

func TestUpdateGPAOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	created, err := svc.Create(ctx, uuid.New(), &model.EducationInput{
		Degree: str("BSc"), Institution: str("HUST"), GPA: dec("3.0"),
	}, nil)
	require.NoError(t, err)

	_, changed, err := svc.Update(ctx, created.ID, &model.EducationInput{GPA: dec("3.00")}, nil)
	require.NoError(t, err)
	assert.False(t, changed, "numerically equal GPA is not a change")

	updated, changed, err := svc.Update(ctx, created.ID, &model.EducationInput{GPA: dec("3.5")}, nil)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "HUST", updated.Institution)
}

func TestPublicEducationHidesInternalFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	created, err := svc.Create(ctx, uuid.New(), &model.EducationInput{
		Degree: str("BSc"), Institution: str("HUST"),
	}, storagetest.File("logo.png"))
	require.NoError(t, err)

	public, err := svc.GetPublic(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test"+created.ImageURL, public.ImageURL)

	_, err = svc.GetPublic(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
