package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/certificate/model"
	"portfolio-backend/internal/infrastructure/storage/storagetest"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
)

type memoryCertificateRepo struct {
	items map[uuid.UUID]model.Certificate
	stats *model.Stats
}

func (r *memoryCertificateRepo) Create(_ context.Context, c *model.Certificate) error {
	r.items[c.ID] = *c
	return nil
}

func (r *memoryCertificateRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Certificate, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, model.ErrCertificateNotFound
	}
	return &c, nil
}

func (r *memoryCertificateRepo) Update(_ context.Context, c *model.Certificate) error {
	r.items[c.ID] = *c
	return nil
}

func (r *memoryCertificateRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *memoryCertificateRepo) List(context.Context, model.CertificateFilter, pagination.Params) ([]*model.Certificate, int64, error) {
	out := make([]*model.Certificate, 0, len(r.items))
	for _, c := range r.items {
		c := c
		// stored rows never carry the projection
		c.DaysUntilExpiry, c.IsExpiringSoon = nil, false
		out = append(out, &c)
	}
	return out, int64(len(out)), nil
}

func (r *memoryCertificateRepo) Stats(context.Context, time.Time) (*model.Stats, error) {
	return r.stats, nil
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newFixture() (*certificateService, *memoryCertificateRepo) {
	repo := &memoryCertificateRepo{items: map[uuid.UUID]model.Certificate{}, stats: &model.Stats{Total: 2}}
	svc := NewCertificateService(repo, storagetest.NewAssets()).(*certificateService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func str(s string) *string { return &s }

func TestCertificateExpiryProjection(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	soon, err := svc.Create(ctx, uuid.New(), &model.CertificateInput{
		Name:       str("CKA"),
		Issuer:     str("CNCF"),
		ExpiryDate: str(fixedNow.AddDate(0, 0, 10).Format(time.RFC3339)),
	}, nil)
	require.NoError(t, err)
	later, err := svc.Create(ctx, uuid.New(), &model.CertificateInput{
		Name:       str("AWS SA"),
		Issuer:     str("Amazon"),
		ExpiryDate: str(fixedNow.AddDate(0, 0, 40).Format("2006-01-02")),
	}, nil)
	require.NoError(t, err)

	got, err := svc.Get(ctx, soon.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DaysUntilExpiry)
	assert.Equal(t, 10, *got.DaysUntilExpiry)
	assert.True(t, got.IsExpiringSoon)

	public, err := svc.GetPublic(ctx, later.ID)
	require.NoError(t, err)
	require.NotNil(t, public.DaysUntilExpiry)
	assert.Equal(t, 40, *public.DaysUntilExpiry)
	assert.False(t, public.IsExpiringSoon)

	page, err := svc.List(ctx, model.CertificateFilter{}, pagination.Default())
	require.NoError(t, err)
	for _, c := range page.Data {
		assert.NotNil(t, c.DaysUntilExpiry, "list results are annotated")
	}
}

func TestCertificateDefaults(t *testing.T) {
	svc, _ := newFixture()

	c, err := svc.Create(context.Background(), uuid.New(), &model.CertificateInput{
		Name: str("CKA"), Issuer: str("CNCF"), Skills: []string{"k8s"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCategory, c.Category)
	assert.Equal(t, model.StatusActive, c.Status)
	assert.Equal(t, model.DefaultLevel, c.Level)
	assert.Equal(t, model.DefaultPriority, c.Priority)
	assert.Equal(t, 1, c.SkillCount)
	assert.Nil(t, c.DaysUntilExpiry)
}

func TestCertificateBadDate(t *testing.T) {
	svc, repo := newFixture()

	_, err := svc.Create(context.Background(), uuid.New(), &model.CertificateInput{
		Name: str("CKA"), Issuer: str("CNCF"), IssueDate: str("yesterday"),
	}, nil)

	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	assert.Empty(t, repo.items)
}

func TestCertificateStatsNeverNullGroups(t *testing.T) {
	svc, _ := newFixture()

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.NotNil(t, stats.Categories)
	assert.NotNil(t, stats.Levels)
}
