package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogmodel "portfolio-backend/internal/domains/blog/model"
	certmodel "portfolio-backend/internal/domains/certificate/model"
	edumodel "portfolio-backend/internal/domains/education/model"
	expmodel "portfolio-backend/internal/domains/experience/model"
	projectmodel "portfolio-backend/internal/domains/project/model"
	skillmodel "portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/shared/pagination"
)

type skills struct{ err error }

func (s skills) ListPublic(_ context.Context, _ skillmodel.SkillFilter, p pagination.Params) (*pagination.Page[*skillmodel.PublicSkill], error) {
	if s.err != nil {
		return nil, s.err
	}
	return pagination.NewPage([]*skillmodel.PublicSkill{{ID: uuid.New(), Name: "Go", Level: "Expert"}}, 1, p), nil
}

type projects struct{}

func (projects) ListPublic(_ context.Context, _ projectmodel.ProjectFilter, p pagination.Params) (*pagination.Page[*projectmodel.PublicProject], error) {
	return pagination.NewPage([]*projectmodel.PublicProject{{ID: uuid.New(), Title: "Site"}}, 1, p), nil
}

type education struct{}

func (education) ListPublic(_ context.Context, _ edumodel.EducationFilter, p pagination.Params) (*pagination.Page[*edumodel.PublicEducation], error) {
	return pagination.NewPage[*edumodel.PublicEducation](nil, 0, p), nil
}

type experience struct{}

func (experience) ListPublic(_ context.Context, _ expmodel.ExperienceFilter, p pagination.Params) (*pagination.Page[*expmodel.PublicExperience], error) {
	return pagination.NewPage([]*expmodel.PublicExperience{{ID: uuid.New(), Position: "Engineer", Company: "Acme"}}, 1, p), nil
}

type certificates struct{}

func (certificates) ListPublic(_ context.Context, _ certmodel.CertificateFilter, p pagination.Params) (*pagination.Page[*certmodel.PublicCertificate], error) {
	return pagination.NewPage([]*certmodel.PublicCertificate{{ID: uuid.New(), Name: "CKA", Issuer: "CNCF"}}, 1, p), nil
}

type blog struct{}

func (blog) ListPublic(_ context.Context, _ blogmodel.BlogPostFilter, p pagination.Params) (*pagination.Page[*blogmodel.PublicBlogPost], error) {
	return pagination.NewPage([]*blogmodel.PublicBlogPost{{ID: uuid.New(), Title: "Hello", Slug: "hello", Date: time.Now()}}, 1, p), nil
}

func sources(s SkillLister) Sources {
	return Sources{
		Skills:       s,
		Projects:     projects{},
		Education:    education{},
		Experience:   experience{},
		Certificates: certificates{},
		Blog:         blog{},
	}
}

func TestSummaryCollectsEverySection(t *testing.T) {
	svc := NewPortfolioService(sources(skills{}))

	sum, err := svc.Summary(context.Background())

	require.NoError(t, err)
	require.Len(t, sum.Skills, 1)
	assert.Equal(t, "Expert", sum.Skills[0].Level)
	assert.Len(t, sum.Projects, 1)
	assert.NotNil(t, sum.Education)
	assert.Empty(t, sum.Education)
	assert.Equal(t, "Acme", sum.Experience[0].Company)
	assert.Equal(t, "CNCF", sum.Certificates[0].Issuer)
	assert.Equal(t, "hello", sum.Blog[0].Slug)
}

func TestSummaryFailsWhenAnySectionFails(t *testing.T) {
	boom := errors.New("db down")
	svc := NewPortfolioService(sources(skills{err: boom}))

	_, err := svc.Summary(context.Background())

	assert.ErrorIs(t, err, boom)
}

// pagedSkills serves total items through the real page arithmetic.
type pagedSkills struct {
	total int
	seen  []pagination.Params
}

func (s *pagedSkills) ListPublic(_ context.Context, _ skillmodel.SkillFilter, p pagination.Params) (*pagination.Page[*skillmodel.PublicSkill], error) {
	s.seen = append(s.seen, p)
	var items []*skillmodel.PublicSkill
	for i := p.Offset(); i < s.total && i < p.Offset()+p.Limit(); i++ {
		items = append(items, &skillmodel.PublicSkill{ID: uuid.New(), Name: "skill"})
	}
	return pagination.NewPage(items, int64(s.total), p), nil
}

func TestSummaryReadsEveryPage(t *testing.T) {
	src := &pagedSkills{total: 2*pagination.MaxPerPage + 50}
	svc := NewPortfolioService(sources(src))

	sum, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Len(t, sum.Skills, 2*pagination.MaxPerPage+50)
	require.Len(t, src.seen, 3)
	assert.Equal(t, pagination.Params{Page: 3, PerPage: pagination.MaxPerPage}, src.seen[2])
}

func TestSummaryEmptyCollectionIsOneRead(t *testing.T) {
	src := &pagedSkills{}
	svc := NewPortfolioService(sources(src))

	sum, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, sum.Skills)
	assert.Empty(t, sum.Skills)
	assert.Len(t, src.seen, 1)
}
