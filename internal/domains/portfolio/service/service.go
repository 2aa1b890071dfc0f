package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	blogmodel "portfolio-backend/internal/domains/blog/model"
	certmodel "portfolio-backend/internal/domains/certificate/model"
	edumodel "portfolio-backend/internal/domains/education/model"
	expmodel "portfolio-backend/internal/domains/experience/model"
	"portfolio-backend/internal/domains/portfolio/model"
	projectmodel "portfolio-backend/internal/domains/project/model"
	skillmodel "portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/shared/pagination"
)

// =====================================================
// SOURCES
// =====================================================

type SkillLister interface {
	ListPublic(ctx context.Context, filter skillmodel.SkillFilter, page pagination.Params) (*pagination.Page[*skillmodel.PublicSkill], error)
}

type ProjectLister interface {
	ListPublic(ctx context.Context, filter projectmodel.ProjectFilter, page pagination.Params) (*pagination.Page[*projectmodel.PublicProject], error)
}

type EducationLister interface {
	ListPublic(ctx context.Context, filter edumodel.EducationFilter, page pagination.Params) (*pagination.Page[*edumodel.PublicEducation], error)
}

type ExperienceLister interface {
	ListPublic(ctx context.Context, filter expmodel.ExperienceFilter, page pagination.Params) (*pagination.Page[*expmodel.PublicExperience], error)
}

type CertificateLister interface {
	ListPublic(ctx context.Context, filter certmodel.CertificateFilter, page pagination.Params) (*pagination.Page[*certmodel.PublicCertificate], error)
}

type BlogLister interface {
	ListPublic(ctx context.Context, filter blogmodel.BlogPostFilter, page pagination.Params) (*pagination.Page[*blogmodel.PublicBlogPost], error)
}

// Sources are the public listings the summary is built from.
type Sources struct {
	Skills       SkillLister
	Projects     ProjectLister
	Education    EducationLister
	Experience   ExperienceLister
	Certificates CertificateLister
	Blog         BlogLister
}

type Service interface {
	// Summary reads every collection concurrently; any failure fails the whole summary.
	Summary(ctx context.Context) (*model.Summary, error)
}

type portfolioService struct {
	src Sources
}

func NewPortfolioService(src Sources) Service {
	return &portfolioService{src: src}
}

// summaryPageSize is the largest page the listings serve.
const summaryPageSize = pagination.MaxPerPage

// collect pages through a listing until every item has been mapped.
func collect[T, S any](
	ctx context.Context,
	list func(context.Context, pagination.Params) (*pagination.Page[T], error),
	fn func(T) S,
) ([]S, error) {
	out := []S{}
	for p := (pagination.Params{Page: 1, PerPage: summaryPageSize}); ; p.Page++ {
		page, err := list(ctx, p)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Data {
			out = append(out, fn(item))
		}
		if len(page.Data) == 0 || p.Page >= page.TotalPages {
			return out, nil
		}
	}
}

func (s *portfolioService) Summary(ctx context.Context) (*model.Summary, error) {
	sum := &model.Summary{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		sum.Skills, err = collect(ctx,
			func(ctx context.Context, p pagination.Params) (*pagination.Page[*skillmodel.PublicSkill], error) {
				return s.src.Skills.ListPublic(ctx, skillmodel.SkillFilter{}, p)
			},
			func(x *skillmodel.PublicSkill) model.SkillSummary {
				return model.SkillSummary{ID: x.ID, Name: x.Name, Level: x.Level}
			})
		return err
	})

	g.Go(func() (err error) {
		sum.Projects, err = collect(ctx,
			func(ctx context.Context, p pagination.Params) (*pagination.Page[*projectmodel.PublicProject], error) {
				return s.src.Projects.ListPublic(ctx, projectmodel.ProjectFilter{}, p)
			},
			func(x *projectmodel.PublicProject) model.ProjectSummary {
				return model.ProjectSummary{ID: x.ID, Title: x.Title, Description: x.Description, ImageURL: x.ImageURL}
			})
		return err
	})

	g.Go(func() (err error) {
		sum.Education, err = collect(ctx,
			func(ctx context.Context, p pagination.Params) (*pagination.Page[*edumodel.PublicEducation], error) {
				return s.src.Education.ListPublic(ctx, edumodel.EducationFilter{}, p)
			},
			func(x *edumodel.PublicEducation) model.EducationSummary {
				return model.EducationSummary{
					ID: x.ID, Degree: x.Degree, Institution: x.Institution, StartDate: x.StartDate, EndDate: x.EndDate,
				}
			})
		return err
	})

	g.Go(func() (err error) {
		sum.Experience, err = collect(ctx,
			func(ctx context.Context, p pagination.Params) (*pagination.Page[*expmodel.PublicExperience], error) {
				return s.src.Experience.ListPublic(ctx, expmodel.ExperienceFilter{}, p)
			},
			func(x *expmodel.PublicExperience) model.ExperienceSummary {
				return model.ExperienceSummary{ID: x.ID, Position: x.Position, Company: x.Company, Duration: x.Duration}
			})
		return err
	})

	g.Go(func() (err error) {
		sum.Certificates, err = collect(ctx,
			func(ctx context.Context, p pagination.Params) (*pagination.Page[*certmodel.PublicCertificate], error) {
				return s.src.Certificates.ListPublic(ctx, certmodel.CertificateFilter{Sort: certmodel.SortIssueDate}, p)
			},
			func(x *certmodel.PublicCertificate) model.CertificateSummary {
				return model.CertificateSummary{ID: x.ID, Name: x.Name, Issuer: x.Issuer, IssueDate: x.IssueDate}
			})
		return err
	})

	g.Go(func() (err error) {
		sum.Blog, err = collect(ctx,
			func(ctx context.Context, p pagination.Params) (*pagination.Page[*blogmodel.PublicBlogPost], error) {
				return s.src.Blog.ListPublic(ctx, blogmodel.BlogPostFilter{}, p)
			},
			func(x *blogmodel.PublicBlogPost) model.BlogSummary {
				return model.BlogSummary{ID: x.ID, Title: x.Title, Slug: x.Slug, Excerpt: x.Excerpt, Date: x.Date}
			})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sum, nil
}
