package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/blog/repository"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

type blogService struct {
	repo   repository.BlogRepository
	assets storage.Assets
}

func NewBlogService(repo repository.BlogRepository, assets storage.Assets) ServiceInterface {
	return &blogService{repo: repo, assets: assets}
}

// =====================================================
// SLUGS
// =====================================================

// uniqueSlug returns base, or base-1, base-2, ... for the first candidate no
// other post holds.
func (s *blogService) uniqueSlug(ctx context.Context, base string, self uuid.UUID) (string, error) {
	for n := 0; ; n++ {
		candidate := utils.SlugCandidate(base, n)
		taken, err := s.repo.SlugExists(ctx, candidate, self)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// writeWithSlug runs write under a unique slug, picking again when a
// concurrent writer claims it first.
func (s *blogService) writeWithSlug(
	ctx context.Context,
	post *model.BlogPost,
	base string,
	write func(context.Context, *model.BlogPost) error,
) error {
	var err error
	for attempt := 0; attempt < model.MaxSlugAttempts; attempt++ {
		post.Slug, err = s.uniqueSlug(ctx, base, post.ID)
		if err != nil {
			return err
		}
		err = write(ctx, post)
		if !errors.Is(err, model.ErrSlugTaken) {
			return err
		}
	}
	return err
}

// =====================================================
// ADMIN OPERATIONS
// =====================================================

func (s *blogService) Create(
	ctx context.Context,
	author model.Author,
	in *model.BlogPostInput,
	image *storage.File,
) (*model.BlogPost, error) {
	if err := in.ValidateCreate(); err != nil {
		return nil, apperror.Validation(err)
	}

	post := in.NewBlogPost(author, utils.Now())

	if image != nil {
		ref, err := s.assets.Store(ctx, image, model.AssetCategory)
		if err != nil {
			return nil, err
		}
		post.ImageURL = ref
	}

	if err := s.writeWithSlug(ctx, post, post.Slug, s.repo.Create); err != nil {
		if image != nil {
			s.assets.Discard(ctx, post.ImageURL)
		}
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	return post, nil
}

func (s *blogService) Get(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return post, nil
}

func (s *blogService) Update(
	ctx context.Context,
	id uuid.UUID,
	in *model.BlogPostInput,
	image *storage.File,
) (*model.BlogPost, bool, error) {
	if err := in.ValidateUpdate(); err != nil {
		return nil, false, apperror.Validation(err)
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, mapRepoError(err)
	}
	previousImage := post.ImageURL
	previousTitle := post.Title

	changed := in.Apply(post)

	// the slug follows the title unless one is sent explicitly
	slugBase := ""
	if in.HasSlug() || post.Title != previousTitle {
		slugBase = in.SlugBase(post.Title)
		if slugBase != post.Slug {
			changed = true
		}
	}

	var newImage string
	if image != nil {
		newImage, err = s.assets.Store(ctx, image, model.AssetCategory)
		if err != nil {
			return nil, false, err
		}
		post.ImageURL = newImage
		changed = true
	}

	if !changed {
		return post, false, nil
	}

	post.UpdatedAt = utils.NextTimestamp(post.UpdatedAt)
	if slugBase != "" {
		err = s.writeWithSlug(ctx, post, slugBase, s.repo.Update)
	} else {
		err = s.repo.Update(ctx, post)
	}
	if err != nil {
		if newImage != "" {
			s.assets.Discard(ctx, newImage)
		}
		return nil, false, mapRepoError(err)
	}

	storage.ReleaseReplaced(ctx, s.assets, previousImage, post.ImageURL)
	return post, true, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}

	if post.ImageURL != "" {
		s.assets.Discard(ctx, post.ImageURL)
	}
	return nil
}

func (s *blogService) List(
	ctx context.Context,
	filter model.BlogPostFilter,
	page pagination.Params,
) (*pagination.Page[*model.BlogPost], error) {
	posts, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	return pagination.NewPage(posts, total, page), nil
}

// =====================================================
// PUBLIC OPERATIONS
// =====================================================

func (s *blogService) GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicBlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	s.countView(ctx, post)
	return post.ToPublic(s.assets.PublicURL), nil
}

func (s *blogService) GetPublicBySlug(ctx context.Context, slug string) (*model.PublicBlogPost, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err)
	}
	s.countView(ctx, post)
	return post.ToPublic(s.assets.PublicURL), nil
}

// countView increments the stored counter once; a failure leaves the read intact.
func (s *blogService) countView(ctx context.Context, post *model.BlogPost) {
	views, err := s.repo.IncrementViews(ctx, post.ID)
	if err != nil {
		logger.Warn("failed to count blog view", err, map[string]interface{}{"post_id": post.ID.String()})
		return
	}
	post.Views = views
}

func (s *blogService) ListPublic(
	ctx context.Context,
	filter model.BlogPostFilter,
	page pagination.Params,
) (*pagination.Page[*model.PublicBlogPost], error) {
	result, err := s.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return pagination.Map(result, func(p *model.BlogPost) *model.PublicBlogPost {
		return p.ToPublic(s.assets.PublicURL)
	}), nil
}

func (s *blogService) Like(ctx context.Context, id uuid.UUID) (*model.LikeResult, error) {
	likes, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return &model.LikeResult{ID: id, Likes: likes}, nil
}

// Categories lists distinct post categories, falling back to a fixed set.
func (s *blogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		logger.Warn("failed to list blog categories", err, nil)
	}
	if len(categories) == 0 {
		return append([]string(nil), model.FallbackCategories...), nil
	}
	return categories, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, model.ErrBlogPostNotFound) {
		return model.NewBlogPostNotFoundError()
	}
	return apperror.Upstream(apperror.CodeInternal, err)
}
