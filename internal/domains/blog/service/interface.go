package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/pagination"
)

type ServiceInterface interface {
	// Create derives slug, excerpt and read time, then inserts under a unique slug.
	Create(ctx context.Context, author model.Author, in *model.BlogPostInput, image *storage.File) (*model.BlogPost, error)
	Get(ctx context.Context, id uuid.UUID) (*model.BlogPost, error)
	Update(ctx context.Context, id uuid.UUID, in *model.BlogPostInput, image *storage.File) (*model.BlogPost, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.BlogPostFilter, page pagination.Params) (*pagination.Page[*model.BlogPost], error)

	// GetPublic and GetPublicBySlug count one view per call.
	GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicBlogPost, error)
	GetPublicBySlug(ctx context.Context, slug string) (*model.PublicBlogPost, error)
	ListPublic(ctx context.Context, filter model.BlogPostFilter, page pagination.Params) (*pagination.Page[*model.PublicBlogPost], error)
	Like(ctx context.Context, id uuid.UUID) (*model.LikeResult, error)
	Categories(ctx context.Context) ([]string, error)
}
