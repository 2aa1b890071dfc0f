package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/shared/pagination"
)

// BlogRepository persists posts. Create and Update return model.ErrSlugTaken when
// the slug index rejects the write.
type BlogRepository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	Update(ctx context.Context, post *model.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.BlogPostFilter, page pagination.Params) ([]*model.BlogPost, int64, error)

	// SlugExists ignores the post identified by exclude (uuid.Nil for none).
	SlugExists(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)

	// IncrementViews and IncrementLikes are single atomic statements returning the new count.
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)
	IncrementLikes(ctx context.Context, id uuid.UUID) (int64, error)

	Categories(ctx context.Context) ([]string, error)
}
