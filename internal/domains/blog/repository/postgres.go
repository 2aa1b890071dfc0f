package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

const (
	blogColumns = `id, title, slug, content, excerpt, read_time, date, categories, featured,
	views, likes, author_name, image_url, created_by, created_at, updated_at`

	slugConstraint = "idx_blog_posts_slug"
)

type postgresBlogRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBlogRepository(pool *pgxpool.Pool) BlogRepository {
	return &postgresBlogRepository{pool: pool}
}

func scanBlogPost(row pgx.Row) (*model.BlogPost, error) {
	p := &model.BlogPost{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.Excerpt,
		&p.ReadTime,
		&p.Date,
		&p.Categories,
		&p.Featured,
		&p.Views,
		&p.Likes,
		&p.AuthorName,
		&p.ImageURL,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// slugConflict recognizes a unique violation on the slug index.
func slugConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == slugConstraint
}

func (r *postgresBlogRepository) Create(ctx context.Context, p *model.BlogPost) error {
	query := `
		INSERT INTO blog_posts (` + blogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.ReadTime, p.Date, p.Categories, p.Featured,
		p.Views, p.Likes, p.AuthorName, p.ImageURL, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if slugConflict(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

func (r *postgresBlogRepository) get(ctx context.Context, where string, arg interface{}) (*model.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE ` + where

	p, err := scanBlogPost(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return p, nil
}

func (r *postgresBlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *postgresBlogRepository) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return r.get(ctx, "slug = $1", slug)
}

// Update never writes views or likes, those only move through the increments.
func (r *postgresBlogRepository) Update(ctx context.Context, p *model.BlogPost) error {
	query := `
		UPDATE blog_posts SET
			title = $2, slug = $3, content = $4, excerpt = $5, read_time = $6, date = $7,
			categories = $8, featured = $9, image_url = $10, updated_at = $11
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.ReadTime, p.Date,
		p.Categories, p.Featured, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		if slugConflict(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBlogPostNotFound
	}
	return nil
}

func (r *postgresBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBlogPostNotFound
	}
	return nil
}

func (r *postgresBlogRepository) List(
	ctx context.Context,
	filter model.BlogPostFilter,
	page pagination.Params,
) ([]*model.BlogPost, int64, error) {
	where := utils.NewWhereBuilder().
		AddIf(filter.Category != "", "? = ANY(categories)", filter.Category).
		AddIf(filter.Featured != nil, "featured = ?", filter.Featured).
		Search(filter.Search, "title", "content")

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blog posts: %w", err)
	}

	query := `SELECT ` + blogColumns + ` FROM blog_posts` + where.SQL() +
		` ORDER BY date DESC, created_at DESC` + where.LimitOffset(page.Limit(), page.Offset())

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*model.BlogPost, 0, page.Limit())
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate blog posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresBlogRepository) SlugExists(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM blog_posts WHERE slug = $1 AND id <> $2)`,
		slug, exclude,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *postgresBlogRepository) increment(ctx context.Context, column string, id uuid.UUID) (int64, error) {
	query := fmt.Sprintf(`UPDATE blog_posts SET %[1]s = %[1]s + 1 WHERE id = $1 RETURNING %[1]s`, column)

	var n int64
	if err := r.pool.QueryRow(ctx, query, id).Scan(&n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrBlogPostNotFound
		}
		return 0, fmt.Errorf("failed to increment %s: %w", column, err)
	}
	return n, nil
}

func (r *postgresBlogRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.increment(ctx, "views", id)
}

func (r *postgresBlogRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.increment(ctx, "likes", id)
}

func (r *postgresBlogRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT c
		FROM blog_posts, unnest(categories) AS c
		WHERE c <> ''
		ORDER BY c
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog categories: %w", err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan blog categories: %w", err)
	}
	return categories, nil
}
