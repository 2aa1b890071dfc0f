package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

const projectColumns = `id, title, description, link, technologies, status, featured, image_url,
	created_by, created_at, updated_at`

type postgresProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &postgresProjectRepository{pool: pool}
}

func scanProject(row pgx.Row) (*model.Project, error) {
	p := &model.Project{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Link,
		&p.Technologies,
		&p.Status,
		&p.Featured,
		&p.ImageURL,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return p, err
}

func (r *postgresProjectRepository) Create(ctx context.Context, p *model.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Link, p.Technologies, p.Status, p.Featured, p.ImageURL,
		p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *postgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

func (r *postgresProjectRepository) Update(ctx context.Context, p *model.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, link = $4, technologies = $5,
			status = $6, featured = $7, image_url = $8, updated_at = $9
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Link, p.Technologies, p.Status, p.Featured, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

func (r *postgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

func (r *postgresProjectRepository) List(
	ctx context.Context,
	filter model.ProjectFilter,
	page pagination.Params,
) ([]*model.Project, int64, error) {
	where := utils.NewWhereBuilder().
		AddIf(filter.Status != "", "status = ?", filter.Status).
		AddIf(filter.Featured != nil, "featured = ?", filter.Featured).
		Search(filter.Search, "title", "description", "array_to_string(technologies, ' ')")

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query := `SELECT ` + projectColumns + ` FROM projects` + where.SQL() +
		` ORDER BY created_at DESC` + where.LimitOffset(page.Limit(), page.Offset())

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*model.Project, 0, page.Limit())
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, total, nil
}
