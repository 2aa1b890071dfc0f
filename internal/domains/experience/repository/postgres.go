package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/experience/model"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

const experienceColumns = `id, position, company, duration, location, description, technologies,
	responsibilities, website, featured, image_url, created_by, created_at, updated_at`

type postgresExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresExperienceRepository(pool *pgxpool.Pool) ExperienceRepository {
	return &postgresExperienceRepository{pool: pool}
}

func scanExperience(row pgx.Row) (*model.Experience, error) {
	e := &model.Experience{}
	err := row.Scan(
		&e.ID,
		&e.Position,
		&e.Company,
		&e.Duration,
		&e.Location,
		&e.Description,
		&e.Technologies,
		&e.Responsibilities,
		&e.Website,
		&e.Featured,
		&e.ImageURL,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if e.Technologies == nil {
		e.Technologies = []string{}
	}
	if e.Responsibilities == nil {
		e.Responsibilities = []string{}
	}
	return e, err
}

func (r *postgresExperienceRepository) Create(ctx context.Context, e *model.Experience) error {
	query := `
		INSERT INTO experiences (` + experienceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Position, e.Company, e.Duration, e.Location, e.Description, e.Technologies,
		e.Responsibilities, e.Website, e.Featured, e.ImageURL, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

func (r *postgresExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Experience, error) {
	e, err := scanExperience(r.pool.QueryRow(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return e, nil
}

func (r *postgresExperienceRepository) Update(ctx context.Context, e *model.Experience) error {
	query := `
		UPDATE experiences SET
			position = $2, company = $3, duration = $4, location = $5, description = $6,
			technologies = $7, responsibilities = $8, website = $9, featured = $10,
			image_url = $11, updated_at = $12
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		e.ID, e.Position, e.Company, e.Duration, e.Location, e.Description,
		e.Technologies, e.Responsibilities, e.Website, e.Featured, e.ImageURL, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrExperienceNotFound
	}
	return nil
}

func (r *postgresExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrExperienceNotFound
	}
	return nil
}

func (r *postgresExperienceRepository) List(
	ctx context.Context,
	filter model.ExperienceFilter,
	page pagination.Params,
) ([]*model.Experience, int64, error) {
	where := utils.NewWhereBuilder().
		AddIf(filter.Featured != nil, "featured = ?", filter.Featured).
		Search(filter.Search, "position", "company", "description")

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM experiences`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count experiences: %w", err)
	}

	query := `SELECT ` + experienceColumns + ` FROM experiences` + where.SQL() +
		` ORDER BY created_at DESC` + where.LimitOffset(page.Limit(), page.Offset())

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	items := make([]*model.Experience, 0, page.Limit())
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan experience: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate experiences: %w", err)
	}
	return items, total, nil
}
