package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/education/model"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

const educationColumns = `id, degree, institution, field_of_study, start_date, end_date, description,
	courses, gpa, website, featured, image_url, created_by, created_at, updated_at`

type postgresEducationRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresEducationRepository(pool *pgxpool.Pool) EducationRepository {
	return &postgresEducationRepository{pool: pool}
}

func scanEducation(row pgx.Row) (*model.Education, error) {
	e := &model.Education{}
	err := row.Scan(
		&e.ID,
		&e.Degree,
		&e.Institution,
		&e.FieldOfStudy,
		&e.StartDate,
		&e.EndDate,
		&e.Description,
		&e.Courses,
		&e.GPA,
		&e.Website,
		&e.Featured,
		&e.ImageURL,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if e.Courses == nil {
		e.Courses = []string{}
	}
	return e, err
}

func (r *postgresEducationRepository) Create(ctx context.Context, e *model.Education) error {
	query := `
		INSERT INTO education (` + educationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Degree, e.Institution, e.FieldOfStudy, e.StartDate, e.EndDate, e.Description,
		e.Courses, e.GPA, e.Website, e.Featured, e.ImageURL, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create education: %w", err)
	}
	return nil
}

func (r *postgresEducationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Education, error) {
	e, err := scanEducation(r.pool.QueryRow(ctx, `SELECT `+educationColumns+` FROM education WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEducationNotFound
		}
		return nil, fmt.Errorf("failed to get education: %w", err)
	}
	return e, nil
}

func (r *postgresEducationRepository) Update(ctx context.Context, e *model.Education) error {
	query := `
		UPDATE education SET
			degree = $2, institution = $3, field_of_study = $4, start_date = $5, end_date = $6,
			description = $7, courses = $8, gpa = $9, website = $10, featured = $11,
			image_url = $12, updated_at = $13
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		e.ID, e.Degree, e.Institution, e.FieldOfStudy, e.StartDate, e.EndDate,
		e.Description, e.Courses, e.GPA, e.Website, e.Featured, e.ImageURL, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrEducationNotFound
	}
	return nil
}

func (r *postgresEducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrEducationNotFound
	}
	return nil
}

func (r *postgresEducationRepository) List(
	ctx context.Context,
	filter model.EducationFilter,
	page pagination.Params,
) ([]*model.Education, int64, error) {
	where := utils.NewWhereBuilder().
		AddIf(filter.Featured != nil, "featured = ?", filter.Featured).
		Search(filter.Search, "degree", "institution", "field_of_study")

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM education`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count education: %w", err)
	}

	query := `SELECT ` + educationColumns + ` FROM education` + where.SQL() +
		` ORDER BY start_date DESC, created_at DESC` + where.LimitOffset(page.Limit(), page.Offset())

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	items := make([]*model.Education, 0, page.Limit())
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan education: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate education: %w", err)
	}
	return items, total, nil
}
