package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

const skillColumns = `id, name, level, category, years, description, icon, image_url,
	created_by, created_at, updated_at`

type postgresSkillRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSkillRepository(pool *pgxpool.Pool) SkillRepository {
	return &postgresSkillRepository{pool: pool}
}

func scanSkill(row pgx.Row) (*model.Skill, error) {
	s := &model.Skill{}
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Level,
		&s.Category,
		&s.Years,
		&s.Description,
		&s.Icon,
		&s.ImageURL,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

func (r *postgresSkillRepository) Create(ctx context.Context, s *model.Skill) error {
	query := `
		INSERT INTO skills (` + skillColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.Level, s.Category, s.Years, s.Description, s.Icon, s.ImageURL,
		s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

func (r *postgresSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`

	s, err := scanSkill(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return s, nil
}

func (r *postgresSkillRepository) Update(ctx context.Context, s *model.Skill) error {
	query := `
		UPDATE skills SET
			name = $2, level = $3, category = $4, years = $5,
			description = $6, icon = $7, image_url = $8, updated_at = $9
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.Level, s.Category, s.Years, s.Description, s.Icon, s.ImageURL, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSkillNotFound
	}
	return nil
}

func (r *postgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSkillNotFound
	}
	return nil
}

func (r *postgresSkillRepository) List(
	ctx context.Context,
	filter model.SkillFilter,
	page pagination.Params,
) ([]*model.Skill, int64, error) {
	where := utils.NewWhereBuilder().
		AddIf(filter.Category != "", "category = ?", filter.Category).
		AddIf(filter.Level != "", "level = ?", filter.Level).
		Search(filter.Search, "name", "description")

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM skills`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count skills: %w", err)
	}

	query := `SELECT ` + skillColumns + ` FROM skills` + where.SQL() +
		` ORDER BY created_at DESC` + where.LimitOffset(page.Limit(), page.Offset())

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := make([]*model.Skill, 0, page.Limit())
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate skills: %w", err)
	}

	return skills, total, nil
}
