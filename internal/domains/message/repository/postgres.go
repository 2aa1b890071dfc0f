package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/message/model"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

const messageColumns = `id, name, email, subject, message, platform, read, created_at, updated_at`

type postgresMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &postgresMessageRepository{pool: pool}
}

func scanMessage(row pgx.Row) (*model.Message, error) {
	m := &model.Message{}
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Platform, &m.Read, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *postgresMessageRepository) Create(ctx context.Context, m *model.Message) error {
	query := `
		INSERT INTO messages (` + messageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.Platform, m.Read, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *postgresMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	m, err := scanMessage(r.pool.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return m, nil
}

// SetRead only moves updated_at when the flag actually flips.
func (r *postgresMessageRepository) SetRead(ctx context.Context, id uuid.UUID, read bool) (*model.Message, error) {
	query := `
		UPDATE messages SET
			read = $2,
			updated_at = CASE WHEN read = $2 THEN updated_at ELSE GREATEST(NOW(), updated_at + INTERVAL '1 microsecond') END
		WHERE id = $1
		RETURNING ` + messageColumns

	m, err := scanMessage(r.pool.QueryRow(ctx, query, id, read))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to mark message: %w", err)
	}
	return m, nil
}

func (r *postgresMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMessageNotFound
	}
	return nil
}

func (r *postgresMessageRepository) List(
	ctx context.Context,
	filter model.MessageFilter,
	page pagination.Params,
) ([]*model.Message, int64, error) {
	where := utils.NewWhereBuilder().
		AddIf(filter.Read != nil, "read = ?", filter.Read).
		Search(filter.Search, "name", "email", "subject", "message")

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM messages`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	query := `SELECT ` + messageColumns + ` FROM messages` + where.SQL() +
		` ORDER BY created_at DESC` + where.LimitOffset(page.Limit(), page.Offset())

	rows, err := r.pool.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}
	messages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Message, error) {
		return scanMessage(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan messages: %w", err)
	}
	return messages, total, nil
}
