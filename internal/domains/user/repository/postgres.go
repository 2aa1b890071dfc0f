package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/pkg/database"
)

// adminBootstrapLock serialises concurrent bootstraps across processes.
const adminBootstrapLock = 7310411

const userColumns = `id, username, email, password_hash, role, is_verified, created_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) findOne(ctx context.Context, where string, args ...interface{}) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, args...).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsVerified,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *postgresRepository) FindByEmailAndRole(ctx context.Context, email, role string) (*model.User, error) {
	return r.findOne(ctx, "LOWER(email) = LOWER($1) AND role = $2", email, role)
}

func (r *postgresRepository) CreateAdminIfAbsent(ctx context.Context, u *model.User) (bool, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, adminBootstrapLock); err != nil {
			return false, fmt.Errorf("failed to lock admin bootstrap: %w", err)
		}

		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`, model.RoleAdmin,
		).Scan(&exists); err != nil {
			return false, fmt.Errorf("failed to check admin: %w", err)
		}
		if exists {
			return false, nil
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO users (id, username, email, password_hash, role, is_verified, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			u.ID, u.Username, u.Email, u.PasswordHash, model.RoleAdmin, u.IsVerified, u.CreatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to create admin: %w", err)
		}
		return true, nil
	})
}
