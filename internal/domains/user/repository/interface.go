package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/user/model"
)

// Repository reads identities. Absent rows return model.ErrUserNotFound.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// FindByEmailAndRole matches the email case-insensitively.
	FindByEmailAndRole(ctx context.Context, email, role string) (*model.User, error)
	// CreateAdminIfAbsent inserts u unless an admin already exists and reports whether it did.
	CreateAdminIfAbsent(ctx context.Context, u *model.User) (bool, error)
}
