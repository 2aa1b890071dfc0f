package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/shared/middleware"
)

type Service interface {
	// Login authenticates an admin by email and password and issues a session token.
	Login(ctx context.Context, in *model.LoginInput) (*model.LoginResult, error)

	// ResolveIdentity backs the access gate: nil, nil when the id is unknown.
	ResolveIdentity(ctx context.Context, id uuid.UUID) (*middleware.Principal, error)

	// EnsureAdmin creates the first admin from seed and is a no-op once any admin exists.
	EnsureAdmin(ctx context.Context, seed *model.AdminSeed) (bool, error)
}
