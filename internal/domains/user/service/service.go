package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/domains/user/repository"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/middleware"
)

// TokenIssuer mints session tokens for an identity id.
type TokenIssuer interface {
	Issue(identityID string) (string, time.Time, error)
}

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portfolio-dummy-password"), bcrypt.DefaultCost)

type userService struct {
	repo   repository.Repository
	tokens TokenIssuer
	cost   int
	now    func() time.Time
}

func NewUserService(repo repository.Repository, tokens TokenIssuer) Service {
	return &userService{repo: repo, tokens: tokens, cost: bcrypt.DefaultCost, now: time.Now}
}

func (s *userService) Login(ctx context.Context, in *model.LoginInput) (*model.LoginResult, error) {
	// 1. Validate input
	if err := in.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	// 2. Find an admin with that email; other roles never authenticate here
	u, err := s.repo.FindByEmailAndRole(ctx, strings.TrimSpace(*in.Email), model.RoleAdmin)
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}

	// 3. Verify password, constant-time inside bcrypt
	hash := dummyHash
	if u != nil {
		hash = []byte(u.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(*in.Password)) != nil || u == nil {
		return nil, model.NewInvalidCredentialsError()
	}

	// 4. Issue token
	token, expiresAt, err := s.tokens.Issue(u.ID.String())
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}

	return &model.LoginResult{Token: token, ExpiresAt: expiresAt, User: u.ToPublic()}, nil
}

func (s *userService) ResolveIdentity(ctx context.Context, id uuid.UUID) (*middleware.Principal, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &middleware.Principal{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}, nil
}

func (s *userService) EnsureAdmin(ctx context.Context, seed *model.AdminSeed) (bool, error) {
	seed = &model.AdminSeed{
		Username: strings.TrimSpace(seed.Username),
		Email:    strings.TrimSpace(seed.Email),
		Password: seed.Password,
	}
	if err := seed.Validate(); err != nil {
		return false, apperror.Validation(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), s.cost)
	if err != nil {
		return false, apperror.Upstream(apperror.CodeInternal, fmt.Errorf("failed to hash password: %w", err))
	}

	created, err := s.repo.CreateAdminIfAbsent(ctx, &model.User{
		ID:           uuid.New(),
		Username:     seed.Username,
		Email:        seed.Email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsVerified:   true,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return false, apperror.Upstream(apperror.CodeInternal, err)
	}
	return created, nil
}
