package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/response"
	jwtpkg "portfolio-backend/pkg/jwt"
)

const (
	RoleAdmin = "admin"

	contextKeyUserID    = "user_id"
	contextKeyPrincipal = "principal"
)

// Principal is the resolved caller of a gated request.
type Principal struct {
	ID       uuid.UUID
	Username string
	Email    string
	Role     string
}

// TokenVerifier checks a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// IdentityResolver loads the identity behind a token subject. (nil, nil) means absent.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, id uuid.UUID) (*Principal, error)
}

// Authenticator is the access gate in front of protected routes.
type Authenticator struct {
	tokens     TokenVerifier
	identities IdentityResolver
}

func NewAuthenticator(tokens TokenVerifier, identities IdentityResolver) *Authenticator {
	return &Authenticator{tokens: tokens, identities: identities}
}

// Require rejects the request unless the bearer token resolves to an identity
// whose role is in roles. An empty roles list only requires authentication.
func (a *Authenticator) Require(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := a.authenticate(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		if len(roles) > 0 && !hasRole(principal.Role, roles) {
			response.Error(c, apperror.Forbidden("Insufficient permissions"))
			return
		}

		c.Set(contextKeyUserID, principal.ID.String())
		c.Set(contextKeyPrincipal, principal)
		c.Next()
	}
}

func (a *Authenticator) authenticate(c *gin.Context) (*Principal, error) {
	token, err := bearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return nil, err
	}

	subject, err := a.tokens.Verify(token)
	if err != nil {
		return nil, tokenError(err)
	}

	id, err := uuid.Parse(subject)
	if err != nil {
		return nil, apperror.Unauthenticated(apperror.CodeTokenInvalid, "Invalid token")
	}

	principal, err := a.identities.ResolveIdentity(c.Request.Context(), id)
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	if principal == nil {
		return nil, apperror.Unauthenticated(apperror.CodeIdentityNotFound, "User not found")
	}
	return principal, nil
}

// bearerToken extracts the token from "Bearer <token>".
func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", apperror.Unauthenticated(apperror.CodeTokenMissing, "Token is missing")
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", apperror.Unauthenticated(apperror.CodeTokenInvalid, "Invalid authorization header format")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", apperror.Unauthenticated(apperror.CodeTokenMissing, "Token is missing")
	}
	return token, nil
}

func tokenError(err error) error {
	switch {
	case errors.Is(err, jwtpkg.ErrTokenExpired):
		return apperror.Unauthenticated(apperror.CodeTokenExpired, "Token has expired")
	case errors.Is(err, jwtpkg.ErrTokenMissing):
		return apperror.Unauthenticated(apperror.CodeTokenMissing, "Token is missing")
	default:
		return apperror.Unauthenticated(apperror.CodeTokenInvalid, "Invalid token")
	}
}

func hasRole(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// CurrentPrincipal returns the identity attached by Require.
func CurrentPrincipal(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(contextKeyPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// CurrentUserID returns the id of the gated caller, uuid.Nil on public routes.
func CurrentUserID(c *gin.Context) uuid.UUID {
	if p, ok := CurrentPrincipal(c); ok {
		return p.ID
	}
	return uuid.Nil
}
