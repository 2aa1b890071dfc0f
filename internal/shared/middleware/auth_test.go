package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/response"
	jwtpkg "portfolio-backend/pkg/jwt"
)

type stubIdentities map[uuid.UUID]*Principal

func (s stubIdentities) ResolveIdentity(_ context.Context, id uuid.UUID) (*Principal, error) {
	return s[id], nil
}

type failingIdentities struct{}

func (failingIdentities) ResolveIdentity(context.Context, uuid.UUID) (*Principal, error) {
	return nil, errors.New("connection refused")
}

func newGatedRouter(auth *Authenticator, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", auth.Require(roles...), func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": p.Username, "user_id": c.GetString("user_id")})
	})
	return r
}

func call(r http.Handler, header string) (*httptest.ResponseRecorder, response.ErrorBody) {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body response.ErrorBody
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRequireAdmin(t *testing.T) {
	manager := jwtpkg.NewManager("test-secret", time.Hour)
	adminID := uuid.New()
	userID := uuid.New()
	ghostID := uuid.New()
	identities := stubIdentities{
		adminID: {ID: adminID, Username: "admin", Role: RoleAdmin},
		userID:  {ID: userID, Username: "reader", Role: "user"},
	}
	auth := NewAuthenticator(manager, identities)
	r := newGatedRouter(auth, RoleAdmin)

	issue := func(id uuid.UUID) string {
		tok, _, err := manager.Issue(id.String())
		require.NoError(t, err)
		return tok
	}

	t.Run("admin passes", func(t *testing.T) {
		w, _ := call(r, "Bearer "+issue(adminID))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"admin"`)
		assert.Contains(t, w.Body.String(), adminID.String())
	})

	t.Run("scheme is case insensitive", func(t *testing.T) {
		w, _ := call(r, "bearer "+issue(adminID))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		w, body := call(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperror.CodeTokenMissing, body.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w, body := call(r, "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperror.CodeTokenInvalid, body.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w, body := call(r, "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperror.CodeTokenInvalid, body.Code)
	})

	t.Run("unknown identity", func(t *testing.T) {
		w, body := call(r, "Bearer "+issue(ghostID))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperror.CodeIdentityNotFound, body.Code)
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		w, body := call(r, "Bearer "+issue(userID))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, apperror.CodeForbidden, body.Code)
	})
}

func TestRequireExpiredToken(t *testing.T) {
	id := uuid.New()
	past := jwtpkg.NewManager("test-secret", time.Hour).WithClock(func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	})
	tok, _, err := past.Issue(id.String())
	require.NoError(t, err)

	auth := NewAuthenticator(jwtpkg.NewManager("test-secret", time.Hour), stubIdentities{
		id: {ID: id, Role: RoleAdmin},
	})

	w, body := call(newGatedRouter(auth, RoleAdmin), "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeTokenExpired, body.Code)
}

func TestRequireIdentityLookupFailure(t *testing.T) {
	manager := jwtpkg.NewManager("test-secret", time.Hour)
	tok, _, err := manager.Issue(uuid.NewString())
	require.NoError(t, err)

	w, body := call(newGatedRouter(NewAuthenticator(manager, failingIdentities{})), "Bearer "+tok)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Equal(t, apperror.CodeInternal, body.Code)
}
