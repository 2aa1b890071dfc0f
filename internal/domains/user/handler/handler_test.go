package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
)

type stubService struct {
	calls int
}

func (s *stubService) Login(_ context.Context, in *model.LoginInput) (*model.LoginResult, error) {
	s.calls++
	if err := in.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}
	if *in.Email != "admin@example.com" || *in.Password != "correct horse" {
		return nil, model.NewInvalidCredentialsError()
	}
	return &model.LoginResult{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		User:      model.PublicUser{ID: uuid.New(), Username: "admin", Email: *in.Email, Role: "admin"},
	}, nil
}

func (s *stubService) ResolveIdentity(context.Context, uuid.UUID) (*middleware.Principal, error) {
	return nil, nil
}

func (s *stubService) EnsureAdmin(context.Context, *model.AdminSeed) (bool, error) { return false, nil }

func login(svc *stubService, contentType, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/login", NewUserHandler(svc).Login)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	w := login(&stubService{}, "application/json", `{"email":"admin@example.com","password":"correct horse"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var got model.LoginResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "signed.jwt.token", got.Token)
	assert.Equal(t, "admin", got.User.Role)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginAcceptsFormBody(t *testing.T) {
	w := login(&stubService{}, "application/x-www-form-urlencoded", "email=admin%40example.com&password=correct+horse")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	w := login(&stubService{}, "application/json", `{"email":"admin@example.com","password":"nope"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeInvalidCreds, body.Code)
}

func TestLoginMissingFields(t *testing.T) {
	w := login(&stubService{}, "application/json", `{"email":"admin@example.com"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password")
}

func TestLoginRejectsNonStringEmail(t *testing.T) {
	svc := &stubService{}
	w := login(svc, "application/json", `{"email":["a@b.c"],"password":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestLoginMalformedJSON(t *testing.T) {
	svc := &stubService{}
	w := login(svc, "application/json", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}
