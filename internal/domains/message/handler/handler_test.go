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

	"portfolio-backend/internal/domains/message/model"
	"portfolio-backend/internal/shared/pagination"
)

type stubService struct {
	submitted *model.ContactInput
	markedAs  *bool
}

func (s *stubService) Submit(_ context.Context, in *model.ContactInput) (*model.Receipt, error) {
	s.submitted = in
	return &model.Receipt{ID: uuid.New(), CreatedAt: time.Now()}, nil
}

func (s *stubService) Get(_ context.Context, id uuid.UUID) (*model.Message, error) {
	return &model.Message{ID: id}, nil
}

func (s *stubService) MarkRead(_ context.Context, id uuid.UUID, read bool) (*model.Message, error) {
	s.markedAs = &read
	return &model.Message{ID: id, Read: read}, nil
}

func (s *stubService) Delete(context.Context, uuid.UUID) error { return nil }

func (s *stubService) List(_ context.Context, _ model.MessageFilter, page pagination.Params) (*pagination.Page[*model.Message], error) {
	return pagination.NewPage[*model.Message](nil, 0, page), nil
}

func newRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMessageHandler(svc)
	r := gin.New()
	r.POST("/api/messages", h.Submit)
	r.GET("/api/messages", h.List)
	r.PUT("/api/messages/:id/read", h.MarkRead)
	return r
}

func TestSubmitReturnsCreated(t *testing.T) {
	svc := &stubService{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/messages",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")

	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.submitted)
	assert.Equal(t, "Ada", *svc.submitted.Name)
	assert.Nil(t, svc.submitted.Subject)
}

func TestMarkReadDefaultsToTrue(t *testing.T) {
	svc := &stubService{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/messages/"+uuid.NewString()+"/read", nil)

	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.markedAs)
	assert.True(t, *svc.markedAs)
}

func TestMarkUnread(t *testing.T) {
	svc := &stubService{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/messages/"+uuid.NewString()+"/read", strings.NewReader(`{"read":false}`))
	req.Header.Set("Content-Type", "application/json")

	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body model.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Read)
	assert.False(t, *svc.markedAs)
}

func TestListRejectsBadReadFilter(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/messages?read=maybe", nil)

	newRouter(&stubService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
