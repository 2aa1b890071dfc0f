package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/pagination"
)

type recordingService struct {
	input     *model.ProjectInput
	imageName string
	filter    model.ProjectFilter
	page      pagination.Params
}

func (s *recordingService) Create(_ context.Context, _ uuid.UUID, in *model.ProjectInput, image *storage.File) (*model.Project, error) {
	s.input = in
	if image != nil {
		s.imageName = image.Name
	}
	return &model.Project{ID: uuid.New(), Title: *in.Title}, nil
}

func (s *recordingService) Get(context.Context, uuid.UUID) (*model.Project, error) {
	return &model.Project{}, nil
}

func (s *recordingService) Update(_ context.Context, id uuid.UUID, in *model.ProjectInput, _ *storage.File) (*model.Project, bool, error) {
	s.input = in
	return &model.Project{ID: id}, false, nil
}

func (s *recordingService) Delete(context.Context, uuid.UUID) error { return nil }

func (s *recordingService) List(_ context.Context, f model.ProjectFilter, p pagination.Params) (*pagination.Page[*model.Project], error) {
	s.filter, s.page = f, p
	return pagination.NewPage[*model.Project](nil, 0, p), nil
}

func (s *recordingService) GetPublic(context.Context, uuid.UUID) (*model.PublicProject, error) {
	return &model.PublicProject{}, nil
}

func (s *recordingService) ListPublic(_ context.Context, f model.ProjectFilter, p pagination.Params) (*pagination.Page[*model.PublicProject], error) {
	s.filter, s.page = f, p
	return pagination.NewPage[*model.PublicProject](nil, 0, p), nil
}

func newRouter(svc *recordingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProjectHandler(svc)
	r := gin.New()
	r.GET("/api/projects", h.List)
	r.POST("/api/projects", h.Create)
	r.GET("/api/projects/:id", h.Get)
	r.PUT("/api/projects/:id", h.Update)
	return r
}

func TestCreateFromJSON(t *testing.T) {
	svc := &recordingService{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		strings.NewReader(`{"title":"Portfolio","description":"Site","technologies":["Go","React"],"featured":true}`))
	req.Header.Set("Content-Type", "application/json")

	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"Go", "React"}, svc.input.Technologies)
	require.NotNil(t, svc.input.Featured)
	assert.True(t, *svc.input.Featured)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["id"])
}

func TestCreateFromMultipart(t *testing.T) {
	svc := &recordingService{}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Portfolio"))
	require.NoError(t, mw.WriteField("description", "Site"))
	require.NoError(t, mw.WriteField("technologies[]", "Go"))
	require.NoError(t, mw.WriteField("technologies[]", "Gin"))
	fw, err := mw.CreateFormFile("image", "cover.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("png"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/projects", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"Go", "Gin"}, svc.input.Technologies)
	assert.Equal(t, "cover.png", svc.imageName)
}

func TestCreateRejectsWrongTypes(t *testing.T) {
	svc := &recordingService{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{"title":"A","featured":"maybe"}`))
	req.Header.Set("Content-Type", "application/json")

	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "featured")
	assert.Nil(t, svc.input)
}

func TestMalformedIDIsBadRequest(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(&recordingService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}

func TestUpdateNoChangesStatus(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/projects/"+uuid.NewString(), strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	newRouter(&recordingService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"no_changes"`)
}

func TestListQueryParsing(t *testing.T) {
	svc := &recordingService{}

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects?page=2&per_page=5&featured=true&search=api", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pagination.Params{Page: 2, PerPage: 5}, svc.page)
	require.NotNil(t, svc.filter.Featured)
	assert.Equal(t, "api", svc.filter.Search)
	assert.Contains(t, w.Body.String(), `"total_pages":0`)

	w = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects?page=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
