package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/education/model"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
)

type recordingService struct {
	input  *model.EducationInput
	filter model.EducationFilter
}

func (s *recordingService) Create(_ context.Context, _ uuid.UUID, in *model.EducationInput, _ *storage.File) (*model.Education, error) {
	s.input = in
	if err := in.ValidateCreate(); err != nil {
		return nil, apperror.Validation(err)
	}
	return &model.Education{ID: uuid.New(), Degree: *in.Degree, Institution: *in.Institution}, nil
}

func (s *recordingService) Get(context.Context, uuid.UUID) (*model.Education, error) {
	return &model.Education{}, nil
}

func (s *recordingService) Update(_ context.Context, id uuid.UUID, in *model.EducationInput, _ *storage.File) (*model.Education, bool, error) {
	s.input = in
	if err := in.ValidateUpdate(); err != nil {
		return nil, false, apperror.Validation(err)
	}
	return &model.Education{ID: id}, true, nil
}

func (s *recordingService) Delete(context.Context, uuid.UUID) error { return nil }

func (s *recordingService) List(_ context.Context, f model.EducationFilter, p pagination.Params) (*pagination.Page[*model.Education], error) {
	s.filter = f
	return pagination.NewPage[*model.Education](nil, 0, p), nil
}

func (s *recordingService) GetPublic(context.Context, uuid.UUID) (*model.PublicEducation, error) {
	return &model.PublicEducation{}, nil
}

func (s *recordingService) ListPublic(_ context.Context, f model.EducationFilter, p pagination.Params) (*pagination.Page[*model.PublicEducation], error) {
	s.filter = f
	return pagination.NewPage[*model.PublicEducation](nil, 0, p), nil
}

func newRouter(svc *recordingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewEducationHandler(svc)
	r := gin.New()
	r.GET("/api/education", h.List)
	r.POST("/api/education", h.Create)
	r.PUT("/api/education/:id", h.Update)
	return r
}

func post(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateParsesGPAAndCourses(t *testing.T) {
	svc := &recordingService{}

	w := post(newRouter(svc), http.MethodPost, "/api/education",
		`{"degree":"BSc","institution":"MIT","gpa":"3.85","courses":"Algorithms, Databases"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.input.GPA)
	assert.True(t, decimal.RequireFromString("3.85").Equal(*svc.input.GPA))
	assert.Equal(t, []string{"Algorithms", "Databases"}, svc.input.Courses)
}

func TestCreateRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "gpa not a number", body: `{"degree":"BSc","institution":"MIT","gpa":"abc"}`, field: "gpa"},
		{name: "gpa out of range", body: `{"degree":"BSc","institution":"MIT","gpa":12}`, field: "gpa"},
		{name: "overlong field of study", body: `{"degree":"BSc","institution":"MIT","field_of_study":"` + strings.Repeat("x", 300) + `"}`, field: "field_of_study"},
		{name: "foreign image", body: `{"degree":"BSc","institution":"MIT","image_url":"/uploads/blog/1_cover.png"}`, field: "image_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(newRouter(&recordingService{}), http.MethodPost, "/api/education", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.field)
		})
	}
}

func TestListFeaturedFilter(t *testing.T) {
	svc := &recordingService{}
	r := newRouter(svc)

	w := post(r, http.MethodGet, "/api/education?featured=false", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.filter.Featured)
	assert.False(t, *svc.filter.Featured)

	w = post(r, http.MethodGet, "/api/education?featured=sometimes", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
