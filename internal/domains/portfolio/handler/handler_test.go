package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/portfolio/model"
)

type stubService struct {
	summary *model.Summary
	err     error
}

func (s stubService) Summary(context.Context) (*model.Summary, error) { return s.summary, s.err }

func get(svc stubService) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/public/portfolio", NewPortfolioHandler(svc).Summary)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/portfolio", nil))
	return w
}

func TestSummary(t *testing.T) {
	w := get(stubService{summary: &model.Summary{
		Skills:       []model.SkillSummary{{ID: uuid.New(), Name: "Go", Level: "expert"}},
		Projects:     []model.ProjectSummary{},
		Education:    []model.EducationSummary{},
		Experience:   []model.ExperienceSummary{},
		Certificates: []model.CertificateSummary{},
		Blog:         []model.BlogSummary{},
	}})

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	for _, key := range []string{"skills", "projects", "education", "experience", "certificates", "blog"} {
		assert.Contains(t, got, key)
	}
	assert.JSONEq(t, `[]`, string(got["blog"]))
	assert.Contains(t, string(got["skills"]), `"name":"Go"`)
}

func TestSummaryFailureIsInternal(t *testing.T) {
	w := get(stubService{err: errors.New("pq: connection refused")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
