package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestErrorMapsKind(t *testing.T) {
	c, w := newContext()

	Error(c, apperror.NotFound("Project"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Project not found", body.Message)
	assert.Equal(t, apperror.CodeNotFound, body.Code)
	assert.True(t, c.IsAborted())
}

func TestErrorHidesUpstreamCause(t *testing.T) {
	c, w := newContext()

	Error(c, errors.New(`pq: relation "skills" does not exist`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestUpdatedNoChanges(t *testing.T) {
	c, w := newContext()

	Updated(c, "Skill updated", false, nil)

	var body UpdatedBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, StatusNoChanges, body.Status)
	assert.Equal(t, "No changes made", body.Message)
}

func TestPaginatedEnvelope(t *testing.T) {
	c, w := newContext()

	Paginated(c, pagination.NewPage([]string{"a"}, 11, pagination.Params{Page: 2, PerPage: 5}))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(11), body["total"])
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(5), body["per_page"])
	assert.Equal(t, float64(3), body["total_pages"])
	assert.Len(t, body["data"], 1)
}
