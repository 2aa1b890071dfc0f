package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ok(context.Context) error   { return nil }
func down(context.Context) error { return errors.New("connection refused") }

type healthBody struct {
	Status   string            `json:"status"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
}

func check(t *testing.T, h *HealthHandler) (int, healthBody) {
	t.Helper()
	r := gin.New()
	r.GET("/api/health", h.Check)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var body healthBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealthAllUp(t *testing.T) {
	code, body := check(t, NewHealthHandler("1.2.3",
		Check{Name: "database", Critical: true, Ping: ok},
		Check{Name: "redis", Ping: ok},
	))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "1.2.3", body.Version)
	assert.Equal(t, map[string]string{"database": "ok", "redis": "ok"}, body.Services)
}

func TestHealthOptionalDependencyDown(t *testing.T) {
	code, body := check(t, NewHealthHandler("1.0.0",
		Check{Name: "database", Critical: true, Ping: ok},
		Check{Name: "redis", Ping: down},
	))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "unavailable", body.Services["redis"])
}

func TestHealthDatabaseDown(t *testing.T) {
	code, body := check(t, NewHealthHandler("1.0.0",
		Check{Name: "database", Critical: true, Ping: down},
	))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "unavailable", body.Services["database"])
}
