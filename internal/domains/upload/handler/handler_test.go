package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/infrastructure/storage"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend, err := storage.NewLocalBackend(t.TempDir())
	require.NoError(t, err)
	store := storage.NewAssetStore(backend, []string{"png", "svg"}, 1<<20, "https://api.example.com")

	h := NewUploadHandler(store)
	r := gin.New()
	r.POST("/api/upload", h.Upload(GeneralCategory))
	r.POST("/api/skills/upload", h.Upload("skills"))
	r.GET("/uploads/*filepath", h.Serve)
	return r
}

func multipartUpload(t *testing.T, target, field, name, content string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadThenServe(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "/api/skills/upload", FileField, "logo.png", "png-bytes"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res UploadResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, strings.HasPrefix(res.Path, "/uploads/skills/"))
	assert.Equal(t, "https://api.example.com"+res.Path, res.URL)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, res.Path, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestUploadRejectsExtension(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, multipartUpload(t, "/api/upload", FileField, "run.exe", "MZ"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNSUPPORTED_FILE_TYPE")
}

func TestUploadWithoutFile(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, multipartUpload(t, "/api/upload", "other", "logo.png", "x"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeMissingAndTraversal(t *testing.T) {
	r := newRouter(t)

	for _, target := range []string{"/uploads/general/nope.png", "/uploads/..%2f..%2fetc%2fpasswd", "/uploads/"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, target)
	}
}
