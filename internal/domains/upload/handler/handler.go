package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/request"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// GeneralCategory is the folder used by the entity-less upload endpoint.
const GeneralCategory = "general"

// FileField is the multipart field of the upload endpoints.
const FileField = "file"

// Store is the asset store as seen by the upload endpoints.
type Store interface {
	storage.Assets
	Open(ctx context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error)
}

type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type UploadHandler struct {
	store Store
}

func NewUploadHandler(store Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload stores a single file under category and returns its URL
// POST /api/upload, POST /api/<entity>/upload
func (h *UploadHandler) Upload(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, closeFile, err := request.UploadedFile(c, FileField)
		if err != nil {
			response.Error(c, err)
			return
		}
		defer closeFile()

		ref, err := h.store.Store(c.Request.Context(), file, category)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, UploadResult{URL: h.store.PublicURL(ref), Path: ref})
	}
}

// Serve streams a stored file
// GET /uploads/*filepath
func (h *UploadHandler) Serve(c *gin.Context) {
	key, err := storage.CleanKey(strings.TrimPrefix(c.Param("filepath"), "/"))
	if err != nil {
		response.Error(c, apperror.NotFound("File"))
		return
	}

	rc, info, err := h.store.Open(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			response.Error(c, apperror.NotFound("File"))
			return
		}
		logger.Warn("failed to open upload", err, map[string]interface{}{"key": key})
		response.Error(c, apperror.Upstream(apperror.CodeInternal, err))
		return
	}
	defer rc.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(key))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, info.Size, contentType, rc, map[string]string{
		"Cache-Control":          "public, max-age=86400",
		"X-Content-Type-Options": "nosniff",
		"Last-Modified":          info.ModTime.UTC().Format(http.TimeFormat),
		"Content-Disposition":    "inline; filename=" + strconv.Quote(path.Base(key)),
	})
}
