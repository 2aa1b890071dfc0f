package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

// URLPrefix is the path every asset reference starts with.
const URLPrefix = "/uploads/"

const maxBaseNameLength = 50

// File is an incoming upload.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// AssetStore validates, names and persists uploaded images and hands out
// references of the form /uploads/<category>/<file>.
type AssetStore struct {
	backend       Backend
	allowed       map[string]struct{}
	maxSize       int64
	publicBaseURL string
}

func NewAssetStore(backend Backend, allowedExtensions []string, maxSize int64, publicBaseURL string) *AssetStore {
	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			allowed[ext] = struct{}{}
		}
	}
	return &AssetStore{
		backend:       backend,
		allowed:       allowed,
		maxSize:       maxSize,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// AllowedExtensions returns the allow-list, sorted.
func (s *AssetStore) AllowedExtensions() []string {
	out := make([]string, 0, len(s.allowed))
	for ext := range s.allowed {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Store persists f under category and returns its reference.
// Only the extension is checked, content is not sniffed.
func (s *AssetStore) Store(ctx context.Context, f *File, category string) (string, error) {
	if f == nil || f.Reader == nil || strings.TrimSpace(f.Name) == "" {
		return "", apperror.BadRequest(apperror.CodeBadRequest, "No file provided")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(f.Name), "."))
	if _, ok := s.allowed[ext]; !ok {
		return "", apperror.BadRequest(apperror.CodeUnsupportedType,
			"File type not allowed. Allowed types: "+strings.Join(s.AllowedExtensions(), ", "))
	}
	if s.maxSize > 0 && f.Size > s.maxSize {
		return "", apperror.BadRequest(apperror.CodeFileTooLarge,
			fmt.Sprintf("File exceeds the %d MB limit", s.maxSize>>20))
	}

	key := cleanCategory(category) + "/" + uniqueName(f.Name, ext)

	if err := s.backend.Put(ctx, key, f.Reader, f.Size, f.ContentType); err != nil {
		return "", apperror.Upstream(apperror.CodeUploadFailed, err)
	}

	logger.Info("asset stored", map[string]interface{}{"key": key, "size": f.Size})
	return URLPrefix + key, nil
}

// Delete removes the object behind ref. Foreign or empty references are ignored,
// a missing object is not an error.
func (s *AssetStore) Delete(ctx context.Context, ref string) error {
	key, ok := KeyFromRef(ref)
	if !ok {
		return nil
	}
	return s.backend.Delete(ctx, key)
}

// Discard is Delete with failures logged instead of returned.
func (s *AssetStore) Discard(ctx context.Context, ref string) {
	if err := s.Delete(ctx, ref); err != nil {
		logger.Warn("failed to delete asset", err, map[string]interface{}{"ref": ref})
	}
}

// Open streams a stored object by key.
func (s *AssetStore) Open(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error) {
	return s.backend.Open(ctx, key)
}

// PublicURL expands a reference into an absolute URL. External URLs pass through.
func (s *AssetStore) PublicURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return s.publicBaseURL + ref
}

// KeyFromRef extracts the backend key from a /uploads/... reference.
func KeyFromRef(ref string) (string, bool) {
	if !strings.HasPrefix(ref, URLPrefix) {
		return "", false
	}
	key, err := CleanKey(strings.TrimPrefix(ref, URLPrefix))
	if err != nil {
		return "", false
	}
	return key, true
}

func cleanCategory(category string) string {
	c := utils.GenerateSlug(category)
	if c == "post" && !strings.EqualFold(strings.TrimSpace(category), "post") {
		return "general"
	}
	return c
}

// uniqueName never uses the caller's name alone: "<uuid>_<slugged base>.<ext>".
func uniqueName(original, ext string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = utils.GenerateSlug(base)
	if len(base) > maxBaseNameLength {
		base = strings.TrimRight(base[:maxBaseNameLength], "-")
	}
	return uuid.NewString() + "_" + base + "." + ext
}

// Assets is the part of the asset store entity services depend on.
type Assets interface {
	Store(ctx context.Context, f *File, category string) (string, error)
	Discard(ctx context.Context, ref string)
	PublicURL(ref string) string
}

var _ Assets = (*AssetStore)(nil)

// ReleaseReplaced discards previous once a write has moved the owner to current.
func ReleaseReplaced(ctx context.Context, assets Assets, previous, current string) {
	if previous != "" && previous != current {
		assets.Discard(ctx, previous)
	}
}
