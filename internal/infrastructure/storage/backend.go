package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidKey     = errors.New("invalid object key")
)

// ObjectInfo describes a stored object for streaming it back out.
type ObjectInfo struct {
	Size        int64
	ContentType string
	ModTime     time.Time
}

// Backend persists raw bytes under slash separated keys such as "blog/<file>".
type Backend interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Delete succeeds when the object is already gone.
	Delete(ctx context.Context, key string) error
	// Open fails with ErrObjectNotFound for unknown keys.
	Open(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)
}

// CleanKey rejects keys that are empty, absolute or escape the root.
func CleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
