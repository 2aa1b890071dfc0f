// Package storagetest provides an in-memory storage.Assets for service tests.
package storagetest

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
)

// Assets keeps stored references in memory. Set FailStore to make Store fail.
type Assets struct {
	mu        sync.Mutex
	objects   map[string][]byte
	discarded []string

	FailStore bool
}

func NewAssets() *Assets {
	return &Assets{objects: map[string][]byte{}}
}

var _ storage.Assets = (*Assets)(nil)

func (a *Assets) Store(_ context.Context, f *storage.File, category string) (string, error) {
	if a.FailStore {
		return "", apperror.Upstream(apperror.CodeUploadFailed, errors.New("disk full"))
	}
	data, err := io.ReadAll(f.Reader)
	if err != nil {
		return "", apperror.Upstream(apperror.CodeUploadFailed, err)
	}

	ref := storage.URLPrefix + category + "/" + uuid.NewString() + "_" + f.Name
	a.mu.Lock()
	a.objects[ref] = data
	a.mu.Unlock()
	return ref, nil
}

func (a *Assets) Discard(_ context.Context, ref string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.objects, ref)
	a.discarded = append(a.discarded, ref)
}

func (a *Assets) PublicURL(ref string) string {
	if ref == "" || !strings.HasPrefix(ref, "/") {
		return ref
	}
	return "https://cdn.test" + ref
}

// Put seeds an existing object.
func (a *Assets) Put(ref string) {
	a.mu.Lock()
	a.objects[ref] = []byte("seed")
	a.mu.Unlock()
}

// Exists reports whether ref is still stored.
func (a *Assets) Exists(ref string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.objects[ref]
	return ok
}

// Count is the number of stored objects.
func (a *Assets) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.objects)
}

func (a *Assets) Discarded() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.discarded...)
}

// File builds an upload with the given name.
func File(name string) *storage.File {
	return &storage.File{Name: name, Size: 4, ContentType: "image/png", Reader: strings.NewReader("data")}
}
