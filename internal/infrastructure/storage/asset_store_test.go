package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/shared/apperror"
)

var defaultExts = []string{"png", "jpg", "jpeg", "gif", "svg", "webp"}

func newLocalStore(t *testing.T) (*AssetStore, string) {
	t.Helper()
	root := t.TempDir()
	backend, err := NewLocalBackend(root)
	require.NoError(t, err)
	return NewAssetStore(backend, defaultExts, 1<<20, "https://cdn.example.com/"), root
}

func upload(name, content string) *File {
	return &File{Name: name, Size: int64(len(content)), Reader: strings.NewReader(content)}
}

func TestStorePersistsBytes(t *testing.T) {
	store, root := newLocalStore(t)

	ref, err := store.Store(context.Background(), upload("My Photo.PNG", "png-bytes"), "projects")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/uploads/projects/"))
	assert.True(t, strings.HasSuffix(ref, "_my-photo.png"))

	key, ok := KeyFromRef(ref)
	require.True(t, ok)
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestStoreGeneratesUniqueNames(t *testing.T) {
	store, _ := newLocalStore(t)

	a, err := store.Store(context.Background(), upload("logo.svg", "a"), "skills")
	require.NoError(t, err)
	b, err := store.Store(context.Background(), upload("logo.svg", "b"), "skills")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestStoreRejectsExtension(t *testing.T) {
	store, root := newLocalStore(t)

	for _, name := range []string{"script.exe", "noext", "archive.png.zip"} {
		_, err := store.Store(context.Background(), upload(name, "x"), "blog")
		require.Error(t, err, name)
		appErr := apperror.From(err)
		assert.Equal(t, apperror.KindBadRequest, appErr.Kind)
		assert.Equal(t, apperror.CodeUnsupportedType, appErr.Code)
	}

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreRejectsOversized(t *testing.T) {
	store, _ := newLocalStore(t)

	f := upload("big.jpg", "x")
	f.Size = 2 << 20
	_, err := store.Store(context.Background(), f, "blog")
	assert.Equal(t, apperror.CodeFileTooLarge, apperror.From(err).Code)
}

type failingBackend struct{ Backend }

func (failingBackend) Put(context.Context, string, io.Reader, int64, string) error {
	return errors.New("disk full")
}

func TestStoreBackendFailureIsUploadFailed(t *testing.T) {
	store := NewAssetStore(failingBackend{}, defaultExts, 0, "")

	_, err := store.Store(context.Background(), upload("a.png", "x"), "blog")
	appErr := apperror.From(err)
	assert.Equal(t, apperror.KindUpstream, appErr.Kind)
	assert.Equal(t, apperror.CodeUploadFailed, appErr.Code)
}

func TestDeleteIsBestEffort(t *testing.T) {
	store, root := newLocalStore(t)
	ctx := context.Background()

	ref, err := store.Store(ctx, upload("a.gif", "gif"), "certificates")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, ref))
	key, _ := KeyFromRef(ref)
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))

	// already gone, foreign and empty references are all fine
	assert.NoError(t, store.Delete(ctx, ref))
	assert.NoError(t, store.Delete(ctx, "https://elsewhere.example.com/x.png"))
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestOpenStoredObject(t *testing.T) {
	store, _ := newLocalStore(t)
	ctx := context.Background()

	ref, err := store.Store(ctx, upload("pic.jpg", "jpeg-bytes"), "blog")
	require.NoError(t, err)
	key, _ := KeyFromRef(ref)

	rc, info, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, int64(len("jpeg-bytes")), info.Size)
	assert.Equal(t, "image/jpeg", info.ContentType)

	_, _, err = store.Open(ctx, "blog/missing.jpg")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestPublicURL(t *testing.T) {
	store, _ := newLocalStore(t)

	assert.Equal(t, "", store.PublicURL(""))
	assert.Equal(t, "https://cdn.example.com/uploads/blog/a.png", store.PublicURL("/uploads/blog/a.png"))
	assert.Equal(t, "https://cdn.example.com/uploads/a.png", store.PublicURL("uploads/a.png"))
	assert.Equal(t, "https://img.example.com/a.png", store.PublicURL("https://img.example.com/a.png"))
}

func TestCleanKeyRejectsTraversal(t *testing.T) {
	for _, key := range []string{"", "/etc/passwd", "../secret", "a/../../b", `a\b`, ".."} {
		_, err := CleanKey(key)
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}

	key, err := CleanKey("blog/./a.png")
	require.NoError(t, err)
	assert.Equal(t, "blog/a.png", key)

	_, ok := KeyFromRef("/uploads/../../etc/passwd")
	assert.False(t, ok)
}

func TestCategoryFallback(t *testing.T) {
	assert.Equal(t, "general", cleanCategory(""))
	assert.Equal(t, "blog", cleanCategory("Blog"))
}
