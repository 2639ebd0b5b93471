package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n" + "rest-of-image")

func TestFetchURLUsesContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png; charset=binary")
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	data, mime, err := NewFetcher(0).Fetch(context.Background(), srv.URL+"/p.png")
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, "image/png", mime)
}

func TestFetchURLSniffsMissingContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	_, mime, err := NewFetcher(0).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
}

func TestFetchURLRejectsUnsupportedType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	_, _, err := NewFetcher(0).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image type")
}

func TestFetchURLRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, _, err := NewFetcher(0).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchURLEnforcesSizeCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(make([]byte, 64))
	}))
	defer srv.Close()

	f := &Fetcher{http: srv.Client(), maxBytes: 16}
	_, _, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestFetchLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shirt.jpg")
	require.NoError(t, os.WriteFile(path, []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, 0o644))

	data, mime, err := NewFetcher(0).Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, data, 5)
	assert.Equal(t, "image/jpeg", mime)
}

func TestFetchLocalFileMissing(t *testing.T) {
	_, _, err := NewFetcher(0).Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}

func TestFetchLocalFileEnforcesSizeCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.jpg")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o644))

	f := &Fetcher{maxBytes: 16}
	_, _, err := f.Fetch(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestFetchLocalFileRejectsUnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, _, err := NewFetcher(0).Fetch(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image type")
}

func TestWalkImagesSelectsOnlyImages(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.jpg", "b.png", "c.webp", "note.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}
	hidden := filepath.Join(root, ".cache")
	require.NoError(t, os.Mkdir(hidden, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hidden, "d.jpg"), []byte("x"), 0o644))

	paths, err := WalkImages(root)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	for _, p := range paths {
		assert.NotContains(t, p, ".cache")
	}
}
