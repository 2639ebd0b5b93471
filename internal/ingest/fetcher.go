package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gestir-app/wardrobe-tracker/constants"
)

// ImageSource resolves an image reference to inline transportable bytes.
// The inference provider requires embedded image data, never a bare URL.
type ImageSource interface {
	Fetch(ctx context.Context, ref string) (data []byte, mimeType string, err error)
}

// Fetcher resolves http(s) URLs over the network and anything else as a
// local file path.
type Fetcher struct {
	http     *http.Client
	maxBytes int64
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		http:     &http.Client{Timeout: timeout},
		maxBytes: constants.MaxImageBytes,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, ref string) ([]byte, string, error) {
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return f.fetchURL(ctx, ref)
	}
	return f.readFile(ref)
}

func (f *Fetcher) fetchURL(ctx context.Context, ref string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build image request: %w", err)
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read image body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, "", fmt.Errorf("image exceeds %d bytes", f.maxBytes)
	}

	mt := resp.Header.Get("Content-Type")
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if mt == "" || mt == "application/octet-stream" {
		mt = http.DetectContentType(data)
	}
	if err := checkMime(mt); err != nil {
		return nil, "", err
	}
	return data, mt, nil
}

func (f *Fetcher) readFile(path string) ([]byte, string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("stat image: %w", err)
	}
	if st.Size() > f.maxBytes {
		return nil, "", fmt.Errorf("image exceeds %d bytes", f.maxBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	mt := constants.MimeForExt(filepath.Ext(path))
	if mt == "" {
		mt = http.DetectContentType(data)
	}
	if err := checkMime(mt); err != nil {
		return nil, "", err
	}
	return data, mt, nil
}

func checkMime(mt string) error {
	if _, ok := constants.AllowedImageTypes[mt]; !ok {
		return fmt.Errorf("unsupported image type %q", mt)
	}
	return nil
}
