package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// MaxDocumentSize caps how many bytes a source may return.
const MaxDocumentSize = 16 << 20

// Source fetches the raw catalog document.
type Source interface {
	// Name identifies the source (path or URL); its extension selects the format.
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads the document from a local path.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: filepath.Clean(path)}
}

// Name returns the file path.
func (s *FileSource) Name() string { return s.path }

// Path returns the cleaned file path (used by the watcher).
func (s *FileSource) Path() string { return s.path }

// Fetch reads the whole file.
func (s *FileSource) Fetch(_ context.Context) ([]byte, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", s.path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("catalog %s exceeds %d bytes", s.path, MaxDocumentSize)
	}
	return data, nil
}

// HTTPSource downloads the document with a GET request.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a URL-backed source. A nil client gets a 15s timeout default.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPSource{url: url, client: client}
}

// Name returns the URL.
func (s *HTTPSource) Name() string { return s.url }

// Fetch downloads the document. Any non-2xx status is an error.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch catalog %s: unexpected status %d", s.url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.url, err)
	}
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("catalog %s exceeds %d bytes", s.url, MaxDocumentSize)
	}
	return data, nil
}
