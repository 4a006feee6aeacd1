package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// ErrSourceNotFound is returned when a source has no file under the name.
var ErrSourceNotFound = errors.New("csv source file not found")

// CSVSource fetches the raw bytes of one named CSV export.
type CSVSource interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FileCSVSource reads exports from a local directory.
type FileCSVSource struct {
	Dir string
}

func NewFileCSVSource(dir string) *FileCSVSource {
	return &FileCSVSource{Dir: dir}
}

func (s *FileCSVSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(s.Dir, filepath.Base(name))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// HTTPCSVSource fetches exports from <base URL>/<name>.
type HTTPCSVSource struct {
	*HTTPClient
}

func NewHTTPCSVSource(httpClient *HTTPClient) *HTTPCSVSource {
	return &HTTPCSVSource{HTTPClient: httpClient}
}

func (s *HTTPCSVSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	data, err := s.Get(ctx, "/"+url.PathEscape(name), map[string]string{"Accept": "text/csv"})
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == 404 {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
		}
		return nil, err
	}
	return data, nil
}

// MockCSVSource serves exports from memory. Failures registered with Fail
// take precedence over stored files.
type MockCSVSource struct {
	mu       sync.Mutex
	files    map[string][]byte
	failures map[string]error
	calls    map[string]int
}

func NewMockCSVSource(files map[string]string) *MockCSVSource {
	m := &MockCSVSource{
		files:    map[string][]byte{},
		failures: map[string]error{},
		calls:    map[string]int{},
	}
	for name, body := range files {
		m.files[name] = []byte(body)
	}
	return m
}

// Put stores raw bytes under name.
func (m *MockCSVSource) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = data
}

// Fail makes every later fetch of name return err.
func (m *MockCSVSource) Fail(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[name] = err
}

// Calls returns how many times name was fetched.
func (m *MockCSVSource) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *MockCSVSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[name]++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.failures[name]; ok {
		return nil, err
	}
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
	}
	return data, nil
}
