// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/spring01/music/internal/models"
)

// MockExtractor is a test double for [services.Extractor] keyed by source reference.
type MockExtractor struct {
	mu    sync.Mutex
	infos map[string]*models.SourceInfo
	errs  map[string]error
	calls []string
}

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{infos: map[string]*models.SourceInfo{}, errs: map[string]error{}}
}

// Add registers the info returned for sourceRef.
func (m *MockExtractor) Add(sourceRef string, info *models.SourceInfo) *MockExtractor {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos[sourceRef] = info
	return m
}

// Fail makes extraction of sourceRef return err.
func (m *MockExtractor) Fail(sourceRef string, err error) *MockExtractor {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[sourceRef] = err
	return m
}

func (m *MockExtractor) Extract(ctx context.Context, sourceRef string) (*models.SourceInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, sourceRef)

	if err := m.errs[sourceRef]; err != nil {
		return nil, err
	}
	info, ok := m.infos[sourceRef]
	if !ok {
		return nil, fmt.Errorf("mock extractor: no info for %s", sourceRef)
	}
	return info, nil
}

// Calls returns the source references extracted so far.
func (m *MockExtractor) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// AudioInfo builds a [models.SourceInfo] with a single audio-only format at url.
func AudioInfo(title, description, url string) *models.SourceInfo {
	return &models.SourceInfo{
		Title:       title,
		Description: description,
		Formats:     []models.Format{{URL: url, Bitrate: 128, HasAudio: true}},
	}
}

// MockLister is a test double for [services.PlaylistLister].
type MockLister struct {
	mu     sync.Mutex
	Items  map[string][]string
	Titles map[string]string
	Err    error
	Limits []int
}

func NewMockLister() *MockLister {
	return &MockLister{Items: map[string][]string{}, Titles: map[string]string{}}
}

func (m *MockLister) ListItems(ctx context.Context, playlistID string, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Limits = append(m.Limits, limit)

	if m.Err != nil {
		return nil, m.Err
	}
	items := m.Items[playlistID]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return append([]string(nil), items...), nil
}

func (m *MockLister) PlaylistTitle(ctx context.Context, playlistID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	title, ok := m.Titles[playlistID]
	if !ok {
		return "", fmt.Errorf("mock lister: no playlist %s", playlistID)
	}
	return title, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
