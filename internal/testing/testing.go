// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/moodriver/encore/internal/services"
)

// MockService is a configurable test double for [services.Service].
// Unset function fields fall back to benign zero-value behavior.
type MockService struct {
	AuthenticateFunc   func(ctx context.Context, credentials map[string]string) error
	GetPlaylistFunc    func(ctx context.Context, playlistID string) (*services.Playlist, error)
	ExportPlaylistFunc func(ctx context.Context, playlistID string) (*services.PlaylistExport, error)
	SearchTrackFunc    func(ctx context.Context, artist, title string) (string, error)
	AddTracksFunc      func(ctx context.Context, playlistID string, uris []string) error

	SearchCalls [][2]string // artist, title pairs in call order
	AddCalls    [][]string  // URI batches in call order
}

func (m *MockService) Authenticate(ctx context.Context, credentials map[string]string) error {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, credentials)
	}
	return nil
}

func (m *MockService) GetPlaylist(ctx context.Context, playlistID string) (*services.Playlist, error) {
	if m.GetPlaylistFunc != nil {
		return m.GetPlaylistFunc(ctx, playlistID)
	}
	return &services.Playlist{ID: playlistID}, nil
}

func (m *MockService) ExportPlaylist(ctx context.Context, playlistID string) (*services.PlaylistExport, error) {
	if m.ExportPlaylistFunc != nil {
		return m.ExportPlaylistFunc(ctx, playlistID)
	}
	return &services.PlaylistExport{Playlist: services.Playlist{ID: playlistID}}, nil
}

func (m *MockService) SearchTrack(ctx context.Context, artist, title string) (string, error) {
	m.SearchCalls = append(m.SearchCalls, [2]string{artist, title})
	if m.SearchTrackFunc != nil {
		return m.SearchTrackFunc(ctx, artist, title)
	}
	return "", nil
}

func (m *MockService) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	m.AddCalls = append(m.AddCalls, uris)
	if m.AddTracksFunc != nil {
		return m.AddTracksFunc(ctx, playlistID, uris)
	}
	return nil
}

func (m *MockService) Name() string { return "mock" }

// MockRecommender is a test double for the curation engine's recommender.
type MockRecommender struct {
	Reply string
	Err   error
	Calls int
}

func (m *MockRecommender) Recommend(ctx context.Context, playlistText string, count int) (string, error) {
	m.Calls++
	return m.Reply, m.Err
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

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
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
