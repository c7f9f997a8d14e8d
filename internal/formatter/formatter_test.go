package formatter

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moodriver/encore/internal/services"
)

func sampleExport() *services.PlaylistExport {
	return &services.PlaylistExport{
		Playlist: services.Playlist{ID: "pl1", Name: "Mix", TrackCount: 3},
		Tracks: []services.Track{
			{Title: "Song One", Artists: []string{"Artist A"}},
			{Title: "Song Two", Artists: []string{"Artist B", "Artist C"}},
			{Title: "Song Three", Artists: []string{"Artist D"}},
		},
	}
}

func TestPlaylistText(t *testing.T) {
	t.Run("Empty Playlist", func(t *testing.T) {
		export := &services.PlaylistExport{Playlist: services.Playlist{Name: "Empty"}}
		if got := PlaylistText(export); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("Format And Order", func(t *testing.T) {
		got := PlaylistText(sampleExport())

		want := "Song One by Artist A, Song Two by Artist B, Artist C, Song Three by Artist D, "
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("Trailing Separator Preserved", func(t *testing.T) {
		got := PlaylistText(sampleExport())
		if !strings.HasSuffix(got, ", ") {
			t.Errorf("listing should end with the separator, got %q", got)
		}
	})

	t.Run("One Entry Per Track", func(t *testing.T) {
		got := PlaylistText(sampleExport())
		if n := strings.Count(got, " by "); n != 3 {
			t.Errorf("expected 3 entries, found %d", n)
		}
	})
}

func TestExportOutcomesCSV(t *testing.T) {
	outcomes := []SuggestionOutcome{
		{Suggestion: services.Suggestion{Name: "Song A", Artist: "Artist A"}, URI: "spotify:track:a"},
		{Suggestion: services.Suggestion{Name: "Song B", Artist: "Artist B"}, Err: errors.New("no result")},
	}

	data, err := ExportOutcomesCSV(outcomes)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output should be valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}

	if records[0][0] != "Name" || records[0][3] != "Status" {
		t.Errorf("unexpected headers %v", records[0])
	}
	if records[1][2] != "spotify:track:a" || records[1][3] != "resolved" {
		t.Errorf("unexpected resolved row %v", records[1])
	}
	if records[2][2] != "" || records[2][3] != "no result" {
		t.Errorf("unexpected failed row %v", records[2])
	}
}

func TestWriteOutcomesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcomes.csv")

	outcomes := []SuggestionOutcome{
		{Suggestion: services.Suggestion{Name: "Song A", Artist: "Artist A"}, URI: "spotify:track:a"},
	}

	if err := WriteOutcomesCSV(outcomes, path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	if !strings.Contains(string(content), "Song A") {
		t.Errorf("file should contain the suggestion, got %q", content)
	}
}

func TestSummaryText(t *testing.T) {
	playlist := &services.Playlist{Name: "Mix"}
	outcomes := []SuggestionOutcome{
		{Suggestion: services.Suggestion{Name: "Song A", Artist: "Artist A"}, URI: "spotify:track:a"},
		{Suggestion: services.Suggestion{Name: "Song B", Artist: "Artist B"}, Err: errors.New("no result")},
	}

	got := SummaryText(playlist, outcomes, 1)

	if !strings.Contains(got, "Playlist: Mix") {
		t.Error("summary should name the playlist")
	}
	if !strings.Contains(got, "Suggestions: 2") || !strings.Contains(got, "Added: 1") {
		t.Error("summary should carry the counts")
	}
	if !strings.Contains(got, "✓ Artist A - Song A") {
		t.Error("resolved suggestions get a check mark")
	}
	if !strings.Contains(got, "✗ Artist B - Song B") {
		t.Error("failed suggestions get a cross mark")
	}
}
