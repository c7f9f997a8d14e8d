// package formatter renders playlists for prompt embedding and exports curation results (CSV, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/moodriver/encore/internal/services"
)

// PlaylistText renders a playlist as the flat listing embedded in the
// recommendation prompt: "<title> by <comma-joined artists>, " per track,
// in API order. The trailing ", " is part of the format and is preserved.
func PlaylistText(export *services.PlaylistExport) string {
	var buf strings.Builder

	for _, track := range export.Tracks {
		buf.WriteString(track.Title)
		buf.WriteString(" by ")
		buf.WriteString(strings.Join(track.Artists, ", "))
		buf.WriteString(", ")
	}

	return buf.String()
}

// SuggestionOutcome pairs a suggestion with its resolution result for reporting.
type SuggestionOutcome struct {
	Suggestion services.Suggestion
	URI        string
	Err        error
}

// ExportOutcomesCSV converts curation outcomes to CSV with columns:
// Name, Artist, URI, Status.
func ExportOutcomesCSV(outcomes []SuggestionOutcome) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Name", "Artist", "URI", "Status"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, outcome := range outcomes {
		status := "resolved"
		if outcome.Err != nil {
			status = outcome.Err.Error()
		}
		record := []string{
			outcome.Suggestion.Name,
			outcome.Suggestion.Artist,
			outcome.URI,
			status,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteOutcomesCSV writes curation outcomes to a CSV file at path.
func WriteOutcomesCSV(outcomes []SuggestionOutcome, path string) error {
	data, err := ExportOutcomesCSV(outcomes)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}

	return nil
}

// SummaryText renders a human-readable summary of a curation run.
func SummaryText(playlist *services.Playlist, outcomes []SuggestionOutcome, added int) string {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", playlist.Name))
	buf.WriteString(fmt.Sprintf("Suggestions: %d\n", len(outcomes)))
	buf.WriteString(fmt.Sprintf("Added: %d\n\n", added))

	for i, outcome := range outcomes {
		marker := "✓"
		if outcome.Err != nil {
			marker = "✗"
		}
		buf.WriteString(fmt.Sprintf("%d. %s %s - %s\n", i+1, marker, outcome.Suggestion.Artist, outcome.Suggestion.Name))
	}

	return buf.String()
}
