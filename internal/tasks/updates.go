package tasks

import (
	"fmt"

	"github.com/moodriver/encore/internal/services"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchPlaylist Phase = iota
	RequestSuggestions
	ParseSuggestions
	ResolveTracks
	AppendTracks
)

func (p Phase) String() string {
	switch p {
	case FetchPlaylist:
		return "fetch_playlist"
	case RequestSuggestions:
		return "request_suggestions"
	case ParseSuggestions:
		return "parse_suggestions"
	case ResolveTracks:
		return "resolve_tracks"
	case AppendTracks:
		return "append_tracks"
	default:
		return ""
	}
}

func fetchPlaylistUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchPlaylist,
		Step:    1,
		Total:   1,
		Message: "Fetching playlist from Spotify...",
	}
}

func foundPlaylistUpdate(export *services.PlaylistExport) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchPlaylist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Found playlist: %s (%d tracks)", export.Playlist.Name, len(export.Tracks)),
		Data:    export,
	}
}

func askModelUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   RequestSuggestions,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Asking the model for %d suggestions...", count),
	}
}

func suggestionsParsedUpdate(n int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ParseSuggestions,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Received %d suggestions", n),
	}
}

func parseFailedUpdate(err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ParseSuggestions,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Could not parse model reply: %v", err),
	}
}

func resolveUpdate(step, total int, sg services.Suggestion) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s - %s", step, total, sg.Artist, sg.Name),
	}
}

func resolveFailedUpdate(step, total int, sg services.Suggestion, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s - %s: %v", step, total, sg.Artist, sg.Name, err),
	}
}

func appendingUpdate(n int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AppendTracks,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Adding %d tracks to the playlist...", n),
	}
}

func appendedUpdate(n int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AppendTracks,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("✓ Added %d tracks", n),
	}
}
