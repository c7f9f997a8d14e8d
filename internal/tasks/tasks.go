// package tasks implements the playlist curation pipeline.
//
// The core abstraction is [CurationEngine], which orchestrates the five-stage
// workflow: fetch playlist, request suggestions from the model, parse the
// reply, resolve each suggestion to a track URI, and append the resolved
// tracks. Operations emit progress updates via channels for non-blocking
// status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"

	"github.com/moodriver/encore/internal/formatter"
	"github.com/moodriver/encore/internal/llm"
	"github.com/moodriver/encore/internal/services"
	"github.com/moodriver/encore/internal/shared"
)

// Recommender defines the interface for requesting song recommendations.
// This abstraction allows for easier testing and decoupling from the
// concrete chat-completion client.
type Recommender interface {
	Recommend(ctx context.Context, playlistText string, count int) (string, error)
}

// CurateResult contains all data from a curation run.
type CurateResult struct {
	Playlist    *services.PlaylistExport      // Source playlist with tracks
	Listing     string                        // Rendered playlist text embedded in the prompt
	RawReply    string                        // Unmodified first-choice content from the model
	Suggestions []services.Suggestion         // Parsed suggestions (empty when ParseErr is set)
	Outcomes    []formatter.SuggestionOutcome // Per-suggestion resolution outcomes
	URIs        []string                      // Successfully resolved URIs, in suggestion order
	ParseErr    error                         // Set when the model reply could not be decoded
	AddErr      error                         // Set when the final append call failed
	Added       bool                          // True when tracks were appended
	FailedCount int                           // Suggestions that did not resolve
}

// CurationEngine runs the curation workflow against a music service and a recommender.
type CurationEngine struct {
	spotify     services.Service
	recommender Recommender
}

// NewCurationEngine creates a new CurationEngine with the provided dependencies.
func NewCurationEngine(spotify services.Service, recommender Recommender) *CurationEngine {
	return &CurationEngine{
		spotify:     spotify,
		recommender: recommender,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *CurationEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// Curate runs the full workflow for one playlist.
//
// The per-suggestion resolution loop is strictly sequential; a failed
// resolution is reported through progress updates and excluded from the
// final URI list without aborting the loop. Only resolved URIs reach
// AddTracks, and AddTracks is never invoked when nothing resolved.
//
// A failed model call or playlist fetch returns an error before any search
// or append call is made. An unparseable model reply is recorded on the
// result as ParseErr and yields zero suggestions rather than an error.
func (e *CurationEngine) Curate(ctx context.Context, progress chan<- ProgressUpdate, playlistID string, count int) (*CurateResult, error) {
	if e.spotify == nil {
		return nil, fmt.Errorf("%w: Spotify service not initialized", shared.ErrServiceUnavailable)
	}
	if e.recommender == nil {
		return nil, fmt.Errorf("%w: recommender not initialized", shared.ErrServiceUnavailable)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: suggestion count must be positive", shared.ErrInvalidArgument)
	}

	result := &CurateResult{}

	e.sendProgress(progress, fetchPlaylistUpdate())

	export, err := e.spotify.ExportPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlist: %w", err)
	}

	result.Playlist = export
	result.Listing = formatter.PlaylistText(export)
	e.sendProgress(progress, foundPlaylistUpdate(export))

	e.sendProgress(progress, askModelUpdate(count))

	raw, err := e.recommender.Recommend(ctx, result.Listing, count)
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}
	result.RawReply = raw

	suggestions, err := llm.Parse(llm.Clean(raw))
	if err != nil {
		result.ParseErr = err
		e.sendProgress(progress, parseFailedUpdate(err))
		return result, nil
	}

	result.Suggestions = suggestions
	e.sendProgress(progress, suggestionsParsedUpdate(len(suggestions)))

	total := len(suggestions)
	for i, sg := range suggestions {
		e.sendProgress(progress, resolveUpdate(i+1, total, sg))

		uri, err := e.spotify.SearchTrack(ctx, sg.Artist, sg.Name)
		outcome := formatter.SuggestionOutcome{Suggestion: sg, URI: uri, Err: err}
		result.Outcomes = append(result.Outcomes, outcome)

		if err != nil {
			result.FailedCount++
			e.sendProgress(progress, resolveFailedUpdate(i+1, total, sg, err))
			continue
		}

		result.URIs = append(result.URIs, uri)
	}

	if len(result.URIs) == 0 {
		return result, nil
	}

	e.sendProgress(progress, appendingUpdate(len(result.URIs)))

	if err := e.spotify.AddTracks(ctx, playlistID, result.URIs); err != nil {
		result.AddErr = err
		return result, nil
	}

	result.Added = true
	e.sendProgress(progress, appendedUpdate(len(result.URIs)))

	return result, nil
}
