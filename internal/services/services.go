// package services defines interface Service for interacting with HTTP APIs
package services

import (
	"context"

	"golang.org/x/oauth2"
)

// Service defines the operations the curation workflow needs from a music platform.
type Service interface {
	// Authenticate performs OAuth or token authentication with the service.
	// Returns an error if authentication fails.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// GetPlaylist retrieves a specific playlist by ID.
	GetPlaylist(ctx context.Context, playlistID string) (*Playlist, error)

	// ExportPlaylist exports a playlist with all its tracks.
	ExportPlaylist(ctx context.Context, playlistID string) (*PlaylistExport, error)

	// SearchTrack searches the catalog for a track by artist and title.
	// Returns the best match's URI or an error if no match is found.
	SearchTrack(ctx context.Context, artist, title string) (string, error)

	// AddTracks appends the given track URIs to a playlist.
	AddTracks(ctx context.Context, playlistID string, uris []string) error

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}

// OAuthService is implemented by services that support the three-legged authorization-code flow.
type OAuthService interface {
	Service

	// GetAuthURL returns the authorization URL the user must visit.
	GetAuthURL(state string) string

	// GetOAuthConfig exposes the underlying [oauth2.Config] for callback handling.
	GetOAuthConfig() *oauth2.Config
}

// Playlist represents a music playlist from any service
type Playlist struct {
	ID          string
	Name        string
	Description string
	TrackCount  int
	Public      bool
}

// PlaylistExport represents a playlist with all its tracks
type PlaylistExport struct {
	Playlist Playlist
	Tracks   []Track
}

// Track represents a music track from any service
type Track struct {
	ID      string
	Title   string
	Artists []string // Ordered as returned by the API
	Album   string
	URI     string // Opaque catalog identifier, may be empty in playlist listings
}

// Suggestion is a song proposed by the recommendation step. It carries no
// catalog identity until resolved through search.
type Suggestion struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
}
