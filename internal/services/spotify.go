// Spotify API implementation of [Service]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/moodriver/encore/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	// Spotify caps a single add-tracks request at 100 URIs.
	addTracksChunkSize = 100
)

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Artists []SpotifyArtist `json:"artists"`
	Album   SpotifyAlbum    `json:"album"`
	URI     string          `json:"uri"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type playlistTracks struct {
	Total int                    `json:"total"`
	Items []SpotifyPlaylistTrack `json:"items"`
}

// SpotifyPlaylist represents a Spotify playlist.
type SpotifyPlaylist struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Public      bool           `json:"public"`
	Tracks      playlistTracks `json:"tracks"`
	URI         string         `json:"uri"`
}

// SpotifyPlaylistTrack represents a track within a playlist context.
type SpotifyPlaylistTrack struct {
	AddedAt string       `json:"added_at"`
	Track   SpotifyTrack `json:"track"`
}

type searchResponse struct {
	Tracks struct {
		Items []SpotifyTrack `json:"items"`
	} `json:"tracks"`
}

type addTracksRequest struct {
	URIs []string `json:"uris"`
}

// SpotifyService implements the Service interface for Spotify API interactions.
// Uses [oauth2] for the authorization-code flow and [clientcredentials] for
// the two-legged machine-to-machine flow.
type SpotifyService struct {
	config     *oauth2.Config
	token      *oauth2.Token
	httpClient *http.Client
	baseURL    string
	tokenURL   string
}

// NewSpotifyService creates a new Spotify service with the given OAuth2 credentials.
func NewSpotifyService(credentials map[string]string) (*SpotifyService, error) {
	clientID, ok := credentials["client_id"]
	if !ok || clientID == "" {
		return nil, fmt.Errorf("%w: missing client_id", shared.ErrMissingCredentials)
	}

	clientSecret, ok := credentials["client_secret"]
	if !ok || clientSecret == "" {
		return nil, fmt.Errorf("%w: missing client_secret", shared.ErrMissingCredentials)
	}

	redirectURI, ok := credentials["redirect_uri"]
	if !ok || redirectURI == "" {
		redirectURI = "http://localhost:8080/callback"
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes: []string{
			"playlist-read-private",
			"playlist-read-collaborative",
			"playlist-modify-public",
			"playlist-modify-private",
		},
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyAuthURL,
			TokenURL: spotifyTokenURL,
		},
	}

	return &SpotifyService{
		config:     config,
		httpClient: http.DefaultClient,
		baseURL:    spotifyBaseURL,
		tokenURL:   spotifyTokenURL,
	}, nil
}

// Authenticate performs OAuth2 authentication with Spotify.
//
// Expects one of "access_token", "auth_code", or "grant_type": "client_credentials"
// in credentials; the strategies are mutually exclusive per run.
func (s *SpotifyService) Authenticate(ctx context.Context, credentials map[string]string) error {
	if accessToken, ok := credentials["access_token"]; ok && accessToken != "" {
		s.token = &oauth2.Token{AccessToken: accessToken}
		s.httpClient = s.config.Client(ctx, s.token)
		return nil
	}

	if authCode, ok := credentials["auth_code"]; ok && authCode != "" {
		token, err := s.config.Exchange(ctx, authCode)
		if err != nil {
			return fmt.Errorf("%w: failed to exchange auth code: %v", shared.ErrAuthFailed, err)
		}
		s.token = token
		s.httpClient = s.config.Client(ctx, s.token)
		return nil
	}

	if grant, ok := credentials["grant_type"]; ok && grant == "client_credentials" {
		return s.authenticateClientCredentials(ctx)
	}

	return fmt.Errorf("%w: missing access_token, auth_code, or grant_type", shared.ErrMissingCredentials)
}

// authenticateClientCredentials performs the two-legged token exchange.
// The token endpoint receives client_id/client_secret via HTTP basic auth.
func (s *SpotifyService) authenticateClientCredentials(ctx context.Context) error {
	cc := &clientcredentials.Config{
		ClientID:     s.config.ClientID,
		ClientSecret: s.config.ClientSecret,
		TokenURL:     s.tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	token, err := cc.Token(ctx)
	if err != nil {
		return fmt.Errorf("%w: client credentials exchange: %v", shared.ErrAuthFailed, err)
	}

	s.token = token
	s.httpClient = cc.Client(ctx)
	return nil
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// GetAuthURL returns the OAuth2 authorization URL for user login.
func (s *SpotifyService) GetAuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// GetOAuthConfig exposes the OAuth2 config for the callback server.
func (s *SpotifyService) GetOAuthConfig() *oauth2.Config {
	return s.config
}

// Token returns the current access token, or an empty string before authentication.
func (s *SpotifyService) Token() string {
	if s.token == nil {
		return ""
	}
	return s.token.AccessToken
}

// do performs an authenticated HTTP request against the Spotify API.
//
// Returns the response status code; result is decoded only for 2xx responses.
// Transport and decode failures are returned as errors, status handling is
// left to the caller since 404 means different things per endpoint.
func (s *SpotifyService) do(ctx context.Context, method, endpoint string, body, result any) (int, error) {
	if s.token == nil {
		return 0, fmt.Errorf("%w: call Authenticate first", shared.ErrNotAuthenticated)
	}

	apiURL := s.baseURL + endpoint

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: failed to decode response: %v", shared.ErrBadResponse, err)
		}
	}

	return resp.StatusCode, nil
}

// Playlist retrieves a playlist by ID.
func (s *SpotifyService) Playlist(ctx context.Context, playlistID string) (*SpotifyPlaylist, error) {
	var playlist SpotifyPlaylist
	status, err := s.do(ctx, http.MethodGet, "/playlists/"+playlistID, nil, &playlist)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		return nil, fmt.Errorf("%w: invalid playlist ID %q", shared.ErrPlaylistNotFound, playlistID)
	case status < 200 || status >= 300:
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, status)
	}

	return &playlist, nil
}

// GetPlaylist retrieves a specific playlist by ID.
func (s *SpotifyService) GetPlaylist(ctx context.Context, playlistID string) (*Playlist, error) {
	sp, err := s.Playlist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	return &Playlist{
		ID:          sp.ID,
		Name:        sp.Name,
		Description: sp.Description,
		TrackCount:  sp.Tracks.Total,
		Public:      sp.Public,
	}, nil
}

// ExportPlaylist exports a playlist with all its tracks.
func (s *SpotifyService) ExportPlaylist(ctx context.Context, playlistID string) (*PlaylistExport, error) {
	sp, err := s.Playlist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	playlist := Playlist{
		ID:          sp.ID,
		Name:        sp.Name,
		Description: sp.Description,
		TrackCount:  sp.Tracks.Total,
		Public:      sp.Public,
	}

	var tracks []Track
	for _, item := range sp.Tracks.Items {
		track := Track{
			ID:    item.Track.ID,
			Title: item.Track.Name,
			Album: item.Track.Album.Name,
			URI:   item.Track.URI,
		}
		for _, artist := range item.Track.Artists {
			track.Artists = append(track.Artists, artist.Name)
		}
		tracks = append(tracks, track)
	}

	return &PlaylistExport{
		Playlist: playlist,
		Tracks:   tracks,
	}, nil
}

// SearchTrack searches the catalog for a track by artist and title.
//
// Artist and title are carried in a percent-encoded query; names containing
// '&', '+', '#', or non-ASCII characters survive intact.
func (s *SpotifyService) SearchTrack(ctx context.Context, artist, title string) (string, error) {
	query := url.Values{}
	query.Set("q", fmt.Sprintf("artist:%s track:%s", artist, title))
	query.Set("type", "track")
	query.Set("limit", "1")

	var response searchResponse
	status, err := s.do(ctx, http.MethodGet, "/search?"+query.Encode(), nil, &response)
	if err != nil {
		return "", err
	}

	switch {
	case status == http.StatusNotFound:
		return "", fmt.Errorf("%w: no result for %s - %s", shared.ErrTrackNotFound, artist, title)
	case status < 200 || status >= 300:
		return "", fmt.Errorf("%w: status %d", shared.ErrAPIRequest, status)
	}

	if len(response.Tracks.Items) == 0 {
		return "", fmt.Errorf("%w: no result for %s - %s", shared.ErrTrackNotFound, artist, title)
	}

	return response.Tracks.Items[0].URI, nil
}

// AddTracks appends the given track URIs to a playlist, batching requests
// at the platform's per-request cap.
func (s *SpotifyService) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	if len(uris) == 0 {
		return fmt.Errorf("%w: no URIs to add", shared.ErrInvalidArgument)
	}

	endpoint := "/playlists/" + playlistID + "/tracks"

	for start := 0; start < len(uris); start += addTracksChunkSize {
		end := min(start+addTracksChunkSize, len(uris))

		status, err := s.do(ctx, http.MethodPost, endpoint, addTracksRequest{URIs: uris[start:end]}, nil)
		if err != nil {
			return err
		}

		if status < 200 || status >= 300 {
			return fmt.Errorf("%w: failed to add tracks: status %d", shared.ErrAPIRequest, status)
		}
	}

	return nil
}
