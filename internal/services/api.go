// Raw HTTP access to the Spotify Web API for debugging and scripting
package services

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
)

// RawAPIService provides raw bearer-authenticated requests against the
// Spotify Web API, for paths the typed [SpotifyService] doesn't cover.
type RawAPIService struct {
	client *resty.Client
}

// NewRawAPIService creates a raw API client rooted at baseURL.
//
// An empty baseURL defaults to the public Spotify API.
func NewRawAPIService(baseURL, accessToken string) *RawAPIService {
	if baseURL == "" {
		baseURL = spotifyBaseURL
	}

	client := resty.New().SetBaseURL(baseURL)
	if accessToken != "" {
		client.SetAuthToken(accessToken)
	}

	return &RawAPIService{client: client}
}

// SetToken replaces the bearer token on the underlying client.
func (a *RawAPIService) SetToken(accessToken string) {
	a.client.SetAuthToken(accessToken)
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Body       []byte
	IsJSON     bool
	JSONData   any
}

func newAPIResponse(resp *resty.Response) *APIResponse {
	apiResp := &APIResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}

	var jsonData any
	if err := json.Unmarshal(apiResp.Body, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp
}

// Get performs a GET request to the specified path and returns the raw response.
func (a *RawAPIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	resp, err := a.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, err
	}
	return newAPIResponse(resp), nil
}

// Post performs a POST request with the given JSON body and returns the raw response.
func (a *RawAPIService) Post(ctx context.Context, path string, data []byte) (*APIResponse, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post(path)
	if err != nil {
		return nil, err
	}
	return newAPIResponse(resp), nil
}
