package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration, loaded from a TOML file with environment overrides applied on top.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Server      ServerConfig      `toml:"server"`
	Curation    CurationConfig    `toml:"curation"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Spotify SpotifyConfig `toml:"spotify"`
	LLM     LLMConfig     `toml:"llm"`
}

// SpotifyConfig contains Spotify API credentials and the target playlist.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
	PlaylistID   string `toml:"playlist_id"`
}

// LLMConfig contains chat-completion endpoint settings.
type LLMConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// ServerConfig contains settings for the local OAuth callback server.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// CurationConfig contains defaults for the curation workflow.
type CurationConfig struct {
	Count int `toml:"count"`
}

// Map converts SpotifyConfig to the credentials map consumed by the services layer.
func (s SpotifyConfig) Map() map[string]string {
	return map[string]string{
		"client_id":     s.ClientID,
		"client_secret": s.ClientSecret,
		"redirect_uri":  s.RedirectURI,
	}
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// An unreadable file is reported as [ErrMissingConfig], a TOML parse
// failure as [ErrInvalidConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays environment variables onto the config.
//
// A .env file in the working directory is loaded first when present; real
// environment variables win over .env entries per godotenv semantics.
// Recognized variables: SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET,
// SPOTIFY_REDIRECT_URI, SPOTIFY_PLAYLIST_ID, LLM_API_KEY, LLM_BASE_URL,
// LLM_MODEL.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	overlay := func(target *string, key string) {
		if v := os.Getenv(key); v != "" {
			*target = v
		}
	}

	overlay(&c.Credentials.Spotify.ClientID, "SPOTIFY_CLIENT_ID")
	overlay(&c.Credentials.Spotify.ClientSecret, "SPOTIFY_CLIENT_SECRET")
	overlay(&c.Credentials.Spotify.RedirectURI, "SPOTIFY_REDIRECT_URI")
	overlay(&c.Credentials.Spotify.PlaylistID, "SPOTIFY_PLAYLIST_ID")
	overlay(&c.Credentials.LLM.APIKey, "LLM_API_KEY")
	overlay(&c.Credentials.LLM.BaseURL, "LLM_BASE_URL")
	overlay(&c.Credentials.LLM.Model, "LLM_MODEL")
}

// Validate checks that every value the curation workflow depends on is set.
//
// The redirect URI is only required for the authorization-code strategy.
func (c *Config) Validate(needRedirect bool) error {
	missing := []string{}

	if c.Credentials.Spotify.ClientID == "" {
		missing = append(missing, "spotify client_id (SPOTIFY_CLIENT_ID)")
	}
	if c.Credentials.Spotify.ClientSecret == "" {
		missing = append(missing, "spotify client_secret (SPOTIFY_CLIENT_SECRET)")
	}
	if needRedirect && c.Credentials.Spotify.RedirectURI == "" {
		missing = append(missing, "spotify redirect_uri (SPOTIFY_REDIRECT_URI)")
	}
	if c.Credentials.Spotify.PlaylistID == "" {
		missing = append(missing, "spotify playlist_id (SPOTIFY_PLAYLIST_ID)")
	}
	if c.Credentials.LLM.APIKey == "" {
		missing = append(missing, "llm api_key (LLM_API_KEY)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingCredentials, missing)
	}

	return nil
}
