package shared

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", config.Server.Port)
	}
	if config.Credentials.LLM.BaseURL != "https://integrate.api.nvidia.com/v1" {
		t.Errorf("unexpected default base URL %s", config.Credentials.LLM.BaseURL)
	}
	if config.Credentials.LLM.Model != "nvidia/llama-3.1-nemotron-70b-instruct" {
		t.Errorf("unexpected default model %s", config.Credentials.LLM.Model)
	}
	if config.Curation.Count != 5 {
		t.Errorf("expected default count 5, got %d", config.Curation.Count)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("Valid File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[credentials.spotify]
client_id = "id"
client_secret = "secret"
playlist_id = "pl1"

[credentials.llm]
api_key = "key"

[server]
host = "localhost"
port = 9000

[curation]
count = 10
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if config.Credentials.Spotify.ClientID != "id" {
			t.Errorf("unexpected client_id %s", config.Credentials.Spotify.ClientID)
		}
		if config.Server.Port != 9000 {
			t.Errorf("expected port 9000, got %d", config.Server.Port)
		}
		if config.Curation.Count != 10 {
			t.Errorf("expected count 10, got %d", config.Curation.Count)
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("Malformed File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("not [valid"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := CreateConfigFile(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := CreateConfigFile(path); err == nil {
		t.Error("expected error when config already exists")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.Contains(string(content), "[credentials.spotify]") {
		t.Error("starter config should carry the spotify section")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "env_id")
	t.Setenv("SPOTIFY_PLAYLIST_ID", "env_pl")
	t.Setenv("LLM_API_KEY", "env_key")

	config := DefaultConfig()
	config.Credentials.Spotify.ClientSecret = "from_file"
	config.ApplyEnv()

	if config.Credentials.Spotify.ClientID != "env_id" {
		t.Errorf("env should override, got %s", config.Credentials.Spotify.ClientID)
	}
	if config.Credentials.Spotify.PlaylistID != "env_pl" {
		t.Errorf("env should override, got %s", config.Credentials.Spotify.PlaylistID)
	}
	if config.Credentials.LLM.APIKey != "env_key" {
		t.Errorf("env should override, got %s", config.Credentials.LLM.APIKey)
	}
	if config.Credentials.Spotify.ClientSecret != "from_file" {
		t.Errorf("unset env vars should not clobber file values, got %s", config.Credentials.Spotify.ClientSecret)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		config := DefaultConfig()
		config.Credentials.Spotify.ClientID = "id"
		config.Credentials.Spotify.ClientSecret = "secret"
		config.Credentials.Spotify.PlaylistID = "pl1"
		config.Credentials.LLM.APIKey = "key"
		return config
	}

	t.Run("Complete", func(t *testing.T) {
		if err := base().Validate(true); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("Missing API Key", func(t *testing.T) {
		config := base()
		config.Credentials.LLM.APIKey = ""

		err := config.Validate(false)
		if !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
		if !strings.Contains(err.Error(), "LLM_API_KEY") {
			t.Errorf("error should name the env var, got %v", err)
		}
	})

	t.Run("Redirect Only When Needed", func(t *testing.T) {
		config := base()
		config.Credentials.Spotify.RedirectURI = ""

		if err := config.Validate(false); err != nil {
			t.Errorf("redirect should not be required, got %v", err)
		}
		if err := config.Validate(true); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("redirect should be required, got %v", err)
		}
	})
}
