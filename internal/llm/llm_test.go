package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/moodriver/encore/internal/shared"
)

func TestNewClient(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		_, err := NewClient(shared.LLMConfig{})
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		client, err := NewClient(shared.LLMConfig{APIKey: "key"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if client.model != DefaultModel {
			t.Errorf("expected default model, got %s", client.model)
		}
	})

	t.Run("Configured Model Wins", func(t *testing.T) {
		client, err := NewClient(shared.LLMConfig{APIKey: "key", Model: "other/model"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if client.model != "other/model" {
			t.Errorf("expected configured model, got %s", client.model)
		}
	})
}

func TestRecommend(t *testing.T) {
	t.Run("Returns First Choice Content", func(t *testing.T) {
		var gotBody string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			buf, _ := io.ReadAll(r.Body)
			gotBody = string(buf)

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{
				"id": "cmpl-1",
				"object": "chat.completion",
				"choices": [
					{"index": 0, "message": {"role": "assistant", "content": "{\"songs\": []}"}}
				]
			}`)
		}))
		defer ts.Close()

		client, err := NewClient(shared.LLMConfig{APIKey: "key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}

		reply, err := client.Recommend(context.Background(), "Song One by Artist A, ", 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if reply != `{"songs": []}` {
			t.Errorf("expected raw choice content, got %q", reply)
		}
		if !strings.Contains(gotBody, "give me 3 songs") {
			t.Error("request should carry the prompt with the count")
		}
		if !strings.Contains(gotBody, "Song One by Artist A, ") {
			t.Error("request should embed the playlist listing")
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error": {"message": "boom"}}`)
		}))
		defer ts.Close()

		client, err := NewClient(shared.LLMConfig{APIKey: "key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}

		_, err = client.Recommend(context.Background(), "listing", 3)
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("Zero Choices", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id": "cmpl-1", "object": "chat.completion", "choices": []}`)
		}))
		defer ts.Close()

		client, err := NewClient(shared.LLMConfig{APIKey: "key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}

		_, err = client.Recommend(context.Background(), "listing", 3)
		if !errors.Is(err, shared.ErrNoChoices) {
			t.Errorf("expected ErrNoChoices, got %v", err)
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Song One by Artist A, Song Two by Artist B, ", 7)

	for _, want := range []string{
		"give me 7 songs",
		"'songs'",
		"'name'",
		"'artist'",
		"Song One by Artist A, Song Two by Artist B, ",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt should contain %q", want)
		}
	}

	if !strings.HasSuffix(prompt, "Song One by Artist A, Song Two by Artist B, ") {
		t.Error("playlist listing should come last")
	}
}
