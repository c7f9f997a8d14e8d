// Package llm asks an OpenAI-compatible chat-completion endpoint for song
// recommendations and parses the JSON payload embedded in its reply.
//
// The default endpoint is NVIDIA Integrate with a Nemotron instruct model;
// any OpenAI-compatible server works via [shared.LLMConfig.BaseURL].
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/moodriver/encore/internal/shared"
)

const (
	// DefaultBaseURL is the NVIDIA Integrate OpenAI-compatible endpoint.
	DefaultBaseURL = "https://integrate.api.nvidia.com/v1"

	// DefaultModel is the chat model used when none is configured.
	DefaultModel = "nvidia/llama-3.1-nemotron-70b-instruct"
)

// Client wraps an OpenAI-compatible chat completion API.
type Client struct {
	client openai.Client
	model  string
}

// NewClient creates a recommendation client from LLM config.
//
// Base URL and model fall back to the NVIDIA Integrate defaults when unset.
func NewClient(cfg shared.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: missing llm api_key", shared.ErrMissingCredentials)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
	)

	return &Client{client: client, model: model}, nil
}

// Recommend sends the playlist listing to the chat endpoint and returns the
// first choice's content unmodified.
//
// Non-success HTTP statuses surface as [shared.ErrAPIRequest] with the
// status attached; a success response with zero choices is [shared.ErrNoChoices].
func (c *Client) Recommend(ctx context.Context, playlistText string, count int) (string, error) {
	prompt := BuildPrompt(playlistText, count)

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: chat completion status %d", shared.ErrAPIRequest, apiErr.StatusCode)
		}
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", shared.ErrNoChoices
	}

	return completion.Choices[0].Message.Content, nil
}
