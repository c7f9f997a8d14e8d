package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/moodriver/encore/internal/llm"
	"github.com/moodriver/encore/internal/services"
	"github.com/moodriver/encore/internal/shared"
	"github.com/moodriver/encore/internal/tasks"
)

func main() {
	logger := shared.NewLogger(nil)
	if os.Getenv("ENCORE_DEBUG") != "" {
		shared.SetLogLevel(logger, log.DebugLevel)
	}

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warnf("failed to load config.toml, using defaults: %v", err)
		}
	}
	config.ApplyEnv()

	var spotifyService services.Service
	if config.Credentials.Spotify.ClientID != "" && config.Credentials.Spotify.ClientSecret != "" {
		if svc, err := services.NewSpotifyService(config.Credentials.Spotify.Map()); err == nil {
			spotifyService = svc
		} else {
			logger.Warnf("failed to create Spotify service: %v", err)
		}
	}

	var recommender tasks.Recommender
	if config.Credentials.LLM.APIKey != "" {
		if client, err := llm.NewClient(config.Credentials.LLM); err == nil {
			recommender = client
		} else {
			logger.Warnf("failed to create recommendation client: %v", err)
		}
	}

	apiService := services.NewRawAPIService("", "")

	runner := NewRunner(RunnerOpts{
		Config:      config,
		Spotify:     spotifyService,
		Recommender: recommender,
		API:         apiService,
		Logger:      logger,
	})

	app := &cli.Command{
		Name:     "encore",
		Usage:    "Grow a Spotify playlist with model-picked songs",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
