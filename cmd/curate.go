package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/moodriver/encore/internal/formatter"
	"github.com/moodriver/encore/internal/shared"
	"github.com/moodriver/encore/internal/tasks"
)

// Curate runs the full suggestion workflow: fetch the playlist, ask the model
// for similar songs, resolve each suggestion through search, and append the
// matches.
//
// Per-suggestion misses and a failed append are reported and leave the exit
// code at zero; only missing configuration and a malformed count are fatal.
func (r *Runner) Curate(ctx context.Context, cmd *cli.Command) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify service not initialized", shared.ErrServiceUnavailable)
	}
	if r.recommender == nil {
		return fmt.Errorf("%w: recommendation client not initialized (set LLM_API_KEY)", shared.ErrServiceUnavailable)
	}

	playlistID, err := r.playlistID(cmd)
	if err != nil {
		return err
	}

	// Missing credentials are fatal before any network call. The redirect URI
	// is only needed when the browser flow will run.
	cfg := *r.config
	cfg.Credentials.Spotify.PlaylistID = playlistID
	if err := cfg.Validate(cmd.String("token") == ""); err != nil {
		return err
	}

	count, err := r.resolveCount(cmd)
	if err != nil {
		return err
	}

	if err := r.ensureAuth(ctx, cmd, true); err != nil {
		return err
	}

	r.logger.Info("starting curation", "playlist", playlistID, "count", count)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.FetchPlaylist:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.RequestSuggestions:
				r.writePlain("\n🤖 %s\n", update.Message)
			case tasks.ParseSuggestions:
				r.writePlain("   %s\n", update.Message)
			case tasks.ResolveTracks:
				if update.Step == 1 {
					r.writePlain("\n🔍 Resolving suggestions...\n")
				}
				r.writePlain("   %s\n", update.Message)
			case tasks.AppendTracks:
				r.writePlain("\n📝 %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Curate(ctx, progressCh, playlistID, count)
	close(progressCh)

	if err != nil {
		r.logger.Error("curation failed", "error", err)
		return r.writeErr(err)
	}

	if result.ParseErr != nil {
		r.logger.Error("model reply could not be parsed", "error", result.ParseErr)
		r.writeErr(result.ParseErr)
		r.writePlain("No valid suggestions; nothing was added.\n")
		return nil
	}

	r.writePlain("\n")
	r.writePlainHeader("Curation Complete!")
	r.writePlain("%s", formatter.SummaryText(&result.Playlist.Playlist, result.Outcomes, len(result.URIs)))

	if result.FailedCount > 0 {
		r.writePlain("\n%d suggestions had no match and were skipped.\n", result.FailedCount)
	}

	if result.AddErr != nil {
		r.logger.Error("adding tracks failed", "error", result.AddErr)
		r.writeErr(result.AddErr)
	} else if !result.Added {
		r.writePlain("\nNothing to add.\n")
	}

	if savePath := cmd.String("save"); savePath != "" {
		if err := formatter.WriteOutcomesCSV(result.Outcomes, savePath); err != nil {
			r.logger.Warn("failed to save outcomes", "error", err)
		} else {
			r.writePlain("\n✓ Outcomes saved to %s\n", savePath)
		}
	}

	return nil
}

// resolveCount determines how many songs to request: the --count flag, the
// configured default with --yes, or an interactive prompt.
//
// A non-numeric answer at the prompt is a hard error.
func (r *Runner) resolveCount(cmd *cli.Command) (int, error) {
	if count := cmd.Int("count"); count > 0 {
		return int(count), nil
	}

	fallback := r.config.Curation.Count
	if fallback <= 0 {
		fallback = 5
	}

	if cmd.Bool("yes") {
		return fallback, nil
	}

	r.writePlain("How many songs should be added to the playlist? [%d]: ", fallback)

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return fallback, nil
	}

	answer := strings.TrimSpace(scanner.Text())
	if answer == "" {
		return fallback, nil
	}

	count, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: count must be a number, got %q", shared.ErrInvalidInput, answer)
	}
	if count <= 0 {
		return 0, fmt.Errorf("%w: count must be positive, got %d", shared.ErrInvalidInput, count)
	}

	return count, nil
}
