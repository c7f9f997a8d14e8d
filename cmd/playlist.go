package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/moodriver/encore/internal/shared"
)

// playlistID resolves the playlist for a command, preferring the --id flag
// over the configured playlist.
func (r *Runner) playlistID(cmd *cli.Command) (string, error) {
	if id := cmd.String("id"); id != "" {
		return id, nil
	}
	if id := r.config.Credentials.Spotify.PlaylistID; id != "" {
		return id, nil
	}
	return "", fmt.Errorf("%w: set --id or playlist_id (SPOTIFY_PLAYLIST_ID)", shared.ErrMissingArgument)
}

// PlaylistShow prints the configured playlist and its tracks.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	playlistID, err := r.playlistID(cmd)
	if err != nil {
		return err
	}

	if err := r.ensureAuth(ctx, cmd, false); err != nil {
		return err
	}

	r.logger.Infof("fetching playlist %v", playlistID)

	export, err := r.spotify.ExportPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(export, pretty)
	}

	r.writePlain("Playlist: %s\n", export.Playlist.Name)
	if export.Playlist.Description != "" {
		r.writePlain("Description: %s\n", export.Playlist.Description)
	}
	r.writePlain("Tracks: %d\n\n", len(export.Tracks))

	for i, track := range export.Tracks {
		r.writePlain("%d. %s - %s\n", i+1, strings.Join(track.Artists, ", "), track.Title)
		if track.Album != "" {
			r.writePlain("   Album: %s\n", track.Album)
		}
	}

	return nil
}

// PlaylistExport exports a playlist with all tracks to JSON.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	outputFile := cmd.String("output")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	playlistID, err := r.playlistID(cmd)
	if err != nil {
		return err
	}

	if err := r.ensureAuth(ctx, cmd, false); err != nil {
		return err
	}

	r.logger.Infof("exporting playlist %v", playlistID)

	export, err := r.spotify.ExportPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}

	if outputFile == "" && !useJSON {
		outputFile = fmt.Sprintf("playlist_%s.json", export.Playlist.ID)
	}

	if outputFile != "" {
		data, err := shared.MarshalJSON(export, true)
		if err != nil {
			return fmt.Errorf("failed to marshal export: %w", err)
		}
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}

		r.logger.Infof("playlist exported to %v with %v tracks", outputFile, len(export.Tracks))

		r.writePlain("✓ Playlist exported to %s\n", outputFile)
		r.writePlain("  Playlist: %s\n", export.Playlist.Name)
		r.writePlain("  Tracks: %d\n", len(export.Tracks))
		return nil
	}

	return r.writeJSON(export, pretty)
}
