package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/moodriver/encore/internal/shared"
	"github.com/moodriver/encore/internal/ui"
)

// TUI launches the interactive terminal UI for playlist curation.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
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

	if err := r.ensureAuth(ctx, cmd, true); err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/encore-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.spotify, r.engine, playlistID, r.config.Curation.Count)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
