package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/moodriver/encore/internal/shared"
)

// SetupConfig writes the starter config file.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlain("✓ Config written to %s\n", path)
	r.writePlain("Fill in your Spotify and model credentials, or set them via environment variables.\n")

	return nil
}
