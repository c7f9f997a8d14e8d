package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/moodriver/encore/internal/shared"
)

// APIGet performs a raw GET against the Spotify Web API.
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	pretty := cmd.Bool("pretty")

	if path == "" {
		return fmt.Errorf("%w: path argument is required", shared.ErrMissingArgument)
	}

	if err := r.ensureAuth(ctx, cmd, false); err != nil {
		return err
	}
	r.api.SetToken(r.spotifyToken())

	r.logger.Infof("GET %v", path)

	resp, err := r.api.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writeAPIResponse(resp.StatusCode, resp.IsJSON, resp.JSONData, resp.Body, pretty)
}

// APIPost performs a raw POST with a JSON body against the Spotify Web API.
func (r *Runner) APIPost(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	data := cmd.String("data")
	pretty := cmd.Bool("pretty")

	if path == "" {
		return fmt.Errorf("%w: path argument is required", shared.ErrMissingArgument)
	}

	if err := r.ensureAuth(ctx, cmd, false); err != nil {
		return err
	}
	r.api.SetToken(r.spotifyToken())

	r.logger.Infof("POST %v", path)

	resp, err := r.api.Post(ctx, path, []byte(data))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writeAPIResponse(resp.StatusCode, resp.IsJSON, resp.JSONData, resp.Body, pretty)
}

func (r *Runner) writeAPIResponse(status int, isJSON bool, jsonData any, body []byte, pretty bool) error {
	if status < 200 || status >= 300 {
		r.writePlain("Status: %d\n", status)
	}

	if isJSON {
		return r.writeJSON(jsonData, pretty)
	}

	return r.writePlain("%s\n", string(body))
}
