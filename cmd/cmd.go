// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles configuration scaffolding.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a starter config.toml in the working directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Destination path for the config file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage Spotify authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Authorize via browser (authorization code flow)",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-browser",
						Usage: "Print the authorization URL instead of opening a browser",
					},
					&cli.BoolFlag{
						Name:  "manual",
						Usage: "Skip the callback server and paste the code by hand",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "url",
				Usage:  "Print the authorization URL without starting a server",
				Action: r.AuthURL,
			},
			{
				Name:   "token",
				Usage:  "Get an app token via the client credentials flow",
				Action: r.AuthToken,
			},
		},
	}
}

// playlistCommand handles playlist operations
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Spotify playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the configured playlist and its tracks",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "id",
						Usage: "Playlist ID (defaults to the configured playlist)",
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "Access token to use instead of the client credentials flow",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.PlaylistShow,
			},
			{
				Name:  "export",
				Usage: "Export playlist JSON for debugging",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "id",
						Usage: "Playlist ID (defaults to the configured playlist)",
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "Access token to use instead of the client credentials flow",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.PlaylistExport,
			},
		},
	}
}

// curateCommand runs the suggestion workflow against the configured playlist.
func curateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "curate",
		Usage: "Ask the model for similar songs and add them to the playlist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "id",
				Usage: "Playlist ID (defaults to the configured playlist)",
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: "Access token to use instead of the browser flow",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of songs to request",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the interactive count prompt",
			},
			&cli.StringFlag{
				Name:  "save",
				Usage: "Write per-suggestion outcomes to a CSV file",
			},
		},
		Action: r.Curate,
	}
}

// apiCommand handles raw Spotify Web API calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Raw Spotify Web API calls",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET against the Web API, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "token",
						Usage: "Access token to use instead of the client credentials flow",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "Access token to use instead of the client credentials flow",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive curation.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for playlist curation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "id",
				Usage: "Playlist ID (defaults to the configured playlist)",
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: "Access token to use instead of the browser flow",
			},
		},
		Action: r.TUI,
	}
}
