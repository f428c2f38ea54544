// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the config file and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Revert the most recent database migration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupRollback,
			},
		},
	}
}

// serveCommand runs the skill web service.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve skill directives over HTTP",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address (default: server.host:server.port from config)",
			},
		},
		Action: r.Serve,
	}
}

// catalogCommand handles the global catalog and playlist registration.
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"cat"},
		Usage:   "Global catalog and playlist registration",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add one song to the global catalog",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "artist", Usage: "Song artist", Required: true},
					&cli.StringFlag{Name: "album", Usage: "Song album"},
					&cli.StringFlag{Name: "title", Usage: "Song title", Required: true},
					&cli.StringFlag{Name: "link", Usage: "Watch link of the song", Required: true},
				},
				Action: r.CatalogAdd,
			},
			{
				Name:      "ingest",
				Usage:     "Add songs to the global catalog from their watch links",
				ArgsUsage: "[link...]",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "File with one link per line",
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "Lookups in flight",
						Value: 5,
					},
				},
				Action: r.CatalogIngest,
			},
			{
				Name:  "list",
				Usage: "List every song in the global catalog",
				Flags: []cli.Flag{
					configFlag(),
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
				Action: r.CatalogList,
			},
			{
				Name:  "export",
				Usage: "Export the global catalog",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (csv, markdown, txt)",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (default: stdout)",
					},
				},
				Action: r.CatalogExport,
			},
			{
				Name:      "register",
				Usage:     "Register playlists by link and write the voice catalog file",
				ArgsUsage: "[link...]",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "File with one link per line",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Catalog file path",
						Value:   "catalog.json",
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "Lookups in flight",
						Value: 5,
					},
				},
				Action: r.CatalogRegister,
			},
			{
				Name:  "playlists",
				Usage: "List registered playlists",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CatalogPlaylists,
			},
		},
	}
}

// queueCommand navigates queues the way the skill does.
func queueCommand(r *Runner) *cli.Command {
	queueFlags := func(withID bool) []cli.Flag {
		flags := []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "playlist",
				Aliases: []string{"p"},
				Usage:   "Playlist name (default: all music)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		}
		if withID {
			flags = append(flags, &cli.StringFlag{
				Name:     "id",
				Usage:    "Current entry id",
				Required: true,
			})
		}
		return flags
	}

	return &cli.Command{
		Name:    "queue",
		Aliases: []string{"q"},
		Usage:   "Navigate the global catalog or a playlist",
		Commands: []*cli.Command{
			{
				Name:   "initial",
				Usage:  "Show the first entry (initializes playlists)",
				Flags:  queueFlags(false),
				Action: r.QueueInitial,
			},
			{
				Name:   "next",
				Usage:  "Show the entry after --id",
				Flags:  queueFlags(true),
				Action: r.QueueNext,
			},
			{
				Name:   "previous",
				Usage:  "Show the entry before --id",
				Flags:  queueFlags(true),
				Action: r.QueuePrevious,
			},
		},
	}
}

// invokeCommand runs one directive envelope through the skill.
func invokeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "invoke",
		Usage:     "Answer a directive envelope read from a file or stdin",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Invoke,
	}
}
