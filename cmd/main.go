package main

import (
	"context"
	"errors"
	"os"

	"github.com/spring01/music/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:     "webmusic",
		Usage:    "Voice skill for the global music catalog and registered playlists",
		Version:  "1.0.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrMissingConfig) {
			logger.Warn("run 'webmusic setup database' to create a config file")
		}
		logger.Fatalf("application error: %v", err)
	}
}
