package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spring01/music/internal/queue"
	"github.com/spring01/music/internal/server"
	"github.com/spring01/music/internal/shared"
	"github.com/spring01/music/internal/skill"
	"github.com/spring01/music/internal/ui"
	"github.com/urfave/cli/v3"
)

// Serve runs the skill web service until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	s, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	resolver := queue.NewResolver(s.deps, r.queueOptions(s.config)...)
	sk := skill.New(resolver, skill.WithLogger(shared.WithLogger(r.logger, "component", "skill")))
	router := server.NewRouter(sk, shared.WithLogger(r.logger, "component", "http"))

	addr := cmd.String("addr")
	if addr == "" {
		addr = s.config.Server.Addr()
	}

	r.writePlainHeader("webmusic")
	r.writePlain("Catalog store: %s\n", catalogBackend(s.config))
	for _, route := range router.Routes() {
		r.writePlain("  %s %s\n", ui.Styles.Help("→"), route)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, server.New(addr, router), r.logger)
}
