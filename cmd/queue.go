package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spring01/music/internal/formatter"
	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/queue"
	"github.com/spring01/music/internal/shared"
	"github.com/spring01/music/internal/skill"
	"github.com/urfave/cli/v3"
)

// QueueInitial prints the first entry of the selected queue. Playlists are (re)initialized first.
func (r *Runner) QueueInitial(ctx context.Context, cmd *cli.Command) error {
	return r.navigate(ctx, cmd, func(ctx context.Context, q queue.Queue) (*models.Entry, error) {
		if p, ok := q.(*queue.PlaylistQueue); ok {
			if err := p.Initialize(ctx); err != nil {
				return nil, err
			}
		}
		return q.Initial(ctx)
	})
}

// QueueNext prints the entry after --id.
func (r *Runner) QueueNext(ctx context.Context, cmd *cli.Command) error {
	return r.navigate(ctx, cmd, func(ctx context.Context, q queue.Queue) (*models.Entry, error) {
		return q.Next(ctx, cmd.String("id"))
	})
}

// QueuePrevious prints the entry before --id.
func (r *Runner) QueuePrevious(ctx context.Context, cmd *cli.Command) error {
	return r.navigate(ctx, cmd, func(ctx context.Context, q queue.Queue) (*models.Entry, error) {
		return q.Previous(ctx, cmd.String("id"))
	})
}

func (r *Runner) navigate(ctx context.Context, cmd *cli.Command, step func(context.Context, queue.Queue) (*models.Entry, error)) error {
	s, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	resolver := queue.NewResolver(s.deps, r.queueOptions(s.config)...)

	var q queue.Queue = resolver.Catalog()
	if name := strings.TrimSpace(cmd.String("playlist")); name != "" {
		q = resolver.Playlist(name)
	}

	entry, err := step(ctx, q)
	if err != nil {
		return fmt.Errorf("%s: %w", q.Name(), err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(entry, true)
	}
	return r.writePlain("%s\n", formatter.FormatEntry(entry))
}

// Invoke answers one directive envelope, read from the file argument or stdin.
func (r *Runner) Invoke(ctx context.Context, cmd *cli.Command) error {
	var in io.Reader = r.input
	if path := cmd.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open request: %w", err)
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	s, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	sk := skill.New(
		queue.NewResolver(s.deps, r.queueOptions(s.config)...),
		skill.WithLogger(shared.WithLogger(r.logger, "component", "skill")),
		skill.WithClock(r.now),
	)

	resp, err := sk.Handle(ctx, raw)
	if err != nil {
		return err
	}

	if !cmd.Bool("pretty") {
		_, err = r.output.Write(append(resp, '\n'))
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, resp, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err = r.output.Write(buf.Bytes())
	return err
}
