package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spring01/music/internal/formatter"
	"github.com/spring01/music/internal/shared"
	"github.com/spring01/music/internal/tasks"
	"github.com/spring01/music/internal/ui"
	"github.com/urfave/cli/v3"
)

// CatalogAdd writes one song to the global catalog from explicit fields.
func (r *Runner) CatalogAdd(ctx context.Context, cmd *cli.Command) error {
	s, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	key, err := tasks.AddSong(ctx, s.deps.Catalog, cmd.String("artist"), cmd.String("album"), cmd.String("title"), cmd.String("link"))
	if err != nil {
		return fmt.Errorf("failed to add song: %w", err)
	}

	r.logger.Info("added song", "key", key)
	return r.writePlain("%s %s\n", ui.Styles.OK("✓"), key)
}

// CatalogIngest resolves each watch link and adds it to the global catalog.
func (r *Runner) CatalogIngest(ctx context.Context, cmd *cli.Command) error {
	links, err := readLinks(cmd)
	if err != nil {
		return err
	}

	s, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ingester := tasks.NewIngester(s.deps.Extractor, s.deps.Catalog, r.logger, tasks.BatchOpts{Concurrency: int(cmd.Int("concurrency"))})

	r.writePlain("Ingesting %d links...\n", len(links))
	progress, done := r.showProgress()
	result, err := ingester.Ingest(ctx, progress, links)
	close(progress)
	<-done
	if err != nil {
		return err
	}

	r.writeBatchSummary("Ingest Complete!", result)
	return nil
}

// CatalogList prints every song in the global catalog.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	s, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	rows, err := s.deps.Catalog.List(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(rows, cmd.Bool("pretty"))
	}

	text, err := formatter.ExportCatalogToText(rows)
	if err != nil {
		return err
	}
	_, err = r.output.Write(text)
	return err
}

// CatalogExport renders the global catalog to a file or stdout.
func (r *Runner) CatalogExport(ctx context.Context, cmd *cli.Command) error {
	s, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	rows, err := s.deps.Catalog.List(ctx)
	if err != nil {
		return err
	}

	format := cmd.String("format")
	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteCatalogExport(format, rows, path); err != nil {
			return err
		}
		r.logger.Info("exported catalog", "format", format, "path", path, "songs", len(rows))
		return r.writePlain("%s Exported %d songs to %s\n", ui.Styles.OK("✓"), len(rows), path)
	}

	data, err := formatter.ExportCatalog(format, rows)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
	}
	_, err = r.output.Write(data)
	return err
}

// CatalogRegister registers playlists by link, then writes the voice catalog of every known playlist.
func (r *Runner) CatalogRegister(ctx context.Context, cmd *cli.Command) error {
	links, err := readLinks(cmd)
	if err != nil {
		return err
	}

	s, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	registrar := tasks.NewRegistrar(s.deps.Lister, s.deps.Known, r.logger, tasks.BatchOpts{Concurrency: int(cmd.Int("concurrency"))})

	r.writePlain("Registering %d playlists...\n", len(links))
	progress, done := r.showProgress()
	result, err := registrar.Register(ctx, progress, links)
	close(progress)
	<-done
	if err != nil {
		return err
	}

	r.writeBatchSummary("Registration Complete!", result)

	known, err := s.deps.Known.List(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(known))
	for _, p := range known {
		names = append(names, p.Title)
	}

	path := cmd.String("output")
	if err := tasks.WriteCatalog(tasks.BuildCatalog(names, r.now()), path); err != nil {
		return err
	}
	r.logger.Info("wrote voice catalog", "path", path, "playlists", len(names))
	return r.writePlain("Catalog with %d playlists written to %s\n", len(names), path)
}

// CatalogPlaylists prints the registered playlists.
func (r *Runner) CatalogPlaylists(ctx context.Context, cmd *cli.Command) error {
	s, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	known, err := s.deps.Known.List(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(known, true)
	}

	r.writePlainHeader(fmt.Sprintf("Playlists (%d)", len(known)))
	for i, p := range known {
		r.writePlain("%d. %s\n   %s\n", i+1, p.Title, ui.Styles.Help(p.Link))
	}
	return nil
}

// showProgress prints updates until the returned channel is closed; done closes once printing stops.
func (r *Runner) showProgress() (chan tasks.ProgressUpdate, <-chan struct{}) {
	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			if update.Err != nil {
				r.writePlain("   [%d/%d] %s %s\n", update.Step, update.Total, ui.Styles.Err("✗"), update.Message)
				continue
			}
			r.writePlain("   [%d/%d] %s\n", update.Step, update.Total, update.Message)
		}
	}()
	return progress, done
}

func (r *Runner) writeBatchSummary(title string, result *tasks.BatchResult) {
	r.writePlainln("")
	r.writePlainHeader(title)
	r.writePlain("%s (of %d)\n", ui.Styles.Summary(result.Succeeded, result.Failed), result.Total)

	if result.Failed > 0 {
		r.writePlain("\nFailed:\n")
		for _, item := range result.Results {
			if item.Err != nil {
				r.writePlain("  - %s: %v\n", item.Input, item.Err)
			}
		}
	}
}

// readLinks collects links from the arguments and the --file flag. Blank lines and # comments are skipped.
func readLinks(cmd *cli.Command) ([]string, error) {
	links := append([]string{}, cmd.Args().Slice()...)

	if path := cmd.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open links file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			links = append(links, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read links file: %w", err)
		}
	}

	if len(links) == 0 {
		return nil, fmt.Errorf("%w: provide links as arguments or with --file", shared.ErrMissingArgument)
	}
	return links, nil
}
