package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/repositories"
	"github.com/spring01/music/internal/services"
	"github.com/spring01/music/internal/shared"
)

// Registrar registers external playlists with the voice catalog.
type Registrar struct {
	lister services.PlaylistLister
	store  repositories.KnownPlaylistStore
	logger *log.Logger
	opts   BatchOpts
}

// NewRegistrar creates a registrar. A nil logger discards output.
func NewRegistrar(lister services.PlaylistLister, store repositories.KnownPlaylistStore, logger *log.Logger, opts BatchOpts) *Registrar {
	if logger == nil {
		logger = shared.NopLogger()
	}
	return &Registrar{lister: lister, store: store, logger: logger, opts: opts}
}

// Register looks up every playlist link and stores its title. Empty links are skipped.
func (r *Registrar) Register(ctx context.Context, progress chan<- ProgressUpdate, links []string) (*BatchResult, error) {
	return runBatch(ctx, RegisterPlaylists, progress, links, r.opts, r.registerOne)
}

func (r *Registrar) registerOne(ctx context.Context, link string) (string, error) {
	playlistID, err := services.PlaylistIDFromLink(link)
	if err != nil {
		r.logger.Warn("skipping link", "link", link, "error", err)
		return "", err
	}

	title, err := r.lister.PlaylistTitle(ctx, playlistID)
	if err != nil {
		r.logger.Warn("playlist lookup failed", "playlist", playlistID, "error", err)
		return "", err
	}

	if err := r.store.Put(ctx, &models.KnownPlaylist{Title: title, Link: link}); err != nil {
		return "", fmt.Errorf("failed to register %s: %w", title, err)
	}

	r.logger.Info("registered playlist", "title", title)
	return title, nil
}
