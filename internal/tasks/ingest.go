package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spring01/music/internal/metadata"
	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/repositories"
	"github.com/spring01/music/internal/services"
	"github.com/spring01/music/internal/shared"
)

// Ingester adds songs to the global catalog from their links.
type Ingester struct {
	extractor services.Extractor
	store     repositories.CatalogStore
	logger    *log.Logger
	opts      BatchOpts
}

// NewIngester creates an ingester. A nil logger discards output.
func NewIngester(extractor services.Extractor, store repositories.CatalogStore, logger *log.Logger, opts BatchOpts) *Ingester {
	if logger == nil {
		logger = shared.NopLogger()
	}
	return &Ingester{extractor: extractor, store: store, logger: logger, opts: opts}
}

// Ingest resolves each link's display metadata and writes a catalog row keyed by it.
func (i *Ingester) Ingest(ctx context.Context, progress chan<- ProgressUpdate, links []string) (*BatchResult, error) {
	return runBatch(ctx, IngestSongs, progress, links, i.opts, i.ingestOne)
}

func (i *Ingester) ingestOne(ctx context.Context, link string) (string, error) {
	info, err := i.extractor.Extract(ctx, link)
	if err != nil {
		i.logger.Warn("extraction failed", "link", link, "error", err)
		return "", err
	}

	track := metadata.Resolve(info)
	key, err := models.EncodeKey(track.Artist, track.Album, track.Title)
	if err != nil {
		return "", err
	}

	if err := i.store.Put(ctx, &models.CatalogRow{ArtistAlbumTitle: key, IsMusic: 1, Link: link}); err != nil {
		return "", fmt.Errorf("failed to add %q: %w", key, err)
	}

	i.logger.Info("added song", "key", key)
	return key, nil
}

// AddSong writes one catalog row from explicit fields.
func AddSong(ctx context.Context, store repositories.CatalogStore, artist, album, title, link string) (string, error) {
	key, err := models.EncodeKey(artist, album, title)
	if err != nil {
		return "", err
	}
	if err := store.Put(ctx, &models.CatalogRow{ArtistAlbumTitle: key, IsMusic: 1, Link: link}); err != nil {
		return "", err
	}
	return key, nil
}
