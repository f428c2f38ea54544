package queue

import (
	"context"
	"fmt"

	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/repositories"
	"github.com/spring01/music/internal/shared"
)

const (
	// CatalogQueueID identifies the global catalog in requests.
	CatalogQueueID = "Playlist.AllMusic"
	// CatalogQueueName is the spoken and displayed name of the global catalog.
	CatalogQueueName = "All music"

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// CatalogQueue traverses every music row of the global catalog as a ring ordered by composite key.
//
// It holds no mutable state, so one instance serves all requests.
type CatalogQueue struct {
	store   repositories.CatalogStore
	streams StreamSource
	opts    options
}

// NewCatalogQueue creates the global catalog queue.
func NewCatalogQueue(store repositories.CatalogStore, streams StreamSource, opts ...Option) *CatalogQueue {
	return &CatalogQueue{store: store, streams: streams, opts: newOptions(opts)}
}

func (q *CatalogQueue) ID() string       { return CatalogQueueID }
func (q *CatalogQueue) Name() string     { return CatalogQueueName }
func (q *CatalogQueue) IsFinished() bool { return false }

// Initial starts from the first key after a random capital letter.
func (q *CatalogQueue) Initial(ctx context.Context) (*models.Entry, error) {
	letter := string(alphabet[q.opts.intn(len(alphabet))])
	q.opts.logger.Debug("catalog initial", "letter", letter)
	return q.resolve(ctx, letter, true)
}

// Next returns the entry after currentID, wrapping to the first key.
func (q *CatalogQueue) Next(ctx context.Context, currentID string) (*models.Entry, error) {
	if _, _, _, err := models.DecodeKey(currentID); err != nil {
		return nil, err
	}
	return q.resolve(ctx, currentID, true)
}

// Previous returns the entry before currentID, wrapping to the last key.
func (q *CatalogQueue) Previous(ctx context.Context, currentID string) (*models.Entry, error) {
	if _, _, _, err := models.DecodeKey(currentID); err != nil {
		return nil, err
	}
	return q.resolve(ctx, currentID, false)
}

// neighbour finds the row next to cursor, retrying unbounded when the scan runs off the end.
func (q *CatalogQueue) neighbour(ctx context.Context, cursor string, forward bool) (*models.CatalogRow, error) {
	row, err := q.store.QueryOne(ctx, &cursor, forward)
	if err != nil {
		return nil, err
	}
	if row != nil {
		return row, nil
	}

	q.opts.logger.Debug("catalog wrap", "cursor", cursor, "forward", forward)
	row, err = q.store.QueryOne(ctx, nil, forward)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: catalog is empty", shared.ErrNotFound)
	}
	return row, nil
}

func (q *CatalogQueue) resolve(ctx context.Context, cursor string, forward bool) (*models.Entry, error) {
	row, err := q.neighbour(ctx, cursor, forward)
	if err != nil {
		return nil, err
	}

	artist, album, title, err := models.DecodeKey(row.ArtistAlbumTitle)
	if err != nil {
		return nil, fmt.Errorf("catalog row: %w", err)
	}

	uri, err := q.streams.Resolve(ctx, row.Link)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", row.ArtistAlbumTitle, err)
	}

	return &models.Entry{ID: row.ArtistAlbumTitle, Artist: artist, Album: album, Title: title, URI: uri}, nil
}
