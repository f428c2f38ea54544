// package repositories provides the stores behind the queues.
//
// Every store method takes a context and returns wrapped errors; a missing row is reported through the
// shared sentinel errors so callers can use errors.Is.
package repositories

import (
	"context"

	"github.com/spring01/music/internal/models"
)

// CatalogStore is the global catalog: rows ordered by composite key, filtered to playable music.
type CatalogStore interface {
	// QueryOne returns the first music row strictly after (forward) or before (backward) the cursor.
	// A nil cursor is unbounded. It returns (nil, nil) when no row qualifies.
	QueryOne(ctx context.Context, cursor *string, forward bool) (*models.CatalogRow, error)

	// Get returns the row with the given key or [shared.ErrNotFound].
	Get(ctx context.Context, key string) (*models.CatalogRow, error)

	// Put writes row, replacing any row with the same key.
	Put(ctx context.Context, row *models.CatalogRow) error

	// List returns all music rows in key order.
	List(ctx context.Context) ([]models.CatalogRow, error)
}

// PlaylistStore holds materialised playlist orders.
type PlaylistStore interface {
	// Get returns the record for title or [shared.ErrPlaylistNotFound].
	Get(ctx context.Context, title string) (*models.PlaylistRecord, error)

	// Put writes record, overwriting any previous order.
	Put(ctx context.Context, record *models.PlaylistRecord) error
}

// KnownPlaylistStore holds the playlists registered with the voice catalog.
type KnownPlaylistStore interface {
	// Get looks up a playlist by case-insensitive name or returns [shared.ErrPlaylistNotFound].
	Get(ctx context.Context, name string) (*models.KnownPlaylist, error)

	// Put registers or updates a playlist.
	Put(ctx context.Context, playlist *models.KnownPlaylist) error

	// List returns every registered playlist ordered by title.
	List(ctx context.Context) ([]models.KnownPlaylist, error)
}
