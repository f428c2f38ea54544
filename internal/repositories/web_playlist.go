package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/shared"
)

// KnownPlaylistRepository implements [KnownPlaylistStore] over the WebPlaylist table.
type KnownPlaylistRepository struct {
	db *sql.DB
}

// NewKnownPlaylistRepository creates a new KnownPlaylistRepository with the given database connection
func NewKnownPlaylistRepository(db *sql.DB) *KnownPlaylistRepository {
	return &KnownPlaylistRepository{db: db}
}

// Get retrieves a playlist by name, ignoring case
func (r *KnownPlaylistRepository) Get(ctx context.Context, name string) (*models.KnownPlaylist, error) {
	query := `SELECT title, link FROM WebPlaylist WHERE title_key = ? ORDER BY title LIMIT 1`

	var playlist models.KnownPlaylist
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(name)).Scan(&playlist.Title, &playlist.Link)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan known playlist: %w", err)
	}

	return &playlist, nil
}

// Put inserts or updates a playlist keyed by title
func (r *KnownPlaylistRepository) Put(ctx context.Context, playlist *models.KnownPlaylist) error {
	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO WebPlaylist (title, link, title_key, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET link = excluded.link, title_key = excluded.title_key, updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, playlist.Title, playlist.Link, strings.ToLower(playlist.Title), time.Now())
	if err != nil {
		return fmt.Errorf("failed to put known playlist: %w", err)
	}
	return nil
}

// List retrieves all registered playlists ordered by title
func (r *KnownPlaylistRepository) List(ctx context.Context) ([]models.KnownPlaylist, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT title, link FROM WebPlaylist ORDER BY title ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query known playlists: %w", err)
	}
	defer rows.Close()

	var playlists []models.KnownPlaylist
	for rows.Next() {
		var p models.KnownPlaylist
		if err := rows.Scan(&p.Title, &p.Link); err != nil {
			return nil, fmt.Errorf("failed to scan known playlist: %w", err)
		}
		playlists = append(playlists, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return playlists, nil
}
