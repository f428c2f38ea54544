package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/shared"
)

// PlaylistRepository implements [PlaylistStore] over the PlaylistMusics table.
//
// Song links are stored as a JSON array so the shuffled order survives as written.
type PlaylistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new PlaylistRepository with the given database connection
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Get retrieves the materialised record for title
func (r *PlaylistRepository) Get(ctx context.Context, title string) (*models.PlaylistRecord, error) {
	query := `SELECT title, link, song_links FROM PlaylistMusics WHERE title = ?`

	var (
		record    models.PlaylistRecord
		songLinks string
	)

	err := r.db.QueryRowContext(ctx, query, title).Scan(&record.Title, &record.Link, &songLinks)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s has not been initialized", shared.ErrPlaylistNotFound, title)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan playlist: %w", err)
	}

	if err := json.Unmarshal([]byte(songLinks), &record.SongLinks); err != nil {
		return nil, fmt.Errorf("failed to decode song links of %s: %w", title, err)
	}

	return &record, nil
}

// Put overwrites the record stored under record.Title
func (r *PlaylistRepository) Put(ctx context.Context, record *models.PlaylistRecord) error {
	if record.Title == "" {
		return fmt.Errorf("%w: playlist record title is required", shared.ErrInvalidInput)
	}

	songLinks := record.SongLinks
	if songLinks == nil {
		songLinks = []string{}
	}

	encoded, err := json.Marshal(songLinks)
	if err != nil {
		return fmt.Errorf("failed to encode song links: %w", err)
	}

	query := `
		INSERT INTO PlaylistMusics (title, link, song_links, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET link = excluded.link, song_links = excluded.song_links, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, record.Title, record.Link, string(encoded), time.Now()); err != nil {
		return fmt.Errorf("failed to put playlist: %w", err)
	}
	return nil
}
