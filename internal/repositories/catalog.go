package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/shared"
)

// CatalogRepository implements [CatalogStore] over the WebMusic table.
//
// Range queries use the (IsMusic, ArtistAlbumTitle) index in its native direction.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new CatalogRepository with the given database connection
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// QueryOne returns the neighbouring music row of cursor in the given direction.
func (r *CatalogRepository) QueryOne(ctx context.Context, cursor *string, forward bool) (*models.CatalogRow, error) {
	query := `SELECT ArtistAlbumTitle, IsMusic, Link FROM WebMusic WHERE IsMusic = 1`
	args := []any{}

	op, order := ">", "ASC"
	if !forward {
		op, order = "<", "DESC"
	}

	if cursor != nil {
		query += " AND ArtistAlbumTitle " + op + " ?"
		args = append(args, *cursor)
	}
	query += " ORDER BY ArtistAlbumTitle " + order + " LIMIT 1"

	row, err := scanCatalogRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	return row, nil
}

// Get retrieves a row by its composite key
func (r *CatalogRepository) Get(ctx context.Context, key string) (*models.CatalogRow, error) {
	query := `SELECT ArtistAlbumTitle, IsMusic, Link FROM WebMusic WHERE ArtistAlbumTitle = ?`

	row, err := scanCatalogRow(r.db.QueryRowContext(ctx, query, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: catalog row %q", shared.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog row: %w", err)
	}
	return row, nil
}

// Put inserts or replaces a catalog row
func (r *CatalogRepository) Put(ctx context.Context, row *models.CatalogRow) error {
	if err := row.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO WebMusic (ArtistAlbumTitle, IsMusic, Link)
		VALUES (?, ?, ?)
		ON CONFLICT(ArtistAlbumTitle) DO UPDATE SET IsMusic = excluded.IsMusic, Link = excluded.Link
	`

	if _, err := r.db.ExecContext(ctx, query, row.ArtistAlbumTitle, row.IsMusic, row.Link); err != nil {
		return fmt.Errorf("failed to put catalog row: %w", err)
	}
	return nil
}

// List retrieves every music row in key order
func (r *CatalogRepository) List(ctx context.Context) ([]models.CatalogRow, error) {
	query := `SELECT ArtistAlbumTitle, IsMusic, Link FROM WebMusic WHERE IsMusic = 1 ORDER BY ArtistAlbumTitle ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var result []models.CatalogRow
	for rows.Next() {
		row, err := scanCatalogRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		result = append(result, *row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return result, nil
}

// scanner is satisfied by [sql.Row] and [sql.Rows]
type scanner interface {
	Scan(dest ...any) error
}

func scanCatalogRow(s scanner) (*models.CatalogRow, error) {
	var row models.CatalogRow
	if err := s.Scan(&row.ArtistAlbumTitle, &row.IsMusic, &row.Link); err != nil {
		return nil, err
	}
	return &row, nil
}
