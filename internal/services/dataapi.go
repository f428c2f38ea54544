// YouTube Data API v3 backed [PlaylistLister]
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spring01/music/internal/shared"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// DataAPIPlaylistLister implements [PlaylistLister] with the YouTube Data API.
type DataAPIPlaylistLister struct {
	svc *youtube.Service
}

// DataAPIOption configures a [DataAPIPlaylistLister].
type DataAPIOption func(*dataAPIConfig)

type dataAPIConfig struct {
	endpoint   string
	httpClient *http.Client
}

// WithEndpoint points the client at a different API root, used by tests.
func WithEndpoint(endpoint string) DataAPIOption {
	return func(c *dataAPIConfig) { c.endpoint = endpoint }
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) DataAPIOption {
	return func(c *dataAPIConfig) { c.httpClient = client }
}

// NewDataAPIPlaylistLister creates a lister authenticated with apiKey.
func NewDataAPIPlaylistLister(ctx context.Context, apiKey string, opts ...DataAPIOption) (*DataAPIPlaylistLister, error) {
	cfg := &dataAPIConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var clientOpts []option.ClientOption
	if apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(apiKey))
	}
	if cfg.endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(cfg.endpoint))
	}
	if cfg.httpClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(cfg.httpClient))
	} else if apiKey == "" {
		clientOpts = append(clientOpts, option.WithoutAuthentication())
	}

	svc, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}

	return &DataAPIPlaylistLister{svc: svc}, nil
}

// ListItems returns up to limit video ids of the playlist, in playlist order.
func (d *DataAPIPlaylistLister) ListItems(ctx context.Context, playlistID string, limit int) ([]string, error) {
	limit = clampLimit(limit)

	resp, err := d.svc.PlaylistItems.List([]string{"id", "snippet"}).
		PlaylistId(playlistID).
		MaxResults(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: playlist items %s: %w", shared.ErrExternalResolution, playlistID, err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.ResourceId == nil || item.Snippet.ResourceId.VideoId == "" {
			continue
		}
		ids = append(ids, item.Snippet.ResourceId.VideoId)
		if len(ids) == limit {
			break
		}
	}

	return ids, nil
}

// PlaylistTitle returns the playlist's title. Zero or multiple matches is [shared.ErrPlaylistNotFound].
func (d *DataAPIPlaylistLister) PlaylistTitle(ctx context.Context, playlistID string) (string, error) {
	resp, err := d.svc.Playlists.List([]string{"snippet"}).
		Id(playlistID).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("%w: playlist %s: %w", shared.ErrExternalResolution, playlistID, err)
	}

	if len(resp.Items) != 1 || resp.Items[0].Snippet == nil {
		return "", fmt.Errorf("%w: %s matched %d playlists", shared.ErrPlaylistNotFound, playlistID, len(resp.Items))
	}

	return resp.Items[0].Snippet.Title, nil
}
