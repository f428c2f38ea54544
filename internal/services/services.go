// package services defines the external media capabilities the queues depend on
//
// YouTube via yt-dlp and the YouTube Data API
package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/shared"
)

// MaxPlaylistItems bounds how many items a playlist listing returns.
const MaxPlaylistItems = 50

const watchURLPrefix = "https://music.youtube.com/watch?v="

// Extractor resolves a source reference to metadata and playable format candidates.
type Extractor interface {
	// Extract fetches the description, title, media data, and formats for sourceRef.
	Extract(ctx context.Context, sourceRef string) (*models.SourceInfo, error)
}

// PlaylistLister enumerates external playlists.
type PlaylistLister interface {
	// ListItems returns up to limit video ids of the playlist, in playlist order.
	ListItems(ctx context.Context, playlistID string, limit int) ([]string, error)

	// PlaylistTitle returns the title of the playlist. Exactly one playlist must match.
	PlaylistTitle(ctx context.Context, playlistID string) (string, error)
}

// WatchLink maps a video id to its canonical source reference.
func WatchLink(videoID string) string {
	return watchURLPrefix + videoID
}

// PlaylistIDFromLink extracts the external playlist id from a playlist link.
//
// Accepts ".../playlist?list=<id>" links and any URL with a "list" query parameter.
func PlaylistIDFromLink(link string) (string, error) {
	if _, id, ok := strings.Cut(link, "playlist?list="); ok {
		if id, _, _ = strings.Cut(id, "&"); id != "" {
			return id, nil
		}
	}

	if u, err := url.Parse(link); err == nil {
		if id := u.Query().Get("list"); id != "" {
			return id, nil
		}
	}

	return "", fmt.Errorf("%w: %q", shared.ErrInvalidPlaylistLink, link)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxPlaylistItems {
		return MaxPlaylistItems
	}
	return limit
}
