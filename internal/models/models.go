package models

import (
	"fmt"
	"strings"

	"github.com/spring01/music/internal/shared"
)

// Entry is the resolved unit of playback. ID is a composite key for the global catalog and a decimal
// index for playlists.
type Entry struct {
	ID     string `json:"id"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	Title  string `json:"title"`
	URI    string `json:"uri"`
}

// CatalogRow is a WebMusic row. IsMusic is always 1 for rows eligible for playback.
type CatalogRow struct {
	ArtistAlbumTitle string `json:"ArtistAlbumTitle"`
	IsMusic          int    `json:"IsMusic"`
	Link             string `json:"Link"`
}

// Validate checks the row key decodes and a link is present.
func (r *CatalogRow) Validate() error {
	if _, _, _, err := DecodeKey(r.ArtistAlbumTitle); err != nil {
		return err
	}
	if strings.TrimSpace(r.Link) == "" {
		return fmt.Errorf("%w: catalog row %q has no link", shared.ErrInvalidInput, r.ArtistAlbumTitle)
	}
	return nil
}

// PlaylistRecord is a PlaylistMusics row: the fixed, shuffled order of a playlist's songs.
type PlaylistRecord struct {
	Title     string   `json:"title"`
	Link      string   `json:"link"`
	SongLinks []string `json:"songLinks"`
}

// Len returns the number of songs in the record.
func (p *PlaylistRecord) Len() int {
	return len(p.SongLinks)
}

// KnownPlaylist is a WebPlaylist row: a playlist name and its external link.
type KnownPlaylist struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Validate checks both fields are present.
func (p *KnownPlaylist) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: playlist title is required", shared.ErrInvalidInput)
	}
	if strings.TrimSpace(p.Link) == "" {
		return fmt.Errorf("%w: playlist link is required", shared.ErrInvalidInput)
	}
	return nil
}

// Media is the optional structured music metadata some sources carry.
type Media struct {
	Artist string `json:"artist"`
	Song   string `json:"song"`
}

// Format is one stream candidate. Bitrate is in kbit/s.
type Format struct {
	URL      string `json:"url"`
	Bitrate  int    `json:"bitrate"`
	HasAudio bool   `json:"hasAudio"`
	HasVideo bool   `json:"hasVideo"`
}

// SourceInfo describes a resolved source reference.
type SourceInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Media       *Media   `json:"media,omitempty"`
	Formats     []Format `json:"formats"`
}
