package metadata

import (
	"strings"

	"github.com/spring01/music/internal/models"
)

const (
	// AutoGeneratedMarker ends descriptions written by the platform's music auto-uploader.
	AutoGeneratedMarker = "Auto-generated by YouTube."
	// Unknown fills any field the heuristic could not determine.
	Unknown = "unknown"

	titleArtistDelimiter = " · "
	lineBreakReplacement = "; "
)

var lineBreaks = strings.NewReplacer("\r\n", lineBreakReplacement, "\n", lineBreakReplacement, "\r", lineBreakReplacement)

// Track is the display metadata of an entry.
type Track struct {
	Artist string
	Album  string
	Title  string
}

// Resolve derives artist, album, and title from info. A nil info resolves to all [Unknown].
func Resolve(info *models.SourceInfo) Track {
	var track Track
	if info == nil {
		return track.withDefaults()
	}

	description := info.Description
	if strings.HasSuffix(description, AutoGeneratedMarker) {
		return parseAutoGenerated(description).withDefaults()
	}

	provisional := info.Title
	if description != "" {
		provisional = lineBreaks.Replace(description)
	}

	switch {
	case info.Title != "":
		track.Artist = provisional
		track.Title = info.Title
	case info.Media != nil:
		track.Artist = info.Media.Artist
		track.Title = info.Media.Song
	default:
		track.Title = provisional
	}

	return track.withDefaults()
}

// parseAutoGenerated reads the "title · artist" line and the album line of generated liner notes.
func parseAutoGenerated(description string) Track {
	var track Track
	lines := strings.Split(description, "\n")

	if len(lines) > 2 {
		parts := strings.Split(lines[2], titleArtistDelimiter)
		track.Title = parts[0]
		if len(parts) > 1 {
			track.Artist = parts[1]
		}
	}
	if len(lines) > 4 {
		track.Album = lines[4]
	}

	return track
}

func (t Track) withDefaults() Track {
	if t.Artist == "" {
		t.Artist = Unknown
	}
	if t.Album == "" {
		t.Album = Unknown
	}
	if t.Title == "" {
		t.Title = Unknown
	}
	return t
}
