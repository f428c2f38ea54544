// yt-dlp backed [Extractor] and [PlaylistLister]
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lrstanley/go-ytdlp"
	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/shared"
)

// dumpOptions tunes a yt-dlp single-JSON dump.
type dumpOptions struct {
	Flat  bool // list playlist entries without resolving each one
	Limit int  // playlist items to fetch when Flat
}

// dumpFunc runs yt-dlp against target and returns the JSON it printed.
type dumpFunc func(ctx context.Context, target string, opts dumpOptions) ([]byte, error)

// newYTDLPDump builds the default [dumpFunc] around a go-ytdlp command.
func newYTDLPDump(proxy string) dumpFunc {
	return func(ctx context.Context, target string, opts dumpOptions) ([]byte, error) {
		cmd := ytdlp.New().
			DumpSingleJSON().
			SkipDownload().
			NoWarnings().
			IgnoreConfig()

		if proxy != "" {
			cmd.Proxy(proxy)
		}

		if opts.Flat {
			cmd.FlatPlaylist().PlaylistItems(fmt.Sprintf("1-%d", opts.Limit))
		} else {
			cmd.NoPlaylist()
		}

		res, err := cmd.Run(ctx, target)
		if err != nil {
			if res != nil && res.Stderr != "" {
				return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, strings.TrimSpace(res.Stderr))
			}
			return nil, fmt.Errorf("yt-dlp failed: %w", err)
		}

		return []byte(res.Stdout), nil
	}
}

// ytdlpFormat is the subset of a yt-dlp format entry we read.
type ytdlpFormat struct {
	FormatID string  `json:"format_id"`
	URL      string  `json:"url"`
	ACodec   string  `json:"acodec"`
	VCodec   string  `json:"vcodec"`
	ABR      float64 `json:"abr"`
	TBR      float64 `json:"tbr"`
}

// ytdlpInfo is the subset of a yt-dlp info dict we read.
type ytdlpInfo struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Artist      string        `json:"artist"`
	Track       string        `json:"track"`
	Formats     []ytdlpFormat `json:"formats"`
	Entries     []struct {
		ID string `json:"id"`
	} `json:"entries"`
}

func hasCodec(codec string) bool {
	return codec != "" && codec != "none"
}

// toSourceInfo maps a yt-dlp info dict to a [models.SourceInfo].
func (i *ytdlpInfo) toSourceInfo() *models.SourceInfo {
	info := &models.SourceInfo{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Formats:     make([]models.Format, 0, len(i.Formats)),
	}

	if i.Artist != "" || i.Track != "" {
		info.Media = &models.Media{Artist: i.Artist, Song: i.Track}
	}

	for _, f := range i.Formats {
		if f.URL == "" {
			continue
		}
		bitrate := f.ABR
		if bitrate == 0 {
			bitrate = f.TBR
		}
		info.Formats = append(info.Formats, models.Format{
			URL:      f.URL,
			Bitrate:  int(bitrate),
			HasAudio: hasCodec(f.ACodec),
			HasVideo: hasCodec(f.VCodec),
		})
	}

	return info
}

func decodeInfo(data []byte) (*ytdlpInfo, error) {
	var info ytdlpInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("%w: failed to decode yt-dlp output: %v", shared.ErrExternalResolution, err)
	}
	return &info, nil
}

// YTDLPExtractor implements [Extractor] with yt-dlp.
type YTDLPExtractor struct {
	dump dumpFunc
}

// NewYTDLPExtractor creates an extractor. proxy may be empty.
func NewYTDLPExtractor(proxy string) *YTDLPExtractor {
	return &YTDLPExtractor{dump: newYTDLPDump(proxy)}
}

// Extract resolves sourceRef to its metadata and format candidates.
func (y *YTDLPExtractor) Extract(ctx context.Context, sourceRef string) (*models.SourceInfo, error) {
	data, err := y.dump(ctx, sourceRef, dumpOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", shared.ErrExternalResolution, sourceRef, err)
	}

	info, err := decodeInfo(data)
	if err != nil {
		return nil, err
	}

	return info.toSourceInfo(), nil
}

// YTDLPPlaylistLister implements [PlaylistLister] with yt-dlp's flat playlist mode.
type YTDLPPlaylistLister struct {
	dump dumpFunc
}

// NewYTDLPPlaylistLister creates a lister. proxy may be empty.
func NewYTDLPPlaylistLister(proxy string) *YTDLPPlaylistLister {
	return &YTDLPPlaylistLister{dump: newYTDLPDump(proxy)}
}

func playlistURL(playlistID string) string {
	return "https://www.youtube.com/playlist?list=" + playlistID
}

func (y *YTDLPPlaylistLister) flat(ctx context.Context, playlistID string, limit int) (*ytdlpInfo, error) {
	data, err := y.dump(ctx, playlistURL(playlistID), dumpOptions{Flat: true, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("%w: playlist %s: %w", shared.ErrExternalResolution, playlistID, err)
	}
	return decodeInfo(data)
}

// ListItems returns up to limit video ids of the playlist.
func (y *YTDLPPlaylistLister) ListItems(ctx context.Context, playlistID string, limit int) ([]string, error) {
	limit = clampLimit(limit)

	info, err := y.flat(ctx, playlistID, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(info.Entries))
	for _, entry := range info.Entries {
		if entry.ID == "" {
			continue
		}
		ids = append(ids, entry.ID)
		if len(ids) == limit {
			break
		}
	}

	return ids, nil
}

// PlaylistTitle returns the playlist's title.
func (y *YTDLPPlaylistLister) PlaylistTitle(ctx context.Context, playlistID string) (string, error) {
	info, err := y.flat(ctx, playlistID, 1)
	if err != nil {
		return "", err
	}
	if info.Title == "" {
		return "", fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}
	return info.Title, nil
}
