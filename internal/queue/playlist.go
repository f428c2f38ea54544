package queue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spring01/music/internal/metadata"
	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/services"
	"github.com/spring01/music/internal/shared"
)

// PlaylistQueue plays a registered playlist in a stored shuffled order, addressed by decimal index.
//
// Initialize must run before the first navigation. Every call re-shuffles and overwrites the stored order.
type PlaylistQueue struct {
	name string
	deps Deps
	opts options
}

// NewPlaylistQueue creates a queue for the playlist called name, ignoring case.
func NewPlaylistQueue(name string, deps Deps, opts ...Option) *PlaylistQueue {
	return &PlaylistQueue{name: strings.ToLower(name), deps: deps, opts: newOptions(opts)}
}

func (q *PlaylistQueue) ID() string       { return q.name }
func (q *PlaylistQueue) Name() string     { return q.name }
func (q *PlaylistQueue) IsFinished() bool { return false }

// Initialize lists the registered playlist, shuffles its items and stores the order.
func (q *PlaylistQueue) Initialize(ctx context.Context) error {
	known, err := q.deps.Known.Get(ctx, q.name)
	if err != nil {
		return err
	}

	playlistID, err := services.PlaylistIDFromLink(known.Link)
	if err != nil {
		return err
	}

	ids, err := q.deps.Lister.ListItems(ctx, playlistID, q.opts.limit)
	if err != nil {
		return err
	}

	links := make([]string, len(ids))
	for i, id := range ids {
		links[i] = services.WatchLink(id)
	}
	Shuffle(links, q.opts.intn)

	q.opts.logger.Debug("playlist initialized", "playlist", q.name, "songs", len(links))

	return q.deps.Playlists.Put(ctx, &models.PlaylistRecord{Title: q.name, Link: known.Link, SongLinks: links})
}

// Initial returns the first song of the stored order.
func (q *PlaylistQueue) Initial(ctx context.Context) (*models.Entry, error) {
	record, err := q.record(ctx)
	if err != nil {
		return nil, err
	}
	return q.fetch(ctx, record, 0)
}

// Next returns the song after index currentID, wrapping to the first.
func (q *PlaylistQueue) Next(ctx context.Context, currentID string) (*models.Entry, error) {
	record, i, err := q.position(ctx, currentID)
	if err != nil {
		return nil, err
	}
	return q.fetch(ctx, record, (i+1)%record.Len())
}

// Previous returns the song before index currentID, wrapping to the last.
func (q *PlaylistQueue) Previous(ctx context.Context, currentID string) (*models.Entry, error) {
	record, i, err := q.position(ctx, currentID)
	if err != nil {
		return nil, err
	}
	n := record.Len()
	return q.fetch(ctx, record, (n+i-1)%n)
}

func (q *PlaylistQueue) record(ctx context.Context) (*models.PlaylistRecord, error) {
	record, err := q.deps.Playlists.Get(ctx, q.name)
	if err != nil {
		return nil, err
	}
	if record.Len() == 0 {
		return nil, fmt.Errorf("%w: playlist %s has no songs", shared.ErrNotFound, q.name)
	}
	return record, nil
}

// position parses currentID and reads the record. Indexes past the end are reduced modulo its length.
func (q *PlaylistQueue) position(ctx context.Context, currentID string) (*models.PlaylistRecord, int, error) {
	i, err := strconv.Atoi(currentID)
	if err != nil || i < 0 {
		return nil, 0, fmt.Errorf("%w: %q is not a playlist index", shared.ErrMalformedCursor, currentID)
	}

	record, err := q.record(ctx)
	if err != nil {
		return nil, 0, err
	}
	return record, i % record.Len(), nil
}

func (q *PlaylistQueue) fetch(ctx context.Context, record *models.PlaylistRecord, i int) (*models.Entry, error) {
	link := record.SongLinks[i]
	q.opts.logger.Debug("playlist fetch", "playlist", q.name, "index", i, "link", link)

	info, err := q.deps.Extractor.Extract(ctx, link)
	if err != nil {
		if errors.Is(err, shared.ErrExternalResolution) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", shared.ErrExternalResolution, err)
	}

	track := metadata.Resolve(info)
	uri, err := metadata.FirstFormatURL(info.Formats)
	if err != nil {
		return nil, err
	}

	return &models.Entry{ID: strconv.Itoa(i), Artist: track.Artist, Album: track.Album, Title: track.Title, URI: uri}, nil
}

// Shuffle permutes items in place with Fisher-Yates, drawing j uniformly from [0, i] for i from last to 1.
func Shuffle[T any](items []T, intn func(n int) int) {
	for i := len(items) - 1; i > 0; i-- {
		j := intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
