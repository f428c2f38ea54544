package queue

import (
	"context"
	"fmt"

	"github.com/spring01/music/internal/shared"
)

// Selection criteria attribute types and values.
const (
	AttributeMediaType = "MEDIA_TYPE"
	MediaTypeTrack     = "TRACK"
	MediaTypePlaylist  = "PLAYLIST"
)

// Attribute is one content selection criterion, e.g. {MEDIA_TYPE, TRACK} or {PLAYLIST, entityId}.
type Attribute struct {
	Type     string `json:"type"`
	Value    string `json:"value,omitempty"`
	EntityID string `json:"entityId,omitempty"`
}

// Resolver picks the queue a request refers to.
type Resolver struct {
	deps    Deps
	opts    []Option
	catalog *CatalogQueue
}

// NewResolver builds the catalog queue once and keeps deps for playlist queues.
func NewResolver(deps Deps, opts ...Option) *Resolver {
	return &Resolver{
		deps:    deps,
		opts:    opts,
		catalog: NewCatalogQueue(deps.Catalog, deps.Streams, opts...),
	}
}

// Catalog returns the global catalog queue.
func (r *Resolver) Catalog() *CatalogQueue {
	return r.catalog
}

// Playlist returns an uninitialized queue for the playlist called name.
func (r *Resolver) Playlist(name string) *PlaylistQueue {
	return NewPlaylistQueue(name, r.deps, r.opts...)
}

// ForID returns the catalog for its sentinel id and a playlist queue for anything else.
func (r *Resolver) ForID(queueID string) Queue {
	if queueID == CatalogQueueID {
		return r.catalog
	}
	return r.Playlist(queueID)
}

// ForCriteria selects a queue from content search attributes. A playlist queue is initialized before return.
func (r *Resolver) ForCriteria(ctx context.Context, attributes []Attribute) (Queue, error) {
	if len(attributes) == 1 && attributes[0].Type == AttributeMediaType && attributes[0].Value == MediaTypeTrack {
		return r.catalog, nil
	}

	mediaType, ok := findAttribute(attributes, AttributeMediaType)
	if !ok || mediaType.Value != MediaTypePlaylist {
		return nil, fmt.Errorf("%w: %+v", shared.ErrUnsupportedCriteria, attributes)
	}

	entity, ok := findAttribute(attributes, mediaType.Value)
	if !ok || entity.EntityID == "" {
		return nil, fmt.Errorf("%w: playlist criteria without entity id", shared.ErrUnsupportedCriteria)
	}

	q := r.Playlist(entity.EntityID)
	if err := q.Initialize(ctx); err != nil {
		return nil, err
	}
	return q, nil
}

func findAttribute(attributes []Attribute, typ string) (Attribute, bool) {
	for _, a := range attributes {
		if a.Type == typ {
			return a, true
		}
	}
	return Attribute{}, false
}
