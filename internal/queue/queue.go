// package queue implements the navigable catalogs behind the skill
package queue

import (
	"context"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/repositories"
	"github.com/spring01/music/internal/services"
	"github.com/spring01/music/internal/shared"
)

// Queue is a navigable catalog: the global catalog or one playlist.
type Queue interface {
	ID() string
	Name() string
	// IsFinished reports whether traversal has ended. Both queues wrap and never finish.
	IsFinished() bool

	Initial(ctx context.Context) (*models.Entry, error)
	Next(ctx context.Context, currentID string) (*models.Entry, error)
	Previous(ctx context.Context, currentID string) (*models.Entry, error)
}

// StreamSource resolves a source reference to a playable stream URI.
type StreamSource interface {
	Resolve(ctx context.Context, sourceRef string) (string, error)
}

// Deps are the stores and external capabilities queues are built on.
type Deps struct {
	Catalog   repositories.CatalogStore
	Playlists repositories.PlaylistStore
	Known     repositories.KnownPlaylistStore
	Lister    services.PlaylistLister
	Extractor services.Extractor
	Streams   StreamSource
}

// Option configures queues built by this package.
type Option func(*options)

type options struct {
	intn   func(n int) int
	logger *log.Logger
	limit  int
}

func newOptions(opts []Option) options {
	o := options{intn: rand.IntN, logger: shared.NopLogger(), limit: services.MaxPlaylistItems}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRand draws every random choice (initial letter, shuffle) from r.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.intn = r.IntN }
}

// WithLogger sets the logger used for navigation debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPlaylistLimit bounds how many playlist items are materialised. Values outside 1..50 use 50.
func WithPlaylistLimit(n int) Option {
	return func(o *options) {
		if n > 0 && n <= services.MaxPlaylistItems {
			o.limit = n
		}
	}
}
