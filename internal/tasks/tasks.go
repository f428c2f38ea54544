package tasks

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	// DefaultConcurrency is how many lookups run at once.
	DefaultConcurrency = 5
	// DefaultRateLimit is the lookup rate in requests per second.
	DefaultRateLimit = 5.0
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Items finished so far
	Total   int    // Total items in this phase
	Message string // Human-readable message for display
	Err     error  // Set when the item failed
}

// Operation phase enumeration
type Phase int

const (
	RegisterPlaylists Phase = iota
	IngestSongs
)

func (p Phase) String() string {
	switch p {
	case RegisterPlaylists:
		return "register_playlists"
	case IngestSongs:
		return "ingest_songs"
	default:
		return "unknown"
	}
}

// BatchOpts tunes fan-out and pacing. Zero values use the defaults.
type BatchOpts struct {
	Concurrency int     // Lookups in flight (default: 5, max: 10)
	RateLimit   float64 // Lookups per second (default: 5)
}

func (o BatchOpts) withDefaults() BatchOpts {
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Concurrency > 10 {
		o.Concurrency = 10
	}
	if o.RateLimit <= 0 {
		o.RateLimit = DefaultRateLimit
	}
	return o
}

// ItemResult is the outcome of one item of a batch.
type ItemResult struct {
	Input string // Link as given
	Name  string // Playlist title or catalog key on success
	Err   error
}

// BatchResult summarises a batch. Results keep input order.
type BatchResult struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []ItemResult
}

// Names returns the names of the successful items in input order.
func (r *BatchResult) Names() []string {
	names := make([]string, 0, r.Succeeded)
	for _, res := range r.Results {
		if res.Err == nil {
			names = append(names, res.Name)
		}
	}
	return names
}

// sendProgress sends a progress update through the channel without blocking.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// runBatch applies fn to every non-empty input with bounded concurrency and rate limiting.
//
// Item failures are recorded in the result; only context cancellation aborts the batch.
func runBatch(
	ctx context.Context,
	phase Phase,
	progress chan<- ProgressUpdate,
	inputs []string,
	opts BatchOpts,
	fn func(ctx context.Context, input string) (string, error),
) (*BatchResult, error) {
	opts = opts.withDefaults()

	var items []string
	for _, in := range inputs {
		if in != "" {
			items = append(items, in)
		}
	}

	result := &BatchResult{Total: len(items), Results: make([]ItemResult, len(items))}
	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, in := range items {
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}
			name, err := fn(gctx, in)

			mu.Lock()
			defer mu.Unlock()

			result.Results[i] = ItemResult{Input: in, Name: name, Err: err}
			msg := fmt.Sprintf("%s: %s", phase, name)
			if err != nil {
				result.Failed++
				msg = fmt.Sprintf("%s: %s failed", phase, in)
			} else {
				result.Succeeded++
			}
			sendProgress(progress, ProgressUpdate{
				Phase:   phase,
				Step:    result.Succeeded + result.Failed,
				Total:   len(items),
				Message: msg,
				Err:     err,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("batch cancelled: %w", err)
	}
	return result, nil
}
