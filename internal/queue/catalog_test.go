package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/shared"
)

func TestCatalogQueue(t *testing.T) {
	ctx := context.Background()
	a := models.MustEncodeKey("Abba", "Gold", "Dancing Queen")
	b := models.MustEncodeKey("Beatles", "Help", "Yesterday")
	c := models.MustEncodeKey("Cure", "Disintegration", "Lovesong")
	keys := []string{a, b, c}

	t.Run("identity", func(t *testing.T) {
		q := NewCatalogQueue(setupCatalog(t), echoStreams())
		if q.ID() != "Playlist.AllMusic" || q.Name() != "All music" || q.IsFinished() {
			t.Errorf("unexpected identity %s %s %v", q.ID(), q.Name(), q.IsFinished())
		}
	})

	t.Run("Initial", func(t *testing.T) {
		t.Run("scans forward from a random letter", func(t *testing.T) {
			q := NewCatalogQueue(setupCatalog(t, keys...), echoStreams(), fixedIntn(1))
			entry, err := q.Initial(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if entry.ID != b {
				t.Errorf("expected %q, got %q", b, entry.ID)
			}
		})

		t.Run("wraps past the last key", func(t *testing.T) {
			q := NewCatalogQueue(setupCatalog(t, keys...), echoStreams(), fixedIntn(25))
			entry, err := q.Initial(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if entry.ID != a {
				t.Errorf("expected %q, got %q", a, entry.ID)
			}
		})
	})

	t.Run("Next", func(t *testing.T) {
		q := NewCatalogQueue(setupCatalog(t, keys...), echoStreams())

		entry, err := q.Next(ctx, a)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := models.Entry{ID: b, Artist: "Beatles", Album: "Help", Title: "Yesterday", URI: "stream:link:" + b}
		if *entry != want {
			t.Errorf("expected %+v, got %+v", want, *entry)
		}

		t.Run("wraps to the first key", func(t *testing.T) {
			entry, err := q.Next(ctx, c)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if entry.ID != a {
				t.Errorf("expected %q, got %q", a, entry.ID)
			}
		})
	})

	t.Run("Previous", func(t *testing.T) {
		q := NewCatalogQueue(setupCatalog(t, keys...), echoStreams())

		entry, err := q.Previous(ctx, c)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if entry.ID != b {
			t.Errorf("expected %q, got %q", b, entry.ID)
		}

		t.Run("wraps to the last key", func(t *testing.T) {
			entry, err := q.Previous(ctx, a)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if entry.ID != c {
				t.Errorf("expected %q, got %q", c, entry.ID)
			}
		})
	})

	t.Run("ring property", func(t *testing.T) {
		q := NewCatalogQueue(setupCatalog(t, keys...), echoStreams())
		for _, start := range keys {
			current := start
			for range keys {
				entry, err := q.Next(ctx, current)
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				current = entry.ID
			}
			if current != start {
				t.Errorf("expected to return to %q after %d steps, got %q", start, len(keys), current)
			}
		}
	})

	t.Run("next then previous is identity", func(t *testing.T) {
		q := NewCatalogQueue(setupCatalog(t, keys...), echoStreams())
		for _, start := range keys {
			next, err := q.Next(ctx, start)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			back, err := q.Previous(ctx, next.ID)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if back.ID != start {
				t.Errorf("expected %q, got %q", start, back.ID)
			}
		}
	})

	t.Run("single key wraps to itself", func(t *testing.T) {
		only := "A ||| B ||| C"
		q := NewCatalogQueue(setupCatalog(t, only), echoStreams())

		for _, step := range []func(context.Context, string) (*models.Entry, error){q.Next, q.Previous} {
			entry, err := step(ctx, only)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if entry.ID != only || entry.Artist != "A" || entry.Album != "B" || entry.Title != "C" {
				t.Errorf("unexpected entry %+v", entry)
			}
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		q := NewCatalogQueue(setupCatalog(t), echoStreams())
		if _, err := q.Initial(ctx); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := q.Next(ctx, a); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("malformed cursor", func(t *testing.T) {
		q := NewCatalogQueue(setupCatalog(t, keys...), echoStreams())
		for _, cursor := range []string{"", "A", "a ||| b", "a ||| b ||| c ||| d"} {
			if _, err := q.Next(ctx, cursor); !errors.Is(err, shared.ErrMalformedCursor) {
				t.Errorf("Next(%q): expected ErrMalformedCursor, got %v", cursor, err)
			}
			if _, err := q.Previous(ctx, cursor); !errors.Is(err, shared.ErrMalformedCursor) {
				t.Errorf("Previous(%q): expected ErrMalformedCursor, got %v", cursor, err)
			}
		}
	})

	t.Run("stream failures propagate", func(t *testing.T) {
		failing := streamFunc(func(context.Context, string) (string, error) {
			return "", shared.ErrNoPlayableFormat
		})
		q := NewCatalogQueue(setupCatalog(t, keys...), failing)
		if _, err := q.Next(ctx, a); !errors.Is(err, shared.ErrNoPlayableFormat) {
			t.Errorf("expected ErrNoPlayableFormat, got %v", err)
		}
	})
}
