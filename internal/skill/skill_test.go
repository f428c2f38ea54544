package skill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/queue"
	"github.com/spring01/music/internal/shared"
)

// fakeQueue navigates a fixed list of titles by decimal index.
type fakeQueue struct {
	id     string
	titles []string
	err    error
}

func (q *fakeQueue) ID() string       { return q.id }
func (q *fakeQueue) Name() string     { return q.id }
func (q *fakeQueue) IsFinished() bool { return false }

func (q *fakeQueue) entry(i int) (*models.Entry, error) {
	if q.err != nil {
		return nil, q.err
	}
	n := len(q.titles)
	i = (i%n + n) % n
	return &models.Entry{ID: strconv.Itoa(i), Artist: "Artist", Album: "Album", Title: q.titles[i], URI: "https://cdn/" + q.titles[i]}, nil
}

func (q *fakeQueue) Initial(ctx context.Context) (*models.Entry, error) { return q.entry(0) }

func (q *fakeQueue) Next(ctx context.Context, currentID string) (*models.Entry, error) {
	i, err := strconv.Atoi(currentID)
	if err != nil {
		return nil, shared.ErrMalformedCursor
	}
	return q.entry(i + 1)
}

func (q *fakeQueue) Previous(ctx context.Context, currentID string) (*models.Entry, error) {
	i, err := strconv.Atoi(currentID)
	if err != nil {
		return nil, shared.ErrMalformedCursor
	}
	return q.entry(i - 1)
}

type fakeResolver struct {
	queues   map[string]*fakeQueue
	criteria []queue.Attribute
}

func (r *fakeResolver) ForID(queueID string) queue.Queue {
	if q, ok := r.queues[queueID]; ok {
		return q
	}
	return &fakeQueue{id: queueID, err: shared.ErrPlaylistNotFound}
}

func (r *fakeResolver) ForCriteria(ctx context.Context, attributes []queue.Attribute) (queue.Queue, error) {
	r.criteria = attributes
	if len(attributes) == 1 && attributes[0].Value == queue.MediaTypeTrack {
		return r.queues[queue.CatalogQueueID], nil
	}
	return nil, shared.ErrUnsupportedCriteria
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestSkill() (*Skill, *fakeResolver) {
	resolver := &fakeResolver{queues: map[string]*fakeQueue{
		queue.CatalogQueueID: {id: queue.CatalogQueueID, titles: []string{"a", "b", "c"}},
	}}
	s := New(resolver,
		WithClock(func() time.Time { return fixedNow }),
		WithMessageIDs(func() string { return "msg-1" }),
	)
	return s, resolver
}

func envelope(namespace, name, payload string) []byte {
	return []byte(fmt.Sprintf(`{"header":{"namespace":%q,"name":%q,"messageId":"in-1","payloadVersion":"1.0"},"payload":%s}`, namespace, name, payload))
}

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return out
}

// path walks nested maps and slices by key or index.
func path(t *testing.T, v any, keys ...any) any {
	t.Helper()
	for _, k := range keys {
		switch k := k.(type) {
		case string:
			m, ok := v.(map[string]any)
			if !ok {
				t.Fatalf("expected object at %q, got %T", k, v)
			}
			v = m[k]
		case int:
			s, ok := v.([]any)
			if !ok || k >= len(s) {
				t.Fatalf("expected array with index %d, got %v", k, v)
			}
			v = s[k]
		}
	}
	return v
}

func TestSkillHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("GetPlayableContent", func(t *testing.T) {
		s, resolver := newTestSkill()
		raw := envelope(NamespaceSearch, NameGetPlayableContent,
			`{"selectionCriteria":{"attributes":[{"type":"MEDIA_TYPE","value":"TRACK"}]}}`)

		data, err := s.Handle(ctx, raw)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		out := decode(t, data)

		if got := path(t, out, "header", "name"); got != "GetPlayableContent.Response" {
			t.Errorf("unexpected name %v", got)
		}
		if got := path(t, out, "header", "namespace"); got != NamespaceSearch {
			t.Errorf("unexpected namespace %v", got)
		}
		if got := path(t, out, "header", "messageId"); got != "msg-1" {
			t.Errorf("unexpected messageId %v", got)
		}
		if got := path(t, out, "header", "payloadVersion"); got != "1.0" {
			t.Errorf("unexpected payloadVersion %v", got)
		}
		if got := path(t, out, "payload", "content", "id"); got != queue.CatalogQueueID {
			t.Errorf("unexpected content id %v", got)
		}
		if got := path(t, out, "payload", "content", "actions", "playable"); got != true {
			t.Errorf("expected playable, got %v", got)
		}
		if got := path(t, out, "payload", "content", "metadata", "type"); got != "PLAYLIST" {
			t.Errorf("unexpected metadata type %v", got)
		}
		if got := path(t, out, "payload", "content", "metadata", "name", "speech", "type"); got != "PLAIN_TEXT" {
			t.Errorf("unexpected speech type %v", got)
		}
		if len(resolver.criteria) != 1 || resolver.criteria[0].Type != queue.AttributeMediaType {
			t.Errorf("unexpected criteria %+v", resolver.criteria)
		}
	})

	t.Run("Initiate", func(t *testing.T) {
		s, _ := newTestSkill()
		data, err := s.Handle(ctx, envelope(NamespacePlayback, NameInitiate, `{"contentId":"Playlist.AllMusic"}`))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		out := decode(t, data)

		method := path(t, out, "payload", "playbackMethod")
		if got := path(t, method, "type"); got != "ALEXA_AUDIO_PLAYER_QUEUE" {
			t.Errorf("unexpected type %v", got)
		}
		if got := path(t, method, "rules", "feedback", "type"); got != "PREFERENCE" {
			t.Errorf("unexpected feedback %v", got)
		}
		if got := path(t, method, "rules", "feedback", "enabled"); got != false {
			t.Errorf("expected feedback disabled, got %v", got)
		}

		item := path(t, method, "firstItem")
		if got := path(t, item, "id"); got != "0" {
			t.Errorf("unexpected item id %v", got)
		}
		if got := path(t, item, "metadata", "type"); got != "TRACK" {
			t.Errorf("unexpected metadata type %v", got)
		}
		if got := path(t, item, "metadata", "name", "display"); got != "a" {
			t.Errorf("unexpected title %v", got)
		}
		if got := path(t, item, "metadata", "authors", 0, "name", "display"); got != "Artist" {
			t.Errorf("unexpected author %v", got)
		}
		if got := path(t, item, "metadata", "album", "name", "display"); got != "Album" {
			t.Errorf("unexpected album %v", got)
		}
		if got := path(t, item, "controls", 1, "name"); got != "PREVIOUS" {
			t.Errorf("unexpected control %v", got)
		}
		if got := path(t, item, "stream", "uri"); got != "https://cdn/a" {
			t.Errorf("unexpected uri %v", got)
		}
		if got := path(t, item, "stream", "offsetInMilliseconds"); got != float64(0) {
			t.Errorf("unexpected offset %v", got)
		}
		if got := path(t, item, "stream", "validUntil"); got != "2024-05-02T12:00:00.000Z" {
			t.Errorf("unexpected validUntil %v", got)
		}
	})

	t.Run("GetNextItem and GetPreviousItem", func(t *testing.T) {
		s, _ := newTestSkill()
		ref := `{"currentItemReference":{"queueId":"Playlist.AllMusic","id":"2"}}`

		data, err := s.Handle(ctx, envelope(NamespacePlayQueue, NameGetNextItem, ref))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		out := decode(t, data)
		if got := path(t, out, "header", "name"); got != "GetNextItem.Response" {
			t.Errorf("unexpected name %v", got)
		}
		if got := path(t, out, "payload", "isQueueFinished"); got != false {
			t.Errorf("expected unfinished queue, got %v", got)
		}
		if got := path(t, out, "payload", "item", "id"); got != "0" {
			t.Errorf("expected wrap to 0, got %v", got)
		}

		data, err = s.Handle(ctx, envelope(NamespacePlayQueue, NameGetPreviousItem, ref))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := path(t, decode(t, data), "payload", "item", "id"); got != "1" {
			t.Errorf("expected 1, got %v", got)
		}
	})

	t.Run("failures abort the request", func(t *testing.T) {
		tests := []struct {
			name string
			raw  []byte
			want error
		}{
			{name: "not json", raw: []byte("{"), want: shared.ErrInvalidRequest},
			{name: "unknown directive", raw: envelope("Alexa.Media.Search", "Search", `{}`), want: shared.ErrUnsupportedRequest},
			{name: "unsupported criteria", raw: envelope(NamespaceSearch, NameGetPlayableContent, `{"selectionCriteria":{"attributes":[{"type":"MEDIA_TYPE","value":"ARTIST"}]}}`), want: shared.ErrUnsupportedCriteria},
			{name: "unknown playlist", raw: envelope(NamespacePlayback, NameInitiate, `{"contentId":"nope"}`), want: shared.ErrPlaylistNotFound},
			{name: "malformed cursor", raw: envelope(NamespacePlayQueue, NameGetNextItem, `{"currentItemReference":{"queueId":"Playlist.AllMusic","id":"x"}}`), want: shared.ErrMalformedCursor},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s, _ := newTestSkill()
				data, err := s.Handle(ctx, tt.raw)
				if !errors.Is(err, tt.want) {
					t.Fatalf("expected %v, got %v", tt.want, err)
				}
				if data != nil {
					t.Errorf("expected no response, got %s", data)
				}
			})
		}
	})
}

func TestSkillDispatch(t *testing.T) {
	s, _ := newTestSkill()
	resp, err := s.Dispatch(context.Background(), GetNextItemRequest{QueueID: queue.CatalogQueueID, ItemID: "0"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	payload, ok := resp.Payload.(*ItemPayload)
	if !ok {
		t.Fatalf("expected *ItemPayload, got %T", resp.Payload)
	}
	if payload.Item.ID != "1" || payload.Item.Stream.ID != "1" {
		t.Errorf("unexpected item %+v", payload.Item)
	}
	if resp.Header.Namespace != NamespacePlayQueue {
		t.Errorf("unexpected namespace %s", resp.Header.Namespace)
	}
}
