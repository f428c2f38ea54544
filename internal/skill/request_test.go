package skill

import (
	"errors"
	"testing"

	"github.com/spring01/music/internal/queue"
	"github.com/spring01/music/internal/shared"
)

func TestParseRequest(t *testing.T) {
	t.Run("decodes each directive", func(t *testing.T) {
		tests := []struct {
			name string
			raw  []byte
			want Request
		}{
			{
				name: "GetPlayableContent",
				raw: envelope(NamespaceSearch, NameGetPlayableContent,
					`{"selectionCriteria":{"attributes":[{"type":"MEDIA_TYPE","value":"PLAYLIST"},{"type":"PLAYLIST","entityId":"Road Trip"}]}}`),
			},
			{
				name: "Initiate",
				raw:  envelope(NamespacePlayback, NameInitiate, `{"contentId":"road trip"}`),
				want: InitiateRequest{ContentID: "road trip"},
			},
			{
				name: "GetNextItem",
				raw:  envelope(NamespacePlayQueue, NameGetNextItem, `{"currentItemReference":{"queueId":"q","id":"3"}}`),
				want: GetNextItemRequest{QueueID: "q", ItemID: "3"},
			},
			{
				name: "GetPreviousItem",
				raw:  envelope(NamespacePlayQueue, NameGetPreviousItem, `{"currentItemReference":{"queueId":"q","id":"3"}}`),
				want: GetPreviousItemRequest{QueueID: "q", ItemID: "3"},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req, err := ParseRequest(tt.raw)
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if tt.want == nil {
					content, ok := req.(GetPlayableContentRequest)
					if !ok {
						t.Fatalf("expected GetPlayableContentRequest, got %T", req)
					}
					want := []queue.Attribute{
						{Type: "MEDIA_TYPE", Value: "PLAYLIST"},
						{Type: "PLAYLIST", EntityID: "Road Trip"},
					}
					if len(content.Attributes) != 2 || content.Attributes[0] != want[0] || content.Attributes[1] != want[1] {
						t.Errorf("unexpected attributes %+v", content.Attributes)
					}
					return
				}
				if req != tt.want {
					t.Errorf("expected %+v, got %+v", tt.want, req)
				}
			})
		}
	})

	t.Run("accepts a missing namespace", func(t *testing.T) {
		if _, err := ParseRequest(envelope("", NameInitiate, `{"contentId":"x"}`)); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("rejects invalid requests", func(t *testing.T) {
		tests := []struct {
			name string
			raw  []byte
			want error
		}{
			{name: "malformed json", raw: []byte(`{"header":`), want: shared.ErrInvalidRequest},
			{name: "missing name", raw: envelope(NamespacePlayback, "", `{}`), want: shared.ErrInvalidRequest},
			{name: "unsupported name", raw: envelope(NamespacePlayback, "Pause", `{}`), want: shared.ErrUnsupportedRequest},
			{name: "namespace mismatch", raw: envelope(NamespaceSearch, NameInitiate, `{"contentId":"x"}`), want: shared.ErrInvalidRequest},
			{name: "missing payload", raw: []byte(`{"header":{"name":"Initiate"}}`), want: shared.ErrInvalidRequest},
			{name: "payload of wrong shape", raw: envelope(NamespacePlayback, NameInitiate, `[]`), want: shared.ErrInvalidRequest},
			{name: "missing content id", raw: envelope(NamespacePlayback, NameInitiate, `{}`), want: shared.ErrInvalidRequest},
			{name: "missing criteria", raw: envelope(NamespaceSearch, NameGetPlayableContent, `{}`), want: shared.ErrInvalidRequest},
			{name: "missing reference", raw: envelope(NamespacePlayQueue, NameGetNextItem, `{}`), want: shared.ErrInvalidRequest},
			{name: "missing queue id", raw: envelope(NamespacePlayQueue, NameGetNextItem, `{"currentItemReference":{"id":"1"}}`), want: shared.ErrInvalidRequest},
			{name: "missing item id", raw: envelope(NamespacePlayQueue, NameGetPreviousItem, `{"currentItemReference":{"queueId":"q"}}`), want: shared.ErrInvalidRequest},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := ParseRequest(tt.raw); !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
			})
		}
	})
}
