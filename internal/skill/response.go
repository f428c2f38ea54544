package skill

import (
	"time"

	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/queue"
)

const (
	payloadVersion = "1.0"
	streamLifetime = 24 * time.Hour
)

// Response is an outbound directive response. Payload is one of [ContentPayload], [PlaybackPayload] or
// [ItemPayload].
type Response struct {
	Header  Header `json:"header"`
	Payload any    `json:"payload"`
}

// ContentPayload answers GetPlayableContent.
type ContentPayload struct {
	Content Content `json:"content"`
}

// PlaybackPayload answers Initiate.
type PlaybackPayload struct {
	PlaybackMethod PlaybackMethod `json:"playbackMethod"`
}

// ItemPayload answers GetNextItem and GetPreviousItem.
type ItemPayload struct {
	IsQueueFinished bool `json:"isQueueFinished"`
	Item            Item `json:"item"`
}

// Content is the queue offered for a content search.
type Content struct {
	ID       string         `json:"id"`
	Actions  ContentActions `json:"actions"`
	Metadata Metadata       `json:"metadata"`
}

// ContentActions states what the client may do with [Content].
type ContentActions struct {
	Playable  bool `json:"playable"`
	Browsable bool `json:"browsable"`
}

// PlaybackMethod starts playback of a queue at FirstItem.
type PlaybackMethod struct {
	Type      string        `json:"type"`
	ID        string        `json:"id"`
	Rules     PlaybackRules `json:"rules"`
	FirstItem Item          `json:"firstItem"`
}

// PlaybackRules holds queue-level playback rules.
type PlaybackRules struct {
	Feedback Feedback `json:"feedback"`
}

// Feedback toggles a kind of user feedback such as preference ratings.
type Feedback struct {
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
}

// Item is one playable entry with its stream and transport controls.
type Item struct {
	ID           string       `json:"id"`
	PlaybackInfo PlaybackInfo `json:"playbackInfo"`
	Metadata     Metadata     `json:"metadata"`
	Controls     []Control    `json:"controls"`
	Rules        ItemRules    `json:"rules"`
	Stream       Stream       `json:"stream"`
}

// PlaybackInfo is the media kind of an [Item].
type PlaybackInfo struct {
	Type string `json:"type"`
}

// Metadata describes a playlist (no authors or album) or a track.
type Metadata struct {
	Type    string           `json:"type"`
	Name    NameProperty     `json:"name"`
	Art     Art              `json:"art"`
	Authors []EntityMetadata `json:"authors,omitempty"`
	Album   *EntityMetadata  `json:"album,omitempty"`
}

// EntityMetadata names an author or album.
type EntityMetadata struct {
	Name NameProperty `json:"name"`
}

// NameProperty is a name in spoken and displayed form.
type NameProperty struct {
	Speech  Speech `json:"speech"`
	Display string `json:"display"`
}

// Speech is the spoken form of a name.
type Speech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Art lists artwork images; empty when none is known.
type Art struct {
	Sources []ArtSource `json:"sources"`
}

// ArtSource is one artwork image.
type ArtSource struct {
	URL string `json:"url"`
}

// Control is a transport command (next, previous) and whether it is available.
type Control struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// ItemRules holds per-item playback rules.
type ItemRules struct {
	FeedbackEnabled bool `json:"feedbackEnabled"`
}

// Stream is the playable URI of an [Item] and when it expires.
type Stream struct {
	ID                   string `json:"id"`
	URI                  string `json:"uri"`
	OffsetInMilliseconds int64  `json:"offsetInMilliseconds"`
	ValidUntil           string `json:"validUntil"`
}

func nameProperty(text string) NameProperty {
	return NameProperty{Speech: Speech{Type: "PLAIN_TEXT", Text: text}, Display: text}
}

// NewContent describes q as playable content.
func NewContent(q queue.Queue) Content {
	return Content{
		ID:      q.ID(),
		Actions: ContentActions{Playable: true},
		Metadata: Metadata{
			Type: "PLAYLIST",
			Name: nameProperty(q.Name()),
			Art:  Art{Sources: []ArtSource{}},
		},
	}
}

// NewItem builds the playable item for entry with a stream valid for 24 hours after now.
func NewItem(entry *models.Entry, now time.Time) Item {
	album := EntityMetadata{Name: nameProperty(entry.Album)}
	return Item{
		ID:           entry.ID,
		PlaybackInfo: PlaybackInfo{Type: "DEFAULT"},
		Metadata: Metadata{
			Type:    "TRACK",
			Name:    nameProperty(entry.Title),
			Art:     Art{Sources: []ArtSource{}},
			Authors: []EntityMetadata{{Name: nameProperty(entry.Artist)}},
			Album:   &album,
		},
		Controls: []Control{
			{Type: "COMMAND", Name: "NEXT", Enabled: true},
			{Type: "COMMAND", Name: "PREVIOUS", Enabled: true},
		},
		Stream: Stream{
			ID:         entry.ID,
			URI:        entry.URI,
			ValidUntil: now.Add(streamLifetime).UTC().Format("2006-01-02T15:04:05.000Z"),
		},
	}
}

// NewPlaybackMethod starts q at first.
func NewPlaybackMethod(q queue.Queue, first Item) PlaybackMethod {
	return PlaybackMethod{
		Type:      "ALEXA_AUDIO_PLAYER_QUEUE",
		ID:        q.ID(),
		Rules:     PlaybackRules{Feedback: Feedback{Type: "PREFERENCE"}},
		FirstItem: first,
	}
}
