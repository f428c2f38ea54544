package skill

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/queue"
	"github.com/spring01/music/internal/shared"
)

// QueueResolver selects the queue a request refers to. Implemented by [queue.Resolver].
type QueueResolver interface {
	ForID(queueID string) queue.Queue
	ForCriteria(ctx context.Context, attributes []queue.Attribute) (queue.Queue, error)
}

// Skill answers media directives.
type Skill struct {
	resolver QueueResolver
	now      func() time.Time
	newID    func() string
	logger   *log.Logger
}

// Option configures a [Skill].
type Option func(*Skill)

// WithClock sets the clock used for stream expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Skill) { s.now = now }
}

// WithMessageIDs sets the generator of response message ids.
func WithMessageIDs(newID func() string) Option {
	return func(s *Skill) { s.newID = newID }
}

// WithLogger sets the logger for request tracing.
func WithLogger(l *log.Logger) Option {
	return func(s *Skill) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a skill over resolver.
func New(resolver QueueResolver, opts ...Option) *Skill {
	s := &Skill{
		resolver: resolver,
		now:      time.Now,
		newID:    shared.GenerateID,
		logger:   shared.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle decodes raw, dispatches it and encodes the response.
func (s *Skill) Handle(ctx context.Context, raw []byte) ([]byte, error) {
	req, err := ParseRequest(raw)
	if err != nil {
		return nil, err
	}

	resp, err := s.Dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return data, nil
}

// Dispatch runs req and builds its response.
func (s *Skill) Dispatch(ctx context.Context, req Request) (*Response, error) {
	s.logger.Debug("dispatch", "namespace", req.Namespace(), "name", req.Name())

	var (
		payload any
		err     error
	)

	switch r := req.(type) {
	case GetPlayableContentRequest:
		payload, err = s.playableContent(ctx, r)
	case InitiateRequest:
		payload, err = s.initiate(ctx, r)
	case GetNextItemRequest:
		payload, err = s.step(ctx, r.QueueID, r.ItemID, queue.Queue.Next)
	case GetPreviousItemRequest:
		payload, err = s.step(ctx, r.QueueID, r.ItemID, queue.Queue.Previous)
	default:
		return nil, fmt.Errorf("%w: %T", shared.ErrUnsupportedRequest, req)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Name(), err)
	}

	return &Response{
		Header: Header{
			Namespace:      req.Namespace(),
			Name:           req.Name() + ".Response",
			MessageID:      s.newID(),
			PayloadVersion: payloadVersion,
		},
		Payload: payload,
	}, nil
}

func (s *Skill) playableContent(ctx context.Context, r GetPlayableContentRequest) (*ContentPayload, error) {
	q, err := s.resolver.ForCriteria(ctx, r.Attributes)
	if err != nil {
		return nil, err
	}
	return &ContentPayload{Content: NewContent(q)}, nil
}

func (s *Skill) initiate(ctx context.Context, r InitiateRequest) (*PlaybackPayload, error) {
	q := s.resolver.ForID(r.ContentID)

	entry, err := q.Initial(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("initiate", "queue", q.ID(), "item", entry.ID)
	return &PlaybackPayload{PlaybackMethod: NewPlaybackMethod(q, NewItem(entry, s.now()))}, nil
}

type navigation func(q queue.Queue, ctx context.Context, currentID string) (*models.Entry, error)

func (s *Skill) step(ctx context.Context, queueID, itemID string, move navigation) (*ItemPayload, error) {
	q := s.resolver.ForID(queueID)

	entry, err := move(q, ctx, itemID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("navigate", "queue", q.ID(), "from", itemID, "to", entry.ID)
	return &ItemPayload{IsQueueFinished: q.IsFinished(), Item: NewItem(entry, s.now())}, nil
}
