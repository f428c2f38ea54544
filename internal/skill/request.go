package skill

import (
	"encoding/json"
	"fmt"

	"github.com/spring01/music/internal/queue"
	"github.com/spring01/music/internal/shared"
)

// Directive namespaces.
const (
	NamespaceSearch    = "Alexa.Media.Search"
	NamespacePlayback  = "Alexa.Media.Playback"
	NamespacePlayQueue = "Alexa.Audio.PlayQueue"
)

// Directive names.
const (
	NameGetPlayableContent = "GetPlayableContent"
	NameInitiate           = "Initiate"
	NameGetNextItem        = "GetNextItem"
	NameGetPreviousItem    = "GetPreviousItem"
)

// Header is the envelope header shared by requests and responses.
type Header struct {
	Namespace      string `json:"namespace"`
	Name           string `json:"name"`
	MessageID      string `json:"messageId"`
	PayloadVersion string `json:"payloadVersion"`
}

// Envelope is an undecoded inbound directive.
type Envelope struct {
	Header  Header          `json:"header"`
	Payload json.RawMessage `json:"payload"`
}

// Request is one of the supported directives.
type Request interface {
	Namespace() string
	Name() string
	validate() error
}

// GetPlayableContentRequest asks for a queue matching the selection criteria.
type GetPlayableContentRequest struct {
	Attributes []queue.Attribute
}

// InitiateRequest starts playback of the queue ContentID.
type InitiateRequest struct {
	ContentID string
}

// GetNextItemRequest asks for the item after ItemID in queue QueueID.
type GetNextItemRequest struct {
	QueueID string
	ItemID  string
}

// GetPreviousItemRequest asks for the item before ItemID in queue QueueID.
type GetPreviousItemRequest struct {
	QueueID string
	ItemID  string
}

func (GetPlayableContentRequest) Namespace() string { return NamespaceSearch }
func (GetPlayableContentRequest) Name() string      { return NameGetPlayableContent }
func (InitiateRequest) Namespace() string           { return NamespacePlayback }
func (InitiateRequest) Name() string                { return NameInitiate }
func (GetNextItemRequest) Namespace() string        { return NamespacePlayQueue }
func (GetNextItemRequest) Name() string             { return NameGetNextItem }
func (GetPreviousItemRequest) Namespace() string    { return NamespacePlayQueue }
func (GetPreviousItemRequest) Name() string         { return NameGetPreviousItem }

func (r GetPlayableContentRequest) validate() error {
	if len(r.Attributes) == 0 {
		return fmt.Errorf("%w: selectionCriteria.attributes is required", shared.ErrInvalidRequest)
	}
	return nil
}

func (r InitiateRequest) validate() error {
	if r.ContentID == "" {
		return fmt.Errorf("%w: contentId is required", shared.ErrInvalidRequest)
	}
	return nil
}

func validateReference(queueID, itemID string) error {
	if queueID == "" {
		return fmt.Errorf("%w: currentItemReference.queueId is required", shared.ErrInvalidRequest)
	}
	if itemID == "" {
		return fmt.Errorf("%w: currentItemReference.id is required", shared.ErrInvalidRequest)
	}
	return nil
}

func (r GetNextItemRequest) validate() error     { return validateReference(r.QueueID, r.ItemID) }
func (r GetPreviousItemRequest) validate() error { return validateReference(r.QueueID, r.ItemID) }

type contentPayload struct {
	SelectionCriteria *struct {
		Attributes []queue.Attribute `json:"attributes"`
	} `json:"selectionCriteria"`
}

type initiatePayload struct {
	ContentID string `json:"contentId"`
}

type itemPayload struct {
	CurrentItemReference *struct {
		QueueID string `json:"queueId"`
		ID      string `json:"id"`
	} `json:"currentItemReference"`
}

// ParseRequest decodes and validates a raw directive.
func ParseRequest(raw []byte) (Request, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidRequest, err)
	}
	return env.Request()
}

// Request decodes the payload according to the header name.
func (e *Envelope) Request() (Request, error) {
	var (
		req Request
		err error
	)

	switch e.Header.Name {
	case NameGetPlayableContent:
		var p contentPayload
		if err = e.decode(&p); err == nil {
			r := GetPlayableContentRequest{}
			if p.SelectionCriteria != nil {
				r.Attributes = p.SelectionCriteria.Attributes
			}
			req = r
		}
	case NameInitiate:
		var p initiatePayload
		if err = e.decode(&p); err == nil {
			req = InitiateRequest{ContentID: p.ContentID}
		}
	case NameGetNextItem, NameGetPreviousItem:
		var p itemPayload
		if err = e.decode(&p); err == nil {
			var queueID, itemID string
			if ref := p.CurrentItemReference; ref != nil {
				queueID, itemID = ref.QueueID, ref.ID
			}
			if e.Header.Name == NameGetNextItem {
				req = GetNextItemRequest{QueueID: queueID, ItemID: itemID}
			} else {
				req = GetPreviousItemRequest{QueueID: queueID, ItemID: itemID}
			}
		}
	case "":
		return nil, fmt.Errorf("%w: header.name is required", shared.ErrInvalidRequest)
	default:
		return nil, fmt.Errorf("%w: %s", shared.ErrUnsupportedRequest, e.Header.Name)
	}
	if err != nil {
		return nil, err
	}

	if e.Header.Namespace != "" && e.Header.Namespace != req.Namespace() {
		return nil, fmt.Errorf("%w: %s does not belong to %s", shared.ErrInvalidRequest, e.Header.Name, e.Header.Namespace)
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func (e *Envelope) decode(v any) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("%w: payload is required", shared.ErrInvalidRequest)
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("%w: payload: %v", shared.ErrInvalidRequest, err)
	}
	return nil
}
