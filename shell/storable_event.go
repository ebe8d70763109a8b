package shell

import (
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var (
	ErrInvalidPayloadJSON  = errors.New("payload json is not valid")
	ErrInvalidMetadataJSON = errors.New("metadata json is not valid")
)

// StorableEvents is a list of journal records in recording order.
type StorableEvents = []StorableEvent

// StorableEvent is how the Journal keeps a domain event: its type and time as scalars,
// the event itself and its EventMetadata as JSON. Build it with BuildStorableEvent or StorableEventFrom.
type StorableEvent struct {
	EventType    string
	OccurredAt   time.Time
	PayloadJSON  []byte
	MetadataJSON []byte
}

// BuildStorableEvent fails if either JSON document is malformed; the error names the event type.
func BuildStorableEvent(eventType string, occurredAt time.Time, payloadJSON []byte, metadataJSON []byte) (StorableEvent, error) {
	if !jsoniter.ConfigFastest.Valid(payloadJSON) {
		return StorableEvent{}, fmt.Errorf("%s: %w", eventType, ErrInvalidPayloadJSON)
	}

	if !jsoniter.ConfigFastest.Valid(metadataJSON) {
		return StorableEvent{}, fmt.Errorf("%s: %w", eventType, ErrInvalidMetadataJSON)
	}

	return StorableEvent{
		EventType:    eventType,
		OccurredAt:   occurredAt,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}
