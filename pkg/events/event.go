package events

import (
	"context"
	"time"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "INVOICE_PAID").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the concrete event every publisher in this service emits.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// New stamps an event with the current time.
func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now().UTC()}
}

// Handler processes one delivered event. A returned error asks the bus to redeliver.
type Handler func(ctx context.Context, event Event) error

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}

type Subscriber interface {
	Subscribe(subject string, durableName string, handler Handler) error
	Close()
}

// SubjectPrefix namespaces every event subject on the bus.
const SubjectPrefix = "events."

// AllSubjects matches every event.
const AllSubjects = SubjectPrefix + ">"

func Subject(eventType string) string {
	return SubjectPrefix + eventType
}
