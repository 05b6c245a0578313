// Package eventbus carries domain events in process when no NATS server is configured.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"brand-dashboard-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topic is the single watermill topic every event travels on; the event code
// rides in the message metadata.
const Topic = "domain-events"

const (
	metaType       = "event_type"
	metaOccurredAt = "occurred_at"
)

// Bus implements both events.Publisher and events.Subscriber over a watermill
// gochannel. Delivery is best effort within the process lifetime.
type Bus struct {
	pubSub *gochannel.GoChannel
	ctx    context.Context
	cancel context.CancelFunc
}

func New(logger watermill.LoggerAdapter) *Bus {
	ctx, cancel := context.WithCancel(context.Background())
	return &Bus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, logger),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (b *Bus) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set(metaType, event.EventType())
	msg.Metadata.Set(metaOccurredAt, event.Timestamp().UTC().Format(time.RFC3339Nano))
	return b.pubSub.Publish(Topic, msg)
}

// Subscribe accepts the same subject patterns as the NATS subscriber:
// "events.>" for everything or "events.<CODE>" for one event type.
// The durable name only labels log lines here.
func (b *Bus) Subscribe(subject string, durableName string, handler events.Handler) error {
	messages, err := b.pubSub.Subscribe(b.ctx, Topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			event, err := decode(msg)
			if err != nil {
				log.Printf("[%s] dropping undecodable event: %v", durableName, err)
				msg.Ack()
				continue
			}
			if !Matches(subject, event.EventType()) {
				msg.Ack()
				continue
			}
			if err := handler(msg.Context(), event); err != nil {
				// gochannel redelivers a nacked message immediately, so a failing
				// handler would spin. Log and move on.
				log.Printf("[%s] handler failed for %s: %v", durableName, event.EventType(), err)
			}
			msg.Ack()
		}
	}()

	log.Printf("Subscribed to %s with durable %s (in-process)", subject, durableName)
	return nil
}

func (b *Bus) Close() {
	b.cancel()
	if err := b.pubSub.Close(); err != nil {
		log.Printf("Warn: closing event bus: %v", err)
	}
}

// Matches reports whether a NATS-style subject pattern selects an event type.
func Matches(subject, eventType string) bool {
	if subject == events.AllSubjects || subject == ">" {
		return true
	}
	return strings.TrimPrefix(subject, events.SubjectPrefix) == eventType
}

func decode(msg *message.Message) (events.BaseEvent, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return events.BaseEvent{}, err
	}

	occurredAt := time.Now().UTC()
	if t, err := time.Parse(time.RFC3339Nano, msg.Metadata.Get(metaOccurredAt)); err == nil {
		occurredAt = t
	}

	return events.BaseEvent{
		Type:       msg.Metadata.Get(metaType),
		Data:       payload,
		OccurredAt: occurredAt,
	}, nil
}
