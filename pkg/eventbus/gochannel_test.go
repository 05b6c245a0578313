package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"brand-dashboard-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		subject string
		code    string
		want    bool
	}{
		{events.AllSubjects, events.InvoicePaid, true},
		{"events.INVOICE_PAID", events.InvoicePaid, true},
		{"events.INVOICE_PAID", events.WithdrawalRequested, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Matches(tt.subject, tt.code), "%s vs %s", tt.subject, tt.code)
	}
}

func TestBusDeliversMatchingEvents(t *testing.T) {
	bus := New(watermill.NopLogger{})
	defer bus.Close()

	var mu sync.Mutex
	var received []events.Event
	done := make(chan struct{}, 2)

	err := bus.Subscribe("events."+events.InvoicePaid, "test-worker", func(ctx context.Context, event events.Event) error {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		done <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), events.New(events.WithdrawalRequested, map[string]interface{}{"amount": "1"})))
	require.NoError(t, bus.Publish(context.Background(), events.New(events.InvoicePaid, map[string]interface{}{"number": "INV-2026-0002"})))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, events.InvoicePaid, received[0].EventType())
	assert.Equal(t, "INV-2026-0002", received[0].Payload()["number"])
}
