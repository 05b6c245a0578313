package nats

import (
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStripsSubjectPrefixAndReadsTimestamp(t *testing.T) {
	at := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	headers := nats.Header{}
	headers.Set(occurredAtHeader, at.Format(time.RFC3339Nano))

	event, err := decode("events.INVOICE_PAID", headers, []byte(`{"number":"INV-2026-0002"}`))
	require.NoError(t, err)
	assert.Equal(t, "INVOICE_PAID", event.EventType())
	assert.Equal(t, "INV-2026-0002", event.Payload()["number"])
	assert.True(t, at.Equal(event.Timestamp()))
}

func TestDecodeRejectsInvalidPayload(t *testing.T) {
	_, err := decode("events.INVOICE_PAID", nats.Header{}, []byte(`not json`))
	assert.Error(t, err)
}
