package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func connect(t *testing.T, hub *Hub, userID uuid.UUID) *Client {
	t.Helper()
	client := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	hub.register <- client
	require.Eventually(t, func() bool { return hub.Connections(userID) > 0 }, time.Second, 5*time.Millisecond)
	return client
}

func receive(t *testing.T, client *Client) map[string]interface{} {
	t.Helper()
	select {
	case raw := <-client.Send:
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return nil
	}
}

func TestSendReachesOnlyRecipient(t *testing.T) {
	hub := startHub(t)
	alice, bob := uuid.New(), uuid.New()
	aliceClient := connect(t, hub, alice)
	bobClient := connect(t, hub, bob)

	hub.Send(alice, entity.Notification{Id: uuid.New(), UserId: alice, Title: "Invoice paid"})

	msg := receive(t, aliceClient)
	assert.Equal(t, "notification", msg["type"])
	assert.Equal(t, "Invoice paid", msg["data"].(map[string]interface{})["title"])
	assert.Len(t, bobClient.Send, 0)
}

func TestBroadcastReachesEveryone(t *testing.T) {
	hub := startHub(t)
	first := connect(t, hub, uuid.New())
	second := connect(t, hub, uuid.New())

	hub.Broadcast(entity.Notification{Title: "Maintenance tonight"})

	receive(t, first)
	receive(t, second)
}

func TestClusterMessagesFromSelfAreIgnored(t *testing.T) {
	hub := startHub(t)
	userID := uuid.New()
	client := connect(t, hub, userID)

	own, _ := json.Marshal(clusterMessage{Origin: hub.instanceId, TargetUserID: userID.String(), Message: json.RawMessage(`{"type":"notification"}`)})
	hub.handleClusterMessage(own)
	assert.Len(t, client.Send, 0)

	other, _ := json.Marshal(clusterMessage{Origin: "other", TargetUserID: userID.String(), Message: json.RawMessage(`{"type":"notification"}`)})
	hub.handleClusterMessage(other)
	assert.Equal(t, "notification", receive(t, client)["type"])
}

func TestUnregisterRemovesClient(t *testing.T) {
	hub := startHub(t)
	userID := uuid.New()
	client := connect(t, hub, userID)

	hub.unregister <- client
	require.Eventually(t, func() bool { return hub.Connections(userID) == 0 }, time.Second, 5*time.Millisecond)
}
