package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ClusterChannel is the redis channel instances use to relay pushes.
const ClusterChannel = "brand_dashboard_notifications"

const broadcastTarget = "*"

type Hub struct {
	// UserID -> connections (one per device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// optional; relays pushes to clients connected to other instances
	rdb        *redis.Client
	instanceId string

	logger logger.ILogger
}

type clusterMessage struct {
	Origin       string          `json:"origin"`
	TargetUserID string          `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		logger:     log,
	}
}

// Run owns registration until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[client.UserID]
	for i, c := range clients {
		if c == client {
			h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.UserID]) == 0 {
		delete(h.clients, client.UserID)
		h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userId, clients := range h.clients {
		for _, c := range clients {
			close(c.Send)
		}
		delete(h.clients, userId)
	}
}

// Connections reports how many sockets a user has open on this instance.
func (h *Hub) Connections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func encode(notification entity.Notification) []byte {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})
	return data
}

// Send pushes a stored notification to the recipient's open sockets.
func (h *Hub) Send(userID uuid.UUID, notification entity.Notification) {
	data := encode(notification)
	h.deliverTo(userID, data)
	h.relay(userID.String(), data)
}

// Broadcast pushes to every connected client.
func (h *Hub) Broadcast(notification entity.Notification) {
	data := encode(notification)
	h.deliverAll(data)
	h.relay(broadcastTarget, data)
}

// Pushes happen under the read lock so remove cannot close a Send channel mid-write.
func (h *Hub) deliverTo(userID uuid.UUID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients[userID] {
		h.push(client, data)
	}
}

func (h *Hub) deliverAll(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for _, client := range clients {
			h.push(client, data)
		}
	}
}

// push never blocks. A client whose buffer is full is dropped; unregistering
// happens off this goroutine because Run may be waiting on the same lock.
func (h *Hub) push(client *Client, data []byte) {
	select {
	case client.Send <- data:
	default:
		h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"user_id": client.UserID})
		go func() { h.unregister <- client }()
	}
}

func (h *Hub) relay(target string, data []byte) {
	if h.rdb == nil {
		return
	}
	payload, _ := json.Marshal(clusterMessage{Origin: h.instanceId, TargetUserID: target, Message: data})
	if err := h.rdb.Publish(context.Background(), ClusterChannel, payload).Err(); err != nil {
		h.logger.Warn("Hub", "Redis relay failed", map[string]interface{}{"error": err.Error()})
	}
}

// subscribeToRedis delivers pushes published by other instances. Every instance
// listens on one channel and keeps only the users it holds locally.
func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, ClusterChannel)
	defer pubsub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			h.handleClusterMessage([]byte(msg.Payload))
		}
	}
}

func (h *Hub) handleClusterMessage(raw []byte) {
	var payload clusterMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.logger.Warn("Hub", "Redis msg parse error", map[string]interface{}{"error": err.Error()})
		return
	}
	if payload.Origin == h.instanceId {
		return
	}

	if payload.TargetUserID == broadcastTarget {
		h.deliverAll(payload.Message)
		return
	}

	uid, err := uuid.Parse(payload.TargetUserID)
	if err != nil {
		return
	}
	h.deliverTo(uid, payload.Message)
}
