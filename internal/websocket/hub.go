package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const statsChannel = "quiz_stats_events"

// Hub fans completed-quiz statistics out to every connected dashboard
// client. Connections are anonymous; there is no per-user targeting.
// Redis pub/sub relays broadcasts between instances when configured.
type Hub struct {
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	// instanceID marks frames this process published over redis, so the
	// relay does not deliver them to local clients a second time.
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"client_id": client.ID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"client_id": client.ID})
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastStats pushes a fresh stats snapshot to all local clients and
// relays it over redis for other instances.
func (h *Hub) BroadcastStats(stats *dto.QuizStatsResponse) {
	data := h.encodeStats(stats)

	h.broadcastLocal(data)

	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), statsChannel, data).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow consumer; drop the connection rather than block the
			// hub. Run closes the Send channel on unregister.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) encodeStats(stats *dto.QuizStatsResponse) []byte {
	data, _ := json.Marshal(map[string]interface{}{
		"type":   "stats",
		"origin": h.instanceID,
		"data":   stats,
	})
	return data
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, statsChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.handleRedisPayload([]byte(msg.Payload))
	}
}

// handleRedisPayload relays stats frames published by other instances.
// Frames with this instance's origin were already delivered locally in
// BroadcastStats.
func (h *Hub) handleRedisPayload(payload []byte) {
	var frame struct {
		Origin string `json:"origin"`
	}
	if err := json.Unmarshal(payload, &frame); err != nil {
		log.Printf("Redis msg parse error: %v", err)
		return
	}
	if frame.Origin == h.instanceID {
		return
	}
	h.broadcastLocal(payload)
}
