package websocket

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/pkg/logger"

	"github.com/google/uuid"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	return NewHub(nil, logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "hub.log")))
}

// Adds a client directly; these tests drive broadcast paths without the
// Run loop or a live connection.
func addClient(h *Hub) *Client {
	client := &Client{Hub: h, ID: uuid.New(), Send: make(chan []byte, 4)}
	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()
	return client
}

func TestEncodeStatsCarriesOrigin(t *testing.T) {
	hub := newTestHub(t)

	data := hub.encodeStats(&dto.QuizStatsResponse{TotalCompleted: 7})

	var frame struct {
		Type   string                 `json:"type"`
		Origin string                 `json:"origin"`
		Data   *dto.QuizStatsResponse `json:"data"`
	}
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatalf("unmarshal frame: %v", err)
	}
	if frame.Type != "stats" {
		t.Errorf("type = %q, want stats", frame.Type)
	}
	if frame.Origin != hub.instanceID {
		t.Errorf("origin = %q, want %q", frame.Origin, hub.instanceID)
	}
	if frame.Data == nil || frame.Data.TotalCompleted != 7 {
		t.Errorf("data = %+v, want TotalCompleted 7", frame.Data)
	}
}

func TestRedisRelaySkipsOwnFrames(t *testing.T) {
	hub := newTestHub(t)
	client := addClient(hub)

	own := hub.encodeStats(&dto.QuizStatsResponse{TotalCompleted: 3})
	hub.handleRedisPayload(own)

	select {
	case <-client.Send:
		t.Fatal("self-originated frame was delivered twice")
	default:
	}
}

func TestRedisRelayDeliversForeignFrames(t *testing.T) {
	hub := newTestHub(t)
	client := addClient(hub)

	foreign := bytes.Replace(
		hub.encodeStats(&dto.QuizStatsResponse{TotalCompleted: 3}),
		[]byte(hub.instanceID), []byte("other-instance"), 1,
	)
	hub.handleRedisPayload(foreign)

	select {
	case data := <-client.Send:
		if !bytes.Contains(data, []byte(`"type":"stats"`)) {
			t.Errorf("delivered frame = %s, want a stats frame", data)
		}
	default:
		t.Fatal("foreign frame was not delivered")
	}
}

func TestRedisRelayDropsMalformedFrames(t *testing.T) {
	hub := newTestHub(t)
	client := addClient(hub)

	hub.handleRedisPayload([]byte("not json"))

	select {
	case <-client.Send:
		t.Fatal("malformed frame was delivered")
	default:
	}
}
