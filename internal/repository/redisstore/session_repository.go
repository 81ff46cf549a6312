package redisstore

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"archetype-quiz-be/internal/repository/contract"
	"archetype-quiz-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "quiz:session:"

// SessionRepository keeps sessions in redis so multiple instances can
// serve the same conversation. Sessions are stored as JSON with the
// configured TTL; every Save refreshes the TTL.
type SessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionRepository(rdb *redis.Client, ttl time.Duration) contract.SessionRepository {
	return &SessionRepository{rdb: rdb, ttl: ttl}
}

func (r *SessionRepository) Save(session *store.Session) {
	data, err := json.Marshal(session)
	if err != nil {
		log.Printf("[REDIS] Failed to marshal session %s: %v", session.ID, err)
		return
	}
	if err := r.rdb.Set(context.Background(), keyPrefix+session.ID, data, r.ttl).Err(); err != nil {
		log.Printf("[REDIS] Failed to save session %s: %v", session.ID, err)
	}
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	data, err := r.rdb.Get(context.Background(), keyPrefix+sessionID).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[REDIS] Failed to get session %s: %v", sessionID, err)
		}
		return nil, false
	}

	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("[REDIS] Corrupt session payload for %s: %v", sessionID, err)
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Delete(sessionID string) {
	if err := r.rdb.Del(context.Background(), keyPrefix+sessionID).Err(); err != nil {
		log.Printf("[REDIS] Failed to delete session %s: %v", sessionID, err)
	}
}
