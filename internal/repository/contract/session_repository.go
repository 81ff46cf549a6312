package contract

import "archetype-quiz-be/pkg/store"

// SessionRepository holds in-flight quiz sessions. Implementations are
// either process-local (go-cache) or shared (redis); both expire
// sessions after the configured TTL.
type SessionRepository interface {
	Save(session *store.Session)
	Get(sessionID string) (*store.Session, bool)
	Delete(sessionID string)
}
