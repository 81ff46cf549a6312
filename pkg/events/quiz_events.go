package events

import "time"

// Event type codes emitted by the quiz backend.
const (
	QuizCompletedType = "QUIZ_COMPLETED"
	PodJoinedType     = "POD_JOINED"
)

// NewQuizCompleted builds the event published when a session reaches
// delivery.
func NewQuizCompleted(sessionID, primary, domain, scale, podKey string, lowConfidence bool) Event {
	return BaseEvent{
		Type: QuizCompletedType,
		Data: map[string]interface{}{
			"session_id":     sessionID,
			"primary":        primary,
			"domain":         domain,
			"scale":          scale,
			"pod_key":        podKey,
			"low_confidence": lowConfidence,
		},
		OccurredAt: time.Now(),
	}
}

// NewPodJoined builds the event published when someone joins a pod
// waitlist.
func NewPodJoined(sessionID, podKey string, memberCount int64) Event {
	return BaseEvent{
		Type: PodJoinedType,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"pod_key":      podKey,
			"member_count": memberCount,
		},
		OccurredAt: time.Now(),
	}
}
