package service

import (
	"context"
	"encoding/json"
	"log"

	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/entity"
	"archetype-quiz-be/internal/repository/contract"
	"archetype-quiz-be/internal/websocket"
	"archetype-quiz-be/pkg/events"
	pkgNats "archetype-quiz-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// ITelemetryService consumes completed results off the internal topic,
// persists them, fans the event out to NATS and pushes fresh aggregate
// stats to the websocket dashboard.
type ITelemetryService interface {
	Consume(ctx context.Context) error
	Stats(ctx context.Context) (*dto.QuizStatsResponse, error)
}

type telemetryService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	resultRepo contract.QuizResultRepository
	natsPub    *pkgNats.Publisher
	wsHub      *websocket.Hub
}

func NewTelemetryService(
	pubSub *gochannel.GoChannel,
	topicName string,
	resultRepo contract.QuizResultRepository,
	natsPub *pkgNats.Publisher,
	wsHub *websocket.Hub,
) ITelemetryService {
	return &telemetryService{
		pubSub:     pubSub,
		topicName:  topicName,
		resultRepo: resultRepo,
		natsPub:    natsPub,
		wsHub:      wsHub,
	}
}

func (ts *telemetryService) Consume(ctx context.Context) error {
	messages, err := ts.pubSub.Subscribe(ctx, ts.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ts.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ts *telemetryService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishQuizResultMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal result message: %v", err)
		msg.Ack() // malformed payloads never become valid, don't retry
		return
	}

	log.Printf("[INFO] Persisting quiz result for session %s (%s)", payload.SessionId, payload.PodKey)

	existing, err := ts.resultRepo.FindBySessionId(ctx, payload.SessionId)
	if err != nil {
		log.Printf("[ERROR] Failed to check existing result for %s: %v", payload.SessionId, err)
		msg.Nack()
		return
	}
	if existing != nil {
		log.Printf("[WARN] Result for session %s already persisted, skipping", payload.SessionId)
		msg.Ack()
		return
	}

	result := &entity.QuizResult{
		Id:            uuid.New(),
		SessionId:     payload.SessionId,
		Primary:       payload.Primary,
		Secondary:     payload.Secondary,
		Domain:        payload.Domain,
		Subdomain:     payload.Subdomain,
		Scale:         payload.Scale,
		PodKey:        payload.PodKey,
		Confidence:    payload.Confidence,
		Level:         payload.Level,
		IsBlended:     payload.IsBlended,
		LowConfidence: payload.LowConfidence,
		Scores:        payload.Scores,
		CreatedAt:     payload.CompletedAt,
	}
	if err := ts.resultRepo.Create(ctx, result); err != nil {
		log.Printf("[ERROR] Failed to persist result for %s: %v", payload.SessionId, err)
		msg.Nack()
		return
	}

	// NATS fan-out for external consumers; best effort.
	if ts.natsPub != nil {
		event := events.NewQuizCompleted(
			payload.SessionId, payload.Primary, payload.Domain, payload.Scale,
			payload.PodKey, payload.LowConfidence,
		)
		if err := ts.natsPub.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish %s event: %v", events.QuizCompletedType, err)
		}
	}

	// Push fresh aggregates to the live dashboard.
	if ts.wsHub != nil {
		if stats, err := ts.Stats(ctx); err == nil {
			ts.wsHub.BroadcastStats(stats)
		} else {
			log.Printf("[WARN] Failed to aggregate stats after persist: %v", err)
		}
	}

	log.Printf("[SUCCESS] Result persisted for session %s", payload.SessionId)
	msg.Ack()
}

func (ts *telemetryService) Stats(ctx context.Context) (*dto.QuizStatsResponse, error) {
	total, err := ts.resultRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	archetypes, err := ts.resultRepo.CountByColumn(ctx, "primary_archetype")
	if err != nil {
		return nil, err
	}
	domains, err := ts.resultRepo.CountByColumn(ctx, "domain")
	if err != nil {
		return nil, err
	}
	scales, err := ts.resultRepo.CountByColumn(ctx, "scale")
	if err != nil {
		return nil, err
	}
	pods, err := ts.resultRepo.CountByColumn(ctx, "pod_key")
	if err != nil {
		return nil, err
	}

	return &dto.QuizStatsResponse{
		TotalCompleted: total,
		Archetypes:     archetypes,
		Domains:        domains,
		Scales:         scales,
		Pods:           pods,
	}, nil
}
