package service

import (
	"context"
	"time"

	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/entity"
	"archetype-quiz-be/internal/pkg/logger"
	"archetype-quiz-be/internal/pkg/mailer"
	"archetype-quiz-be/internal/pkg/serverutils"
	"archetype-quiz-be/internal/repository/contract"
	"archetype-quiz-be/pkg/events"
	pkgNats "archetype-quiz-be/pkg/nats"
	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/taxonomy"

	"github.com/google/uuid"
)

// IPodService handles waitlist signups for pattern groups. A signup
// requires a completed quiz; the pod key comes from the stored result,
// never from the caller.
type IPodService interface {
	Join(ctx context.Context, request *dto.JoinPodRequest) (*dto.PodSignupResponse, error)
}

type podService struct {
	podRepo      contract.PodSignupRepository
	resultRepo   contract.QuizResultRepository
	catalog      *catalog.Catalog
	emailService mailer.IEmailService
	natsPub      *pkgNats.Publisher
	logger       logger.ILogger
}

func NewPodService(
	podRepo contract.PodSignupRepository,
	resultRepo contract.QuizResultRepository,
	cat *catalog.Catalog,
	emailService mailer.IEmailService,
	natsPub *pkgNats.Publisher,
	log logger.ILogger,
) IPodService {
	return &podService{
		podRepo:      podRepo,
		resultRepo:   resultRepo,
		catalog:      cat,
		emailService: emailService,
		natsPub:      natsPub,
		logger:       log,
	}
}

func (ps *podService) Join(ctx context.Context, request *dto.JoinPodRequest) (*dto.PodSignupResponse, error) {
	result, err := ps.resultRepo.FindBySessionId(ctx, request.SessionId)
	if err != nil {
		ps.logger.Error("PodService", "Failed to look up quiz result", map[string]interface{}{
			"session_id": request.SessionId,
			"error":      err.Error(),
		})
		return nil, err
	}
	if result == nil {
		return nil, serverutils.NotFound("No completed quiz for this session")
	}

	existing, err := ps.podRepo.FindBySessionId(ctx, request.SessionId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.Conflict("This session already joined a pod")
	}

	signup := &entity.PodSignup{
		Id:        uuid.New(),
		SessionId: request.SessionId,
		Email:     request.Email,
		Name:      request.Name,
		PodKey:    result.PodKey,
		Archetype: result.Primary,
		Domain:    result.Domain,
		Scale:     result.Scale,
		CreatedAt: time.Now(),
	}
	if err := ps.podRepo.Create(ctx, signup); err != nil {
		ps.logger.Error("PodService", "Failed to create pod signup", map[string]interface{}{
			"session_id": request.SessionId,
			"pod_key":    result.PodKey,
			"error":      err.Error(),
		})
		return nil, err
	}

	memberCount, err := ps.podRepo.CountByPodKey(ctx, result.PodKey)
	if err != nil {
		// Signup is already saved; report the count as at least this one.
		ps.logger.Warn("PodService", "Failed to count pod members", map[string]interface{}{
			"pod_key": result.PodKey,
			"error":   err.Error(),
		})
		memberCount = 1
	}

	archetype := taxonomy.Archetype(result.Primary)
	profile := ps.catalog.Profiles[archetype]

	// NATS fan-out for external consumers; best effort.
	if ps.natsPub != nil {
		event := events.NewPodJoined(request.SessionId, result.PodKey, memberCount)
		if err := ps.natsPub.Publish(ctx, event); err != nil {
			ps.logger.Warn("PodService", "Failed to publish "+events.PodJoinedType+" event", map[string]interface{}{
				"pod_key": result.PodKey,
				"error":   err.Error(),
			})
		}
	}

	// Confirmation email is best effort; the signup stands either way.
	go func() {
		if err := ps.emailService.SendPodConfirmation(
			request.Email, request.Name, archetype.Label(), result.PodKey, int(memberCount),
		); err != nil {
			ps.logger.Warn("PodService", "Failed to send pod confirmation email", map[string]interface{}{
				"email": request.Email,
				"error": err.Error(),
			})
		}
	}()

	ps.logger.Info("PodService", "Pod signup created", map[string]interface{}{
		"session_id":   request.SessionId,
		"pod_key":      result.PodKey,
		"member_count": memberCount,
	})

	return &dto.PodSignupResponse{
		PodKey:      result.PodKey,
		MemberCount: memberCount,
		Pairing:     profile.Pairing,
	}, nil
}
