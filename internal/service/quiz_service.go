package service

import (
	"context"
	"sync"
	"time"

	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/mapper"
	"archetype-quiz-be/internal/pkg/logger"
	"archetype-quiz-be/internal/pkg/serverutils"
	"archetype-quiz-be/internal/repository/contract"
	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/engine"
	"archetype-quiz-be/pkg/quiz/synth"
	"archetype-quiz-be/pkg/store"

	"github.com/google/uuid"
)

type IQuizService interface {
	Start(ctx context.Context) (*dto.StartQuizResponse, error)
	Answer(ctx context.Context, req *dto.AnswerQuizRequest) (*dto.ActionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
}

type quizService struct {
	sessionRepo contract.SessionRepository
	engine      *engine.Engine
	catalog     *catalog.Catalog
	publisher   IPublisherService
	logger      logger.ILogger
	mapper      *mapper.ActionMapper

	// Per-session locks: answers within one session are serialized,
	// independent sessions proceed in parallel.
	locks sync.Map
}

func NewQuizService(
	sessionRepo contract.SessionRepository,
	eng *engine.Engine,
	cat *catalog.Catalog,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IQuizService {
	return &quizService{
		sessionRepo: sessionRepo,
		engine:      eng,
		catalog:     cat,
		publisher:   publisher,
		logger:      sysLogger,
		mapper:      mapper.NewActionMapper(),
	}
}

func (s *quizService) Start(_ context.Context) (*dto.StartQuizResponse, error) {
	session := store.NewSession(uuid.New().String())
	action := s.engine.Start(session)
	s.sessionRepo.Save(session)

	s.logger.Info("Quiz", "Session started", map[string]interface{}{"session_id": session.ID})

	return &dto.StartQuizResponse{
		SessionId: session.ID,
		Action:    s.mapper.ToActionResponse(action),
	}, nil
}

func (s *quizService) Answer(ctx context.Context, req *dto.AnswerQuizRequest) (*dto.ActionResponse, error) {
	mu := s.sessionLock(req.SessionId)
	mu.Lock()
	defer mu.Unlock()

	session, found := s.sessionRepo.Get(req.SessionId)
	if !found {
		return nil, serverutils.NotFound("Session not found or expired")
	}

	action, err := s.engine.Answer(session, req.Message)
	if err != nil {
		s.logger.Error("Quiz", "Engine rejected answer", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.sessionRepo.Save(session)

	if action.Type == engine.ActionResult && action.Result != nil {
		s.publishResult(ctx, session.ID, action.Result)
	}

	if action.Type == engine.ActionResult || action.Type == engine.ActionAlreadyComplete {
		// The session takes no further answers; drop its lock entry so
		// the map does not grow for the life of the process.
		s.locks.Delete(req.SessionId)
	}

	res := s.mapper.ToActionResponse(action)
	return &res, nil
}

func (s *quizService) GetSession(_ context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, found := s.sessionRepo.Get(sessionID)
	if !found {
		return nil, serverutils.NotFound("Session not found or expired")
	}

	res := &dto.SessionResponse{
		SessionId: session.ID,
		Phase:     session.Phase,
		Status:    session.Status,
		Answered:  len(session.AnsweredQuestions),
	}
	if session.IsComplete() {
		// Synthesis is deterministic, so the result can be rebuilt from
		// the session instead of being stored alongside it.
		res.Result = s.mapper.ToResultResponse(synth.Synthesize(session, s.catalog))
	}
	return res, nil
}

func (s *quizService) publishResult(ctx context.Context, sessionID string, result *synth.Result) {
	payload := dto.PublishQuizResultMessage{
		SessionId:     sessionID,
		Primary:       result.Primary,
		Secondary:     result.Secondary,
		Domain:        result.Domain,
		Subdomain:     result.Subdomain,
		Scale:         result.Scale,
		PodKey:        result.PodKey,
		Confidence:    result.Confidence,
		Level:         result.Level,
		IsBlended:     result.IsBlended,
		LowConfidence: result.LowConfidence,
		Scores:        result.Scores,
		CompletedAt:   time.Now(),
	}
	if err := s.publisher.PublishResult(ctx, payload); err != nil {
		// Delivery to the user already succeeded; losing telemetry is
		// logged, not surfaced.
		s.logger.Warn("Quiz", "Failed to publish completed result", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return
	}
	s.logger.Info("Quiz", "Result completed", map[string]interface{}{
		"session_id": sessionID,
		"pod_key":    result.PodKey,
	})
}

func (s *quizService) sessionLock(sessionID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
