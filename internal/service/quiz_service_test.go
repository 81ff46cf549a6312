package service

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/pkg/logger"
	"archetype-quiz-be/internal/repository/memory"
	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/engine"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

func newTestQuizService(t *testing.T) *quizService {
	t.Helper()
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
	eng := engine.New(cat, log.New(io.Discard, "", 0))

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	t.Cleanup(func() { pubSub.Close() })

	sysLogger := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "quiz.log"))
	svc := NewQuizService(
		memory.NewSessionRepository(time.Hour),
		eng,
		cat,
		NewPublisherService("RESULT_COMPLETED_TEST", pubSub),
		sysLogger,
	)
	return svc.(*quizService)
}

func lockCount(svc *quizService) int {
	count := 0
	svc.locks.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	return count
}

func TestAnswerReleasesLockOnDelivery(t *testing.T) {
	svc := newTestQuizService(t)
	ctx := context.Background()

	started, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	answers := []string{
		"a", "a", "a",
		"I maintain the software platform our neighborhood uses",
		"a", "a",
		"yes", "that fits", "yes",
	}
	var last *dto.ActionResponse
	for _, message := range answers {
		last, err = svc.Answer(ctx, &dto.AnswerQuizRequest{
			SessionId: started.SessionId,
			Message:   message,
		})
		if err != nil {
			t.Fatalf("Answer(%q) error = %v", message, err)
		}
	}
	if last.Type != "RESULT" {
		t.Fatalf("final action = %q, want RESULT", last.Type)
	}

	if got := lockCount(svc); got != 0 {
		t.Errorf("lock entries after delivery = %d, want 0", got)
	}
}

func TestAnswerReleasesLockOnAlreadyComplete(t *testing.T) {
	svc := newTestQuizService(t)
	ctx := context.Background()

	started, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	answers := []string{
		"a", "a", "a",
		"I maintain the software platform our neighborhood uses",
		"a", "a",
		"yes", "that fits", "yes",
	}
	for _, message := range answers {
		if _, err := svc.Answer(ctx, &dto.AnswerQuizRequest{
			SessionId: started.SessionId,
			Message:   message,
		}); err != nil {
			t.Fatalf("Answer(%q) error = %v", message, err)
		}
	}

	// An answer after delivery recreates the entry briefly and must
	// release it again.
	repeat, err := svc.Answer(ctx, &dto.AnswerQuizRequest{
		SessionId: started.SessionId,
		Message:   "a",
	})
	if err != nil {
		t.Fatalf("Answer after delivery error = %v", err)
	}
	if repeat.Type != "ALREADY_COMPLETE" {
		t.Fatalf("repeat action = %q, want ALREADY_COMPLETE", repeat.Type)
	}

	if got := lockCount(svc); got != 0 {
		t.Errorf("lock entries after repeat answer = %d, want 0", got)
	}
}

func TestAnswerKeepsLockMidSession(t *testing.T) {
	svc := newTestQuizService(t)
	ctx := context.Background()

	started, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := svc.Answer(ctx, &dto.AnswerQuizRequest{
		SessionId: started.SessionId,
		Message:   "a",
	}); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}

	if got := lockCount(svc); got != 1 {
		t.Errorf("lock entries mid-session = %d, want 1", got)
	}
}
