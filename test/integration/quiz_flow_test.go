package integration

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/pkg/logger"
	"archetype-quiz-be/internal/repository/memory"
	"archetype-quiz-be/internal/service"
	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/engine"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

const testResultTopic = "RESULT_COMPLETED_TEST"

// Full conversation through the service layer: session storage, the
// classification engine and result publication, without a database.
func TestQuizFlowEndToEnd(t *testing.T) {
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
	eng := engine.New(cat, log.New(io.Discard, "", 0))

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	defer pubSub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, testResultTopic)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	sysLogger := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))
	sessionRepo := memory.NewSessionRepository(time.Hour)
	publisher := service.NewPublisherService(testResultTopic, pubSub)
	quizService := service.NewQuizService(sessionRepo, eng, cat, publisher, sysLogger)

	// Start a session.
	started, err := quizService.Start(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, started.SessionId)
	assert.Equal(t, "QUESTION", started.Action.Type)
	assert.Equal(t, "p1_q1", started.Action.Question.Id)

	answerMsg := func(message string) *dto.ActionResponse {
		t.Helper()
		res, err := quizService.Answer(ctx, &dto.AnswerQuizRequest{
			SessionId: started.SessionId,
			Message:   message,
		})
		assert.NoError(t, err)
		return res
	}

	// Three matching answers, behavior text with a domain keyword, a
	// scale choice and a subdomain pick.
	answerMsg("a")
	answerMsg("a")
	action := answerMsg("a")
	assert.Equal(t, "p2_q4_behavior", action.Question.Id)

	action = answerMsg("I maintain the software platform our neighborhood uses")
	assert.Equal(t, "p2_q6_scale", action.Question.Id)

	action = answerMsg("a")
	assert.Equal(t, "p2_subdomain", action.Question.Id)

	action = answerMsg("a")
	assert.Equal(t, "RECOGNITION", action.Type)

	// Confirm all three recognition steps.
	answerMsg("yes")
	answerMsg("that fits")
	action = answerMsg("yes")

	assert.Equal(t, "RESULT", action.Type)
	if assert.NotNil(t, action.Result) {
		assert.Equal(t, "steward", action.Result.Primary)
		assert.Equal(t, "technology", action.Result.Domain)
		assert.Equal(t, "local", action.Result.Scale)
		assert.False(t, action.Result.LowConfidence)
		assert.NotEmpty(t, action.Result.PodKey)
	}

	// The completed result is published for the telemetry consumer.
	select {
	case msg := <-messages:
		var payload dto.PublishQuizResultMessage
		assert.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, started.SessionId, payload.SessionId)
		assert.Equal(t, "steward", payload.Primary)
		assert.Equal(t, action.Result.PodKey, payload.PodKey)
		msg.Ack()
	case <-time.After(3 * time.Second):
		t.Fatal("no result message published")
	}

	// The session is retrievable and carries the synthesized result.
	session, err := quizService.GetSession(ctx, started.SessionId)
	assert.NoError(t, err)
	assert.Equal(t, "COMPLETE", session.Status)
	if assert.NotNil(t, session.Result) {
		assert.Equal(t, "steward", session.Result.Primary)
	}

	// Completed sessions are immutable.
	repeat := answerMsg("a")
	assert.Equal(t, "ALREADY_COMPLETE", repeat.Type)
}
