package contract

import (
	"context"

	"archetype-quiz-be/internal/entity"
)

type PodSignupRepository interface {
	Create(ctx context.Context, signup *entity.PodSignup) error
	FindBySessionId(ctx context.Context, sessionID string) (*entity.PodSignup, error)
	CountByPodKey(ctx context.Context, podKey string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
