package contract

import (
	"context"

	"archetype-quiz-be/internal/entity"
)

type QuizResultRepository interface {
	Create(ctx context.Context, result *entity.QuizResult) error
	FindBySessionId(ctx context.Context, sessionID string) (*entity.QuizResult, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.QuizResult, error)
	Count(ctx context.Context) (int64, error)
	CountLowConfidence(ctx context.Context) (int64, error)

	// CountByColumn groups results on one of the classification columns
	// (primary_archetype, domain, scale, pod_key).
	CountByColumn(ctx context.Context, column string) (map[string]int64, error)
}
