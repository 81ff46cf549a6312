package mapper

import (
	"encoding/json"

	"archetype-quiz-be/internal/entity"
	"archetype-quiz-be/internal/model"
)

type QuizResultMapper struct{}

func NewQuizResultMapper() *QuizResultMapper {
	return &QuizResultMapper{}
}

func (m *QuizResultMapper) ToModel(e *entity.QuizResult) *model.QuizResult {
	scores, _ := json.Marshal(e.Scores)
	return &model.QuizResult{
		Id:            e.Id,
		SessionId:     e.SessionId,
		Primary:       e.Primary,
		Secondary:     e.Secondary,
		Domain:        e.Domain,
		Subdomain:     e.Subdomain,
		Scale:         e.Scale,
		PodKey:        e.PodKey,
		Confidence:    e.Confidence,
		Level:         e.Level,
		IsBlended:     e.IsBlended,
		LowConfidence: e.LowConfidence,
		Scores:        scores,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *QuizResultMapper) ToEntity(mo *model.QuizResult) *entity.QuizResult {
	var scores map[string]map[string]float64
	if len(mo.Scores) > 0 {
		_ = json.Unmarshal(mo.Scores, &scores)
	}
	return &entity.QuizResult{
		Id:            mo.Id,
		SessionId:     mo.SessionId,
		Primary:       mo.Primary,
		Secondary:     mo.Secondary,
		Domain:        mo.Domain,
		Subdomain:     mo.Subdomain,
		Scale:         mo.Scale,
		PodKey:        mo.PodKey,
		Confidence:    mo.Confidence,
		Level:         mo.Level,
		IsBlended:     mo.IsBlended,
		LowConfidence: mo.LowConfidence,
		Scores:        scores,
		CreatedAt:     mo.CreatedAt,
	}
}

func (m *QuizResultMapper) ToEntities(models []*model.QuizResult) []*entity.QuizResult {
	entities := make([]*entity.QuizResult, 0, len(models))
	for _, mo := range models {
		entities = append(entities, m.ToEntity(mo))
	}
	return entities
}
