package mapper

import (
	"archetype-quiz-be/internal/entity"
	"archetype-quiz-be/internal/model"
)

type PodSignupMapper struct{}

func NewPodSignupMapper() *PodSignupMapper {
	return &PodSignupMapper{}
}

func (m *PodSignupMapper) ToModel(e *entity.PodSignup) *model.PodSignup {
	return &model.PodSignup{
		Id:        e.Id,
		SessionId: e.SessionId,
		Email:     e.Email,
		Name:      e.Name,
		PodKey:    e.PodKey,
		Archetype: e.Archetype,
		Domain:    e.Domain,
		Scale:     e.Scale,
		CreatedAt: e.CreatedAt,
	}
}

func (m *PodSignupMapper) ToEntity(mo *model.PodSignup) *entity.PodSignup {
	return &entity.PodSignup{
		Id:        mo.Id,
		SessionId: mo.SessionId,
		Email:     mo.Email,
		Name:      mo.Name,
		PodKey:    mo.PodKey,
		Archetype: mo.Archetype,
		Domain:    mo.Domain,
		Scale:     mo.Scale,
		CreatedAt: mo.CreatedAt,
	}
}

func (m *PodSignupMapper) ToEntities(models []*model.PodSignup) []*entity.PodSignup {
	entities := make([]*entity.PodSignup, 0, len(models))
	for _, mo := range models {
		entities = append(entities, m.ToEntity(mo))
	}
	return entities
}
