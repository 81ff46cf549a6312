package mapper

import (
	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/entity"
	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/engine"
	"archetype-quiz-be/pkg/quiz/synth"
)

// ActionMapper translates engine output into transport DTOs.
type ActionMapper struct{}

func NewActionMapper() *ActionMapper {
	return &ActionMapper{}
}

func (m *ActionMapper) ToActionResponse(a engine.NextAction) dto.ActionResponse {
	res := dto.ActionResponse{
		Type:           string(a.Type),
		Message:        a.Message,
		Acknowledgment: a.Acknowledgment,
	}
	if a.Question != nil {
		res.Question = m.toQuestionResponse(a.Question)
	}
	if a.Recognition != nil {
		res.Recognition = &dto.RecognitionResponse{
			Step:           a.Recognition.Step,
			Behavioral:     a.Recognition.Behavioral,
			WorldImpact:    a.Recognition.WorldImpact,
			ArchetypeName:  a.Recognition.ArchetypeName,
			SecondaryName:  a.Recognition.SecondaryName,
			GapFraming:     a.Recognition.GapFraming,
			AlternateOffer: a.Recognition.AlternateOffer,
		}
	}
	if a.Result != nil {
		res.Result = m.ToResultResponse(a.Result)
	}
	if a.Progress != nil {
		res.Progress = &dto.ProgressResponse{Current: a.Progress.Current, Total: a.Progress.Total}
	}
	return res
}

func (m *ActionMapper) toQuestionResponse(q *catalog.Question) *dto.QuestionResponse {
	res := &dto.QuestionResponse{
		Id:     q.ID,
		Kind:   string(q.Kind),
		Prompt: q.Prompt,
	}
	for _, opt := range q.Options {
		res.Options = append(res.Options, dto.OptionResponse{Id: opt.ID, Text: opt.Text})
	}
	return res
}

func (m *ActionMapper) ToResultResponse(r *synth.Result) *dto.ResultResponse {
	return &dto.ResultResponse{
		Primary:        r.Primary,
		PrimaryLabel:   r.PrimaryLabel,
		Secondary:      r.Secondary,
		SecondaryLabel: r.SecondaryLabel,
		Domain:         r.Domain,
		DomainLabel:    r.DomainLabel,
		Subdomain:      r.Subdomain,
		Scale:          r.Scale,
		ScaleLabel:     r.ScaleLabel,
		IsBlended:      r.IsBlended,
		Confidence:     r.Confidence,
		Level:          r.Level,
		LowConfidence:  r.LowConfidence,
		Candidates:     r.Candidates,
		Behavioral:     r.Behavioral,
		WorldImpact:    r.WorldImpact,
		Pairing:        r.Pairing,
		PodKey:         r.PodKey,
		Scores:         r.Scores,
	}
}

func (m *ActionMapper) ToQuizResultResponse(e *entity.QuizResult) dto.QuizResultResponse {
	return dto.QuizResultResponse{
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
		CreatedAt:     e.CreatedAt,
	}
}
