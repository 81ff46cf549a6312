package dto

import "time"

type AnswerQuizRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type StartQuizResponse struct {
	SessionId string         `json:"session_id"`
	Action    ActionResponse `json:"action"`
}

type ActionResponse struct {
	Type           string               `json:"type"`
	Question       *QuestionResponse    `json:"question,omitempty"`
	Message        string               `json:"message,omitempty"`
	Acknowledgment string               `json:"acknowledgment,omitempty"`
	Recognition    *RecognitionResponse `json:"recognition,omitempty"`
	Result         *ResultResponse      `json:"result,omitempty"`
	Progress       *ProgressResponse    `json:"progress,omitempty"`
}

type QuestionResponse struct {
	Id      string           `json:"id"`
	Kind    string           `json:"kind"`
	Prompt  string           `json:"prompt"`
	Options []OptionResponse `json:"options,omitempty"`
}

type OptionResponse struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

type RecognitionResponse struct {
	Step           int    `json:"step"`
	Behavioral     string `json:"behavioral,omitempty"`
	WorldImpact    string `json:"world_impact,omitempty"`
	ArchetypeName  string `json:"archetype_name,omitempty"`
	SecondaryName  string `json:"secondary_name,omitempty"`
	GapFraming     bool   `json:"gap_framing"`
	AlternateOffer bool   `json:"alternate_offer"`
}

type ResultResponse struct {
	Primary        string                        `json:"primary"`
	PrimaryLabel   string                        `json:"primary_label"`
	Secondary      string                        `json:"secondary,omitempty"`
	SecondaryLabel string                        `json:"secondary_label,omitempty"`
	Domain         string                        `json:"domain"`
	DomainLabel    string                        `json:"domain_label"`
	Subdomain      string                        `json:"subdomain,omitempty"`
	Scale          string                        `json:"scale"`
	ScaleLabel     string                        `json:"scale_label"`
	IsBlended      bool                          `json:"is_blended"`
	Confidence     float64                       `json:"confidence"`
	Level          string                        `json:"level"`
	LowConfidence  bool                          `json:"low_confidence"`
	Candidates     []string                      `json:"candidates,omitempty"`
	Behavioral     string                        `json:"behavioral"`
	WorldImpact    string                        `json:"world_impact"`
	Pairing        string                        `json:"pairing"`
	PodKey         string                        `json:"pod_key"`
	Scores         map[string]map[string]float64 `json:"scores,omitempty"`
}

type ProgressResponse struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type SessionResponse struct {
	SessionId string          `json:"session_id"`
	Phase     string          `json:"phase"`
	Status    string          `json:"status"`
	Answered  int             `json:"answered"`
	Result    *ResultResponse `json:"result,omitempty"`
}

type QuizStatsResponse struct {
	TotalCompleted int64            `json:"total_completed"`
	Archetypes     map[string]int64 `json:"archetypes"`
	Domains        map[string]int64 `json:"domains"`
	Scales         map[string]int64 `json:"scales"`
	Pods           map[string]int64 `json:"pods"`
}

// PublishQuizResultMessage is the payload carried on the internal
// result-completed topic.
type PublishQuizResultMessage struct {
	SessionId     string                        `json:"session_id"`
	Primary       string                        `json:"primary"`
	Secondary     string                        `json:"secondary,omitempty"`
	Domain        string                        `json:"domain"`
	Subdomain     string                        `json:"subdomain,omitempty"`
	Scale         string                        `json:"scale"`
	PodKey        string                        `json:"pod_key"`
	Confidence    float64                       `json:"confidence"`
	Level         string                        `json:"level"`
	IsBlended     bool                          `json:"is_blended"`
	LowConfidence bool                          `json:"low_confidence"`
	Scores        map[string]map[string]float64 `json:"scores,omitempty"`
	CompletedAt   time.Time                     `json:"completed_at"`
}
