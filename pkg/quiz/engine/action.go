package engine

import (
	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/synth"
)

// ActionType discriminates the typed result variants of Answer.
// Expected conditions (clarification, correction, low confidence) are
// variants, never errors.
type ActionType string

const (
	ActionQuestion        ActionType = "QUESTION"
	ActionClarification   ActionType = "CLARIFICATION"
	ActionRecognition     ActionType = "RECOGNITION"
	ActionCorrection      ActionType = "CORRECTION"
	ActionResult          ActionType = "RESULT"
	ActionAlreadyComplete ActionType = "ALREADY_COMPLETE"
)

// Progress is the current/total question counter for the structured
// part of the flow.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// RecognitionStep is one step of the validation sequence: behavioral
// description, world impact, then the name reveal.
type RecognitionStep struct {
	Step           int    `json:"step"`
	Behavioral     string `json:"behavioral,omitempty"`
	WorldImpact    string `json:"world_impact,omitempty"`
	ArchetypeName  string `json:"archetype_name,omitempty"`
	SecondaryName  string `json:"secondary_name,omitempty"`
	GapFraming     bool   `json:"gap_framing"`
	AlternateOffer bool   `json:"alternate_offer"`
}

// NextAction is what the engine hands back after each inbound answer.
// Exactly the fields relevant to Type are populated.
type NextAction struct {
	Type           ActionType        `json:"type"`
	Question       *catalog.Question `json:"question,omitempty"`
	Message        string            `json:"message,omitempty"`
	Acknowledgment string            `json:"acknowledgment,omitempty"`
	Recognition    *RecognitionStep  `json:"recognition,omitempty"`
	Result         *synth.Result     `json:"result,omitempty"`
	Progress       *Progress         `json:"progress,omitempty"`
}
