package store

import "archetype-quiz-be/pkg/quiz/taxonomy"

// Phase identifiers for the quiz state machine. The set is closed; the
// engine owns all transitions between them.
const (
	PhaseIntro      = "INTRO"
	PhaseRapid      = "RAPID"
	PhaseTiebreaker = "TIEBREAKER"
	PhaseFork       = "FORK"
	PhaseRefinement = "REFINEMENT"
	PhaseValidation = "VALIDATION"
	PhaseDelivery   = "DELIVERY"
)

// Lifecycle status of a session.
const (
	StatusActive     = "ACTIVE"
	StatusValidating = "VALIDATING"
	StatusCorrecting = "CORRECTING"
	StatusComplete   = "COMPLETE"
)

// Refinement sub-steps (which refinement question is pending).
const (
	RefineBehavior  = "BEHAVIOR"
	RefineScale     = "SCALE"
	RefineDomain    = "DOMAIN"
	RefineSubdomain = "SUBDOMAIN"
)

// AnswerRecord is one entry of the append-only answer log.
type AnswerRecord struct {
	QuestionID string `json:"question_id"`
	Raw        string `json:"raw"`
	OptionID   string `json:"option_id,omitempty"`
}

// Session is the mutable aggregate root for one quiz interaction.
// It is mutated exactly once per inbound answer and becomes immutable
// once Status reaches COMPLETE. The struct is fully JSON-serializable so
// the session store may hold it in memory, in Redis, or round-trip it
// to the client as an opaque blob.
type Session struct {
	ID     string `json:"id"`
	Phase  string `json:"phase"`
	Status string `json:"status"`

	// Dense tallies: every taxonomy member is present with an explicit
	// zero, never sparse.
	ArchetypeTally map[string]float64 `json:"archetype_tally"`
	DomainTally    map[string]float64 `json:"domain_tally"`
	ScaleTally     map[string]float64 `json:"scale_tally"`

	// TotalWeight accumulates the effective question weight of every
	// answer that contributed at least one archetype signal. It is the
	// denominator for the confidence fraction.
	TotalWeight float64 `json:"total_weight"`

	AnsweredQuestions []string       `json:"answered_questions"`
	Answers           []AnswerRecord `json:"answers"`

	// PendingQuestionID is the question currently awaiting an answer.
	// Malformed input leaves it unchanged so the question is re-asked.
	PendingQuestionID string `json:"pending_question_id"`

	// Counters bounding the adaptive flows.
	ForkRounds       int      `json:"fork_rounds"`
	ForkQueue        []string `json:"fork_queue,omitempty"`
	CorrectionCycles int      `json:"correction_cycles"`
	RecognitionStep  int      `json:"recognition_step"`
	RefineStep       string   `json:"refine_step,omitempty"`

	// Resolved fields, nil-equivalent ("") until determined.
	PrimaryArchetype   string `json:"primary_archetype,omitempty"`
	SecondaryArchetype string `json:"secondary_archetype,omitempty"`
	Domain             string `json:"domain,omitempty"`
	Subdomain          string `json:"subdomain,omitempty"`
	Scale              string `json:"scale,omitempty"`

	// Free-text capture buffers for fallback keyword inference.
	TiebreakerText string `json:"tiebreaker_text,omitempty"`
	BehaviorText   string `json:"behavior_text,omitempty"`
	CorrectionText string `json:"correction_text,omitempty"`

	// Validation bookkeeping.
	GapNoted         bool `json:"gap_noted"`
	AlternateOffered bool `json:"alternate_offered"`
	LowConfidence    bool `json:"low_confidence"`
}

// NewSession creates a fresh session with dense zero tallies.
func NewSession(id string) *Session {
	archetypes := make(map[string]float64, len(taxonomy.ArchetypeKeys()))
	for _, k := range taxonomy.ArchetypeKeys() {
		archetypes[k] = 0
	}
	domains := make(map[string]float64, len(taxonomy.DomainKeys()))
	for _, k := range taxonomy.DomainKeys() {
		domains[k] = 0
	}
	scales := make(map[string]float64, len(taxonomy.ScaleKeys()))
	for _, k := range taxonomy.ScaleKeys() {
		scales[k] = 0
	}

	return &Session{
		ID:                id,
		Phase:             PhaseIntro,
		Status:            StatusActive,
		ArchetypeTally:    archetypes,
		DomainTally:       domains,
		ScaleTally:        scales,
		AnsweredQuestions: []string{},
		Answers:           []AnswerRecord{},
	}
}

// HasAnswered reports whether the question id is already in the log.
func (s *Session) HasAnswered(questionID string) bool {
	for _, id := range s.AnsweredQuestions {
		if id == questionID {
			return true
		}
	}
	return false
}

// RecordAnswer appends to the answer log and marks the question answered.
func (s *Session) RecordAnswer(questionID, raw, optionID string) {
	s.AnsweredQuestions = append(s.AnsweredQuestions, questionID)
	s.Answers = append(s.Answers, AnswerRecord{
		QuestionID: questionID,
		Raw:        raw,
		OptionID:   optionID,
	})
}

// IsComplete reports terminal state.
func (s *Session) IsComplete() bool {
	return s.Status == StatusComplete
}
