package engine

import (
	"io"
	"log"
	"testing"

	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/textmatch"
	"archetype-quiz-be/pkg/store"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	c := catalog.Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
	return New(c, log.New(io.Discard, "", 0))
}

func answer(t *testing.T, e *Engine, s *store.Session, input string) NextAction {
	t.Helper()
	action, err := e.Answer(s, input)
	if err != nil {
		t.Fatalf("Answer(%q) error = %v", input, err)
	}
	return action
}

// answerAll feeds inputs in order and returns the last action.
func answerAll(t *testing.T, e *Engine, s *store.Session, inputs ...string) NextAction {
	t.Helper()
	var action NextAction
	for _, input := range inputs {
		action = answer(t, e, s, input)
	}
	return action
}

func TestStart(t *testing.T) {
	e := newTestEngine(t)
	s := store.NewSession("s1")

	action := e.Start(s)
	if action.Type != ActionQuestion {
		t.Fatalf("Type = %q, want QUESTION", action.Type)
	}
	if action.Question.ID != "p1_q1" {
		t.Errorf("Question.ID = %q, want p1_q1", action.Question.ID)
	}
	if action.Progress == nil || action.Progress.Current != 1 || action.Progress.Total != 5 {
		t.Errorf("Progress = %+v, want 1/5", action.Progress)
	}
	if s.Phase != store.PhaseRapid {
		t.Errorf("Phase = %q, want RAPID", s.Phase)
	}
}

func TestClearSignalPath(t *testing.T) {
	e := newTestEngine(t)
	s := store.NewSession("s1")
	e.Start(s)

	// Three steward answers give a clear signal: no tiebreaker, no fork.
	action := answerAll(t, e, s, "a", "a", "a")
	if action.Type != ActionQuestion || action.Question.ID != "p2_q4_behavior" {
		t.Fatalf("after rapid batch: type=%q question=%v", action.Type, action.Question)
	}
	if s.PrimaryArchetype != "steward" {
		t.Fatalf("PrimaryArchetype = %q, want steward", s.PrimaryArchetype)
	}

	// Behavior text carries a domain keyword, so no clarifying question.
	action = answer(t, e, s, "I maintain the software platform our neighborhood uses")
	if action.Type != ActionQuestion || action.Question.ID != "p2_q6_scale" {
		t.Fatalf("after behavior: type=%q question=%v", action.Type, action.Question)
	}
	if s.Domain != "technology" {
		t.Errorf("Domain = %q, want technology", s.Domain)
	}

	action = answer(t, e, s, "a")
	if s.Scale != "local" {
		t.Errorf("Scale = %q, want local", s.Scale)
	}
	if action.Type != ActionQuestion || action.Question.ID != "p2_subdomain" {
		t.Fatalf("after scale: type=%q question=%v", action.Type, action.Question)
	}

	action = answer(t, e, s, "a")
	if action.Type != ActionRecognition || action.Recognition.Step != 1 {
		t.Fatalf("after subdomain: type=%q recognition=%+v", action.Type, action.Recognition)
	}
	if s.Subdomain != "digital" {
		t.Errorf("Subdomain = %q, want digital", s.Subdomain)
	}
	if action.Recognition.Behavioral == "" {
		t.Error("recognition step 1 has no behavioral text")
	}

	action = answer(t, e, s, "yes")
	if action.Type != ActionRecognition || action.Recognition.Step != 2 || action.Recognition.WorldImpact == "" {
		t.Fatalf("recognition step 2 = %+v", action.Recognition)
	}

	action = answer(t, e, s, "that fits")
	if action.Type != ActionRecognition || action.Recognition.Step != 3 || action.Recognition.ArchetypeName != "Steward" {
		t.Fatalf("recognition step 3 = %+v", action.Recognition)
	}

	action = answer(t, e, s, "yes")
	if action.Type != ActionResult {
		t.Fatalf("final type = %q, want RESULT", action.Type)
	}
	res := action.Result
	if res.Primary != "steward" || res.Domain != "technology" || res.Scale != "local" || res.Subdomain != "digital" {
		t.Errorf("result = %s/%s/%s/%s", res.Primary, res.Domain, res.Scale, res.Subdomain)
	}
	if res.LowConfidence {
		t.Error("LowConfidence = true on a clean run")
	}
	if !s.IsComplete() {
		t.Error("session not complete after delivery")
	}
}

func TestTieGoesToTiebreaker(t *testing.T) {
	e := newTestEngine(t)
	s := store.NewSession("s1")
	e.Start(s)

	// Three different archetypes, all at one point.
	action := answerAll(t, e, s, "a", "f", "e")
	if action.Type != ActionQuestion || action.Question.ID != "p1_tiebreaker" {
		t.Fatalf("after tied rapid batch: type=%q question=%v", action.Type, action.Question)
	}
	if s.Phase != store.PhaseTiebreaker {
		t.Fatalf("Phase = %q, want TIEBREAKER", s.Phase)
	}

	action = answer(t, e, s, "I quietly maintain and tend whatever needs to keep running")
	if s.PrimaryArchetype != "steward" {
		t.Errorf("PrimaryArchetype = %q, want steward", s.PrimaryArchetype)
	}
	if action.Type != ActionQuestion || action.Question.ID != "p2_q4_behavior" {
		t.Errorf("after tiebreaker: type=%q question=%v", action.Type, action.Question)
	}
}

func TestForkDisambiguation(t *testing.T) {
	e := newTestEngine(t)
	s := store.NewSession("s1")
	e.Start(s)

	// Steward 2, guardian 1: clear but within the confused-pair window.
	action := answerAll(t, e, s, "a", "d", "a")
	if action.Type != ActionQuestion || action.Question.ID != "fork_steward_guardian" {
		t.Fatalf("expected fork question, got type=%q question=%v", action.Type, action.Question)
	}
	if s.Phase != store.PhaseFork {
		t.Fatalf("Phase = %q, want FORK", s.Phase)
	}

	// Double-weight guardian answer flips the lead.
	action = answer(t, e, s, "b")
	if s.PrimaryArchetype != "guardian" {
		t.Errorf("PrimaryArchetype = %q, want guardian", s.PrimaryArchetype)
	}
	if s.ForkRounds != 1 {
		t.Errorf("ForkRounds = %d, want 1", s.ForkRounds)
	}
	if action.Type != ActionQuestion || action.Question.ID != "p2_q4_behavior" {
		t.Errorf("after fork: type=%q question=%v", action.Type, action.Question)
	}
}

func TestDomainClarifyDefault(t *testing.T) {
	e := newTestEngine(t)
	s := store.NewSession("s1")
	e.Start(s)

	answerAll(t, e, s, "a", "a", "a")

	// No domain keyword in the behavior text: the clarifying question runs.
	action := answer(t, e, s, "I was absorbed in a long walk")
	if action.Type != ActionQuestion || action.Question.ID != "p2_q6_scale" {
		t.Fatalf("after behavior: type=%q question=%v", action.Type, action.Question)
	}

	action = answer(t, e, s, "b")
	if action.Type != ActionQuestion || action.Question.ID != "p2_q5_domain" {
		t.Fatalf("expected domain clarify, got type=%q question=%v", action.Type, action.Question)
	}

	// An unmatched reply falls back to the documented default.
	action = answer(t, e, s, "hard to say")
	if s.Domain != "society" {
		t.Errorf("Domain = %q, want society default", s.Domain)
	}
	if action.Type != ActionQuestion || action.Question.ID != "p2_subdomain" {
		t.Errorf("after domain clarify: type=%q question=%v", action.Type, action.Question)
	}
}

func TestDomainClarifyKeyword(t *testing.T) {
	e := newTestEngine(t)
	s := store.NewSession("s1")
	e.Start(s)

	answerAll(t, e, s, "a", "a", "a", "I was absorbed in a long walk", "b")
	answer(t, e, s, "it's about nature and ecology")
	if s.Domain != "nature" {
		t.Errorf("Domain = %q, want nature", s.Domain)
	}
}

func TestClarificationLoop(t *testing.T) {
	e := newTestEngine(t)
	s := store.NewSession("s1")
	e.Start(s)

	action := answer(t, e, s, "z")
	if action.Type != ActionClarification {
		t.Fatalf("Type = %q, want CLARIFICATION", action.Type)
	}
	if action.Question.ID != "p1_q1" {
		t.Errorf("clarification re-presents %q, want p1_q1", action.Question.ID)
	}
	if s.HasAnswered("p1_q1") {
		t.Error("unmatched input was recorded")
	}

	// The same question still accepts a valid answer afterwards.
	action = answer(t, e, s, "b")
	if action.Type != ActionQuestion || action.Question.ID != "p1_q2" {
		t.Errorf("after retry: type=%q question=%v", action.Type, action.Question)
	}
}

func TestCorrectionToAlternateToHonestClose(t *testing.T) {
	e := newTestEngine(t)
	s := store.NewSession("s1")
	e.Start(s)

	// Steward leads with guardian close behind; fork answer keeps steward.
	answerAll(t, e, s, "a", "d", "a", "a")
	action := answerAll(t, e, s,
		"I maintain community systems", // behavior
		"a",                            // scale
		"a",                            // subdomain
	)
	if action.Type != ActionRecognition {
		t.Fatalf("expected recognition, got %q", action.Type)
	}

	// First rejection opens a correction exchange.
	action = answer(t, e, s, "no, that's not me")
	if action.Type != ActionCorrection {
		t.Fatalf("Type = %q, want CORRECTION", action.Type)
	}

	// First correction re-presents the reading with the gap named.
	action = answer(t, e, s, "the maintaining part is wrong")
	if action.Type != ActionRecognition || !action.Recognition.GapFraming {
		t.Fatalf("after correction 1: %+v", action.Recognition)
	}
	if action.Recognition.AlternateOffer {
		t.Error("AlternateOffer = true after first correction")
	}

	// Second rejection and correction trigger the alternate offer.
	action = answer(t, e, s, "no")
	if action.Type != ActionCorrection {
		t.Fatalf("Type = %q, want CORRECTION", action.Type)
	}
	action = answer(t, e, s, "still off")
	if action.Type != ActionRecognition || !action.Recognition.AlternateOffer {
		t.Fatalf("after correction 2: %+v", action.Recognition)
	}
	if s.PrimaryArchetype == "" || !s.AlternateOffered {
		t.Fatal("alternate was not installed")
	}

	// Rejecting the alternate closes honestly with both candidates.
	action = answer(t, e, s, "no, doesn't fit either")
	if action.Type != ActionResult {
		t.Fatalf("Type = %q, want RESULT", action.Type)
	}
	if !action.Result.LowConfidence {
		t.Error("LowConfidence = false on honest close")
	}
	if len(action.Result.Candidates) == 0 {
		t.Error("honest close carries no candidates")
	}
}

func TestUncertainAdvancesWithGapFraming(t *testing.T) {
	e := newTestEngine(t)
	s := store.NewSession("s1")
	e.Start(s)

	answerAll(t, e, s, "a", "a", "a", "tending my community garden", "a", "a")
	action := answer(t, e, s, "maybe, kind of")
	if action.Type != ActionRecognition || action.Recognition.Step != 2 {
		t.Fatalf("after uncertain: %+v", action.Recognition)
	}
	if !action.Recognition.GapFraming {
		t.Error("GapFraming = false after an uncertain reply")
	}
}

func TestCompletedSessionIsImmutable(t *testing.T) {
	e := newTestEngine(t)
	s := store.NewSession("s1")
	e.Start(s)

	answerAll(t, e, s, "a", "a", "a", "tending my community garden", "a", "a", "yes", "yes")
	final := answer(t, e, s, "yes")
	if final.Type != ActionResult {
		t.Fatalf("Type = %q, want RESULT", final.Type)
	}

	before := s.ArchetypeTally["steward"]
	action := answer(t, e, s, "a")
	if action.Type != ActionAlreadyComplete {
		t.Errorf("Type = %q, want ALREADY_COMPLETE", action.Type)
	}
	if s.ArchetypeTally["steward"] != before {
		t.Error("completed session tally changed")
	}

	restart := e.Start(s)
	if restart.Type != ActionAlreadyComplete {
		t.Errorf("Start on completed session = %q, want ALREADY_COMPLETE", restart.Type)
	}
}

func TestAnswerBeforeStartStartsSession(t *testing.T) {
	e := newTestEngine(t)
	s := store.NewSession("s1")

	action := answer(t, e, s, "hello")
	if action.Type != ActionQuestion || action.Question.ID != "p1_q1" {
		t.Errorf("first contact: type=%q question=%v", action.Type, action.Question)
	}
}

func TestDeterministicRuns(t *testing.T) {
	e := newTestEngine(t)
	inputs := []string{"c", "c", "c", "I bring people together around food", "b", "a", "yes", "yes", "yes"}

	run := func(id string) *store.Session {
		s := store.NewSession(id)
		e.Start(s)
		answerAll(t, e, s, inputs...)
		return s
	}

	a, b := run("s1"), run("s2")
	if a.PrimaryArchetype != b.PrimaryArchetype || a.Domain != b.Domain || a.Scale != b.Scale {
		t.Errorf("identical runs diverged: %s/%s/%s vs %s/%s/%s",
			a.PrimaryArchetype, a.Domain, a.Scale, b.PrimaryArchetype, b.Domain, b.Scale)
	}
	if a.PrimaryArchetype != "connector" {
		t.Errorf("PrimaryArchetype = %q, want connector", a.PrimaryArchetype)
	}
}

func TestSentimentWiring(t *testing.T) {
	// The engine's validation phase relies on the lexicon priorities.
	e := newTestEngine(t)
	if got := textmatch.ClassifySentiment("yes but also no", e.catalog.Sentiment); got != textmatch.SentimentNegative {
		t.Errorf("ClassifySentiment = %q, want NEGATIVE", got)
	}
}
