package engine

import (
	"fmt"
	"log"
	"strings"

	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/rank"
	"archetype-quiz-be/pkg/quiz/synth"
	"archetype-quiz-be/pkg/quiz/tally"
	"archetype-quiz-be/pkg/quiz/taxonomy"
	"archetype-quiz-be/pkg/quiz/textmatch"
	"archetype-quiz-be/pkg/store"
)

// subdomainQuestionID is the synthetic id for the per-domain subdomain
// menu, which is built at runtime from the resolved domain.
const subdomainQuestionID = "p2_subdomain"

const alreadyDeliveredMessage = "Your pattern has already been delivered. Start a new session to run the piece again."

// Engine is the phase state machine. It is stateless itself: all
// mutable state lives in the Session, so independent sessions can be
// processed concurrently without shared state.
type Engine struct {
	catalog *catalog.Catalog
	logger  *log.Logger
}

// New creates an engine over a validated catalog.
func New(c *catalog.Catalog, logger *log.Logger) *Engine {
	return &Engine{catalog: c, logger: logger}
}

// Start emits the first question. No scoring happens here.
func (e *Engine) Start(s *store.Session) NextAction {
	if s.IsComplete() {
		return NextAction{Type: ActionAlreadyComplete, Message: alreadyDeliveredMessage}
	}

	s.Phase = store.PhaseRapid
	q := &e.catalog.Rapid[0]
	s.PendingQuestionID = q.ID

	return NextAction{
		Type:     ActionQuestion,
		Question: q,
		Progress: &Progress{Current: 1, Total: e.catalog.TotalQuestions()},
	}
}

// Answer routes one inbound answer through the current phase. It
// returns an error only for invariant violations (corrupted session,
// unknown pending question); all expected conditions are NextAction
// variants.
func (e *Engine) Answer(s *store.Session, input string) (NextAction, error) {
	if s.IsComplete() {
		// Terminal sessions are immutable; any further input yields a
		// fixed response.
		return NextAction{Type: ActionAlreadyComplete, Message: alreadyDeliveredMessage}, nil
	}

	switch s.Phase {
	case store.PhaseIntro:
		// First inbound contact starts the piece.
		return e.Start(s), nil
	case store.PhaseRapid:
		return e.answerRapid(s, input)
	case store.PhaseTiebreaker:
		return e.answerTiebreaker(s, input)
	case store.PhaseFork:
		return e.answerFork(s, input)
	case store.PhaseRefinement:
		return e.answerRefinement(s, input)
	case store.PhaseValidation:
		return e.answerValidation(s, input)
	default:
		return NextAction{}, fmt.Errorf("engine: session %s in unexpected phase %q", s.ID, s.Phase)
	}
}

// --- Rapid signal ---

func (e *Engine) answerRapid(s *store.Session, input string) (NextAction, error) {
	q, ok := e.catalog.Question(s.PendingQuestionID)
	if !ok {
		return NextAction{}, fmt.Errorf("engine: unknown pending question %q", s.PendingQuestionID)
	}

	res, err := tally.ApplyChoice(s, q, input)
	if err != nil {
		return NextAction{}, err
	}
	if !res.Applied {
		return clarify(q, res.Clarification), nil
	}

	answered := e.rapidAnswered(s)
	if answered < len(e.catalog.Rapid) {
		next := &e.catalog.Rapid[answered]
		s.PendingQuestionID = next.ID
		ack := ""
		if answered == 1 {
			ack = "Got it."
		}
		return NextAction{
			Type:           ActionQuestion,
			Question:       next,
			Acknowledgment: ack,
			Progress:       &Progress{Current: answered + 1, Total: e.catalog.TotalQuestions()},
		}, nil
	}

	return e.afterRapid(s), nil
}

func (e *Engine) afterRapid(s *store.Session) NextAction {
	r := e.rankArchetypes(s)
	e.logger.Printf("[ENGINE] Rapid batch done for %s: top=%s (%.1f) second=%s (%.1f) tie=%v clear=%v",
		s.ID, r.Primary, r.PrimaryScore, r.Secondary, r.SecondaryScore, r.IsTie, r.IsClear)

	if r.IsTie && !r.IsClear {
		s.Phase = store.PhaseTiebreaker
		q := &e.catalog.Tiebreaker
		s.PendingQuestionID = q.ID
		return NextAction{Type: ActionQuestion, Question: q, Acknowledgment: "Got it."}
	}

	e.resolvePrimary(s, r)

	if len(r.NeededPairs) > 0 && s.ForkRounds < e.catalog.Thresholds.MaxForkRounds {
		return e.enterFork(s, r.NeededPairs)
	}
	return e.enterRefinement(s, "Good. I'm getting a clear sense of your pattern.")
}

// --- Tiebreaker ---

func (e *Engine) answerTiebreaker(s *store.Session, input string) (NextAction, error) {
	q := &e.catalog.Tiebreaker
	res, err := tally.ApplyFreeText(s, q, input, e.catalog)
	if err != nil {
		return NextAction{}, err
	}
	if !res.Applied {
		return clarify(q, res.Clarification), nil
	}

	s.TiebreakerText = strings.TrimSpace(input)

	r := e.rankArchetypes(s)
	winner := rank.BreakTie(s.TiebreakerText, e.catalog.ArchetypeVerbs, taxonomy.ArchetypeKeys(), r.Primary)
	s.PrimaryArchetype = winner
	e.logger.Printf("[ENGINE] Tiebreaker for %s resolved to %s", s.ID, winner)

	if len(r.NeededPairs) > 0 && s.ForkRounds < e.catalog.Thresholds.MaxForkRounds {
		return e.enterFork(s, r.NeededPairs), nil
	}
	return e.enterRefinement(s, "That's helpful."), nil
}

// --- Fork ---

func (e *Engine) enterFork(s *store.Session, pairs []catalog.Pair) NextAction {
	s.Phase = store.PhaseFork
	s.ForkQueue = nil
	for _, pair := range pairs {
		if len(s.ForkQueue) == e.catalog.Thresholds.MaxForkRounds {
			break
		}
		s.ForkQueue = append(s.ForkQueue, pair.Key())
	}

	q, _ := e.catalog.ForkForPair(s.ForkQueue[0])
	s.PendingQuestionID = q.ID
	return NextAction{Type: ActionQuestion, Question: q, Acknowledgment: "Two readings of you are close. Let me sharpen it."}
}

func (e *Engine) answerFork(s *store.Session, input string) (NextAction, error) {
	q, ok := e.catalog.Question(s.PendingQuestionID)
	if !ok {
		return NextAction{}, fmt.Errorf("engine: unknown pending fork question %q", s.PendingQuestionID)
	}

	res, err := tally.ApplyChoice(s, q, input)
	if err != nil {
		return NextAction{}, err
	}
	if !res.Applied {
		return clarify(q, res.Clarification), nil
	}

	s.ForkRounds++
	s.ForkQueue = s.ForkQueue[1:]

	r := e.rankArchetypes(s)
	e.resolvePrimary(s, r)

	// A second round only runs when the first still leaves its pair
	// blended.
	if len(s.ForkQueue) > 0 && s.ForkRounds < e.catalog.Thresholds.MaxForkRounds && pairStillNeeded(r.NeededPairs, s.ForkQueue[0]) {
		next, _ := e.catalog.ForkForPair(s.ForkQueue[0])
		s.PendingQuestionID = next.ID
		return NextAction{Type: ActionQuestion, Question: next}, nil
	}

	s.ForkQueue = nil
	return e.enterRefinement(s, "That settles it."), nil
}

func pairStillNeeded(pairs []catalog.Pair, key string) bool {
	for _, pair := range pairs {
		if pair.Key() == key {
			return true
		}
	}
	return false
}

// --- Refinement ---

func (e *Engine) enterRefinement(s *store.Session, ack string) NextAction {
	s.Phase = store.PhaseRefinement
	s.RefineStep = store.RefineBehavior
	q := &e.catalog.Behavior
	s.PendingQuestionID = q.ID
	return NextAction{Type: ActionQuestion, Question: q, Acknowledgment: ack}
}

func (e *Engine) answerRefinement(s *store.Session, input string) (NextAction, error) {
	switch s.RefineStep {
	case store.RefineBehavior:
		return e.answerBehavior(s, input)
	case store.RefineScale:
		return e.answerScale(s, input)
	case store.RefineDomain:
		return e.answerDomainClarify(s, input)
	case store.RefineSubdomain:
		return e.answerSubdomain(s, input)
	default:
		return NextAction{}, fmt.Errorf("engine: session %s in unexpected refinement step %q", s.ID, s.RefineStep)
	}
}

func (e *Engine) answerBehavior(s *store.Session, input string) (NextAction, error) {
	q := &e.catalog.Behavior
	res, err := tally.ApplyFreeText(s, q, input, e.catalog)
	if err != nil {
		return NextAction{}, err
	}
	if !res.Applied {
		return clarify(q, res.Clarification), nil
	}

	s.BehaviorText = strings.TrimSpace(input)
	if res.InferredDomain != "" && s.Domain == "" {
		s.Domain = res.InferredDomain
		e.logger.Printf("[ENGINE] Inferred domain %s for %s from behavior text", s.Domain, s.ID)
	}

	s.RefineStep = store.RefineScale
	next := &e.catalog.Scale
	s.PendingQuestionID = next.ID
	return NextAction{
		Type:           ActionQuestion,
		Question:       next,
		Acknowledgment: "Okay.",
		Progress:       &Progress{Current: len(e.catalog.Rapid) + 2, Total: e.catalog.TotalQuestions()},
	}, nil
}

func (e *Engine) answerScale(s *store.Session, input string) (NextAction, error) {
	q := &e.catalog.Scale
	res, err := tally.ApplyChoice(s, q, input)
	if err != nil {
		return NextAction{}, err
	}
	if !res.Applied {
		return clarify(q, res.Clarification), nil
	}

	for _, sig := range res.Option.Signals {
		if sig.Axis == taxonomy.AxisScale {
			s.Scale = sig.Member
			break
		}
	}

	// Domain preference order: structured answer, then free-text
	// inference, then the clarifying question with its documented
	// default. Never silently empty.
	if s.Domain == "" {
		s.RefineStep = store.RefineDomain
		next := &e.catalog.DomainClarify
		s.PendingQuestionID = next.ID
		return NextAction{Type: ActionQuestion, Question: next}, nil
	}

	return e.enterSubdomain(s), nil
}

func (e *Engine) answerDomainClarify(s *store.Session, input string) (NextAction, error) {
	q := &e.catalog.DomainClarify
	if s.HasAnswered(q.ID) {
		return NextAction{}, tally.ErrDuplicateAnswer
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return clarify(q, "A few words are enough - which area does it belong to?"), nil
	}

	member, ok := textmatch.FirstMatch(trimmed, e.catalog.DomainClarifyKeywords)
	if !ok {
		member = string(e.catalog.DefaultDomain)
	}
	s.Domain = member
	s.DomainTally[member]++
	s.RecordAnswer(q.ID, trimmed, "")

	return e.enterSubdomain(s), nil
}

func (e *Engine) enterSubdomain(s *store.Session) NextAction {
	s.RefineStep = store.RefineSubdomain
	s.PendingQuestionID = subdomainQuestionID
	return NextAction{Type: ActionQuestion, Question: e.subdomainQuestion(s)}
}

// answerSubdomain is deliberately lenient: the menu is supplemental
// color, so an unmatched reply advances without setting a subdomain
// instead of blocking the flow.
func (e *Engine) answerSubdomain(s *store.Session, input string) (NextAction, error) {
	menu, ok := e.catalog.Subdomains[taxonomy.Domain(s.Domain)]
	if !ok {
		return NextAction{}, fmt.Errorf("engine: no subdomain menu for domain %q", s.Domain)
	}

	trimmed := strings.TrimSpace(strings.ToLower(input))
	for i, opt := range menu.Options {
		letter := string(rune('a' + i))
		if strings.HasPrefix(trimmed, letter) || strings.Contains(trimmed, opt.ID) {
			s.Subdomain = opt.ID
			break
		}
	}
	s.RecordAnswer(subdomainQuestionID, strings.TrimSpace(input), s.Subdomain)

	return e.enterValidation(s), nil
}

func (e *Engine) subdomainQuestion(s *store.Session) *catalog.Question {
	menu := e.catalog.Subdomains[taxonomy.Domain(s.Domain)]
	q := &catalog.Question{
		ID:     subdomainQuestionID,
		Phase:  store.PhaseRefinement,
		Kind:   catalog.InputChoice,
		Prompt: menu.Prompt,
	}
	for i, opt := range menu.Options {
		q.Options = append(q.Options, catalog.Option{
			ID:   string(rune('a' + i)),
			Text: opt.Text,
		})
	}
	return q
}

// --- Validation / recognition ---

func (e *Engine) enterValidation(s *store.Session) NextAction {
	s.Phase = store.PhaseValidation
	s.Status = store.StatusValidating
	s.RecognitionStep = 1
	s.PendingQuestionID = ""

	step := e.recognitionStep(s)
	step.GapFraming = s.GapNoted
	return NextAction{
		Type:           ActionRecognition,
		Recognition:    step,
		Acknowledgment: "Alright. Here's what I'm seeing.",
	}
}

func (e *Engine) answerValidation(s *store.Session, input string) (NextAction, error) {
	if s.Status == store.StatusCorrecting {
		return e.answerCorrection(s, input)
	}

	sentiment := textmatch.ClassifySentiment(input, e.catalog.Sentiment)
	e.logger.Printf("[ENGINE] Recognition step %d for %s: sentiment=%s", s.RecognitionStep, s.ID, sentiment)

	switch sentiment {
	case textmatch.SentimentNegative:
		if s.AlternateOffered || s.CorrectionCycles >= e.catalog.Thresholds.MaxCorrections {
			// Correction budget exhausted: close honestly instead of
			// forcing a result the user has rejected.
			s.LowConfidence = true
			return e.deliver(s), nil
		}
		s.Status = store.StatusCorrecting
		return NextAction{Type: ActionCorrection, Message: "What part doesn't feel right?"}, nil

	case textmatch.SentimentUncertain, textmatch.SentimentAmbiguous:
		// Soft pass: advance, but keep the gap framing.
		s.GapNoted = true
	}

	s.RecognitionStep++
	if s.RecognitionStep > 3 {
		return e.deliver(s), nil
	}

	step := e.recognitionStep(s)
	step.GapFraming = s.GapNoted
	return NextAction{Type: ActionRecognition, Recognition: step}, nil
}

func (e *Engine) answerCorrection(s *store.Session, input string) (NextAction, error) {
	s.CorrectionText = strings.TrimSpace(input)
	s.CorrectionCycles++
	s.GapNoted = true
	s.Status = store.StatusValidating

	if s.CorrectionCycles >= e.catalog.Thresholds.MaxCorrections {
		// Last correction spent: offer the next-best reading instead of
		// re-arguing the same one.
		alternate := e.nextBest(s)
		if alternate == "" {
			s.LowConfidence = true
			return e.deliver(s), nil
		}
		s.SecondaryArchetype = s.PrimaryArchetype
		s.PrimaryArchetype = alternate
		s.AlternateOffered = true
		s.RecognitionStep = 1
		e.logger.Printf("[ENGINE] Alternate offer for %s: %s", s.ID, alternate)

		step := e.recognitionStep(s)
		step.GapFraming = true
		step.AlternateOffer = true
		return NextAction{
			Type:           ActionRecognition,
			Recognition:    step,
			Acknowledgment: "Fair. Let me try the other reading of you.",
		}, nil
	}

	// First correction: re-present the same step with gap framing.
	step := e.recognitionStep(s)
	step.GapFraming = true
	return NextAction{
		Type:           ActionRecognition,
		Recognition:    step,
		Acknowledgment: "Noted. Here it is with that correction held.",
	}, nil
}

func (e *Engine) recognitionStep(s *store.Session) *RecognitionStep {
	primary := taxonomy.Archetype(s.PrimaryArchetype)
	profile := e.catalog.Profiles[primary]

	step := &RecognitionStep{Step: s.RecognitionStep}
	switch s.RecognitionStep {
	case 1:
		step.Behavioral = e.behavioralText(s)
	case 2:
		step.WorldImpact = profile.WorldImpact
	case 3:
		step.ArchetypeName = primary.Label()
		if s.SecondaryArchetype != "" {
			step.SecondaryName = taxonomy.Archetype(s.SecondaryArchetype).Label()
		}
	}
	return step
}

func (e *Engine) behavioralText(s *store.Session) string {
	profile := e.catalog.Profiles[taxonomy.Archetype(s.PrimaryArchetype)]
	text := profile.Behavioral

	if s.SecondaryArchetype != "" {
		secondary := taxonomy.Archetype(s.SecondaryArchetype)
		secondaryProfile := e.catalog.Profiles[secondary]
		first := secondaryProfile.Behavioral
		if idx := strings.Index(first, "."); idx > 0 {
			first = first[:idx]
		}
		text += "\n\nYou also show up as " + secondary.Label() + " - " + strings.ToLower(first) + "."
	}
	return text
}

// --- Delivery ---

func (e *Engine) deliver(s *store.Session) NextAction {
	result := synth.Synthesize(s, e.catalog)
	s.Phase = store.PhaseDelivery
	s.Status = store.StatusComplete
	s.PendingQuestionID = ""
	e.logger.Printf("[ENGINE] Delivered %s: %s / %s / %s (blended=%v low_confidence=%v)",
		s.ID, result.Primary, result.Domain, result.Scale, result.IsBlended, result.LowConfidence)

	return NextAction{Type: ActionResult, Result: result}
}

// --- Helpers ---

func (e *Engine) rankArchetypes(s *store.Session) rank.Ranking {
	return rank.Rank(s.ArchetypeTally, taxonomy.ArchetypeKeys(), s.TotalWeight, e.catalog.ConfusedPairs, e.catalog.Thresholds)
}

func (e *Engine) resolvePrimary(s *store.Session, r rank.Ranking) {
	s.PrimaryArchetype = r.Primary
	s.SecondaryArchetype = ""
	gap := r.PrimaryScore - r.SecondaryScore
	if r.SecondaryScore > 0 && gap > 0 && gap <= e.catalog.Thresholds.ClearGap {
		s.SecondaryArchetype = r.Secondary
	}
}

// nextBest returns the strongest archetype that is not the current
// primary, for the alternate offer.
func (e *Engine) nextBest(s *store.Session) string {
	if s.SecondaryArchetype != "" && s.SecondaryArchetype != s.PrimaryArchetype {
		return s.SecondaryArchetype
	}
	best := ""
	bestScore := 0.0
	for _, member := range taxonomy.ArchetypeKeys() {
		if member == s.PrimaryArchetype {
			continue
		}
		if score := s.ArchetypeTally[member]; score > bestScore {
			best = member
			bestScore = score
		}
	}
	return best
}

func (e *Engine) rapidAnswered(s *store.Session) int {
	count := 0
	for _, q := range e.catalog.Rapid {
		if s.HasAnswered(q.ID) {
			count++
		}
	}
	return count
}

func clarify(q *catalog.Question, message string) NextAction {
	return NextAction{Type: ActionClarification, Question: q, Message: message}
}
