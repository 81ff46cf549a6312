package tally

import (
	"errors"
	"strings"
	"unicode"

	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/taxonomy"
	"archetype-quiz-be/pkg/quiz/textmatch"
	"archetype-quiz-be/pkg/store"
)

// ErrDuplicateAnswer means the same question id was tallied twice. The
// phase machine's bookkeeping should make this impossible; it is a
// programming error, not a user error.
var ErrDuplicateAnswer = errors.New("tally: question already answered")

// Result of applying one answer.
type Result struct {
	// Applied is false when the input could not be matched to an
	// option. The session is untouched and the question stays pending.
	Applied bool

	// Clarification is the non-fatal message to show when Applied is
	// false.
	Clarification string

	// Option is the matched option for choice answers.
	Option *catalog.Option

	// InferredDomain is set when free-text inference contributed a
	// domain signal.
	InferredDomain string

	// InferredArchetype is set when free-text verb matching contributed
	// an archetype signal (fallback only, see ApplyFreeText).
	InferredArchetype string
}

// ApplyChoice matches the input against the question's options and adds
// every declared signal, weighted by the question multiplier, to the
// session's tallies. One option may score archetype, domain and scale
// in the same call.
//
// Only the leading character of the input is authoritative: clients may
// send "b", "B" or "b) full option text", and option prose can contain
// stray letters that must not trigger a different match.
func ApplyChoice(s *store.Session, q *catalog.Question, input string) (Result, error) {
	if s.HasAnswered(q.ID) {
		return Result{}, ErrDuplicateAnswer
	}

	letter := leadingLetter(input)
	if letter == "" {
		return Result{Clarification: clarificationFor(q)}, nil
	}

	opt, ok := q.Option(letter)
	if !ok {
		return Result{Clarification: clarificationFor(q)}, nil
	}

	questionWeight := q.EffectiveWeight()
	countsForConfidence := false
	for _, sig := range opt.Signals {
		w := sig.EffectiveWeight() * questionWeight
		switch sig.Axis {
		case taxonomy.AxisArchetype:
			s.ArchetypeTally[sig.Member] += w
			countsForConfidence = true
		case taxonomy.AxisDomain:
			s.DomainTally[sig.Member] += w
		case taxonomy.AxisScale:
			s.ScaleTally[sig.Member] += w
		}
	}
	if countsForConfidence {
		s.TotalWeight += questionWeight
	}

	s.RecordAnswer(q.ID, input, opt.ID)
	return Result{Applied: true, Option: opt}, nil
}

// ApplyFreeText records a free-text answer and opportunistically infers
// signal from it: a domain keyword match adds a domain signal, and,
// only when no primary archetype is resolved yet, a verb match adds an
// archetype signal. Inference never overrides an already-resolved
// field; it only contributes tally weight that resolution can use.
func ApplyFreeText(s *store.Session, q *catalog.Question, text string, c *catalog.Catalog) (Result, error) {
	if s.HasAnswered(q.ID) {
		return Result{}, ErrDuplicateAnswer
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{Clarification: "A sentence or two is all it takes."}, nil
	}

	res := Result{Applied: true}

	if s.Domain == "" {
		if member, ok := textmatch.BestMatch(trimmed, c.DomainKeywords, taxonomy.DomainKeys()); ok {
			s.DomainTally[member]++
			res.InferredDomain = member
		}
	}
	if s.PrimaryArchetype == "" {
		if member, hits := bestVerbMatch(trimmed, c.ArchetypeVerbs); hits > 0 {
			s.ArchetypeTally[member]++
			res.InferredArchetype = member
		}
	}

	s.RecordAnswer(q.ID, trimmed, "")
	return res, nil
}

// bestVerbMatch returns the archetype whose verb list has the most hits.
func bestVerbMatch(text string, verbs map[string][]string) (string, int) {
	best := ""
	bestHits := 0
	for _, member := range taxonomy.ArchetypeKeys() {
		hits := textmatch.CountMatches(text, verbs, member)
		if hits > bestHits {
			best = member
			bestHits = hits
		}
	}
	return best, bestHits
}

// leadingLetter extracts the first letter or digit of the input,
// lowercased. Everything after it is display text.
func leadingLetter(input string) string {
	for _, r := range strings.TrimSpace(input) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return strings.ToLower(string(r))
		}
		return ""
	}
	return ""
}

func clarificationFor(q *catalog.Question) string {
	letters := make([]string, len(q.Options))
	for i, opt := range q.Options {
		letters[i] = strings.ToUpper(opt.ID)
	}
	if len(letters) == 2 {
		return "Just the letter is fine - " + letters[0] + " or " + letters[1] + "."
	}
	return "Just the letter is fine - " + strings.Join(letters[:len(letters)-1], ", ") + ", or " + letters[len(letters)-1] + "."
}
