package rank

import (
	"sort"

	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/textmatch"
)

// Level is the three-tier confidence classification.
type Level string

const (
	LevelStrong   Level = "STRONG"
	LevelModerate Level = "MODERATE"
	LevelWeak     Level = "WEAK"
)

// Ranking is the derived view over one taxonomy's tally. It never
// carries an error: absence of signal is simply reported as weak
// confidence and the caller decides what to do.
type Ranking struct {
	Primary        string
	PrimaryScore   float64
	Secondary      string
	SecondaryScore float64

	IsTie   bool
	IsClear bool

	// Confidence is top score over total accumulated weight (0 when no
	// weight has accumulated).
	Confidence float64
	Level      Level

	// NeededPairs lists the confused pairs that still require a
	// dedicated forced-choice disambiguation.
	NeededPairs []catalog.Pair
}

// Rank sorts the tally descending by score. Ties are broken by the
// supplied member order (taxonomy declaration order), which makes the
// result deterministic; an exact tie is additionally flagged rather
// than silently resolved.
func Rank(tally map[string]float64, order []string, total float64, pairs []catalog.Pair, th catalog.Thresholds) Ranking {
	type entry struct {
		member string
		score  float64
		pos    int
	}

	entries := make([]entry, 0, len(order))
	for i, member := range order {
		entries = append(entries, entry{member: member, score: tally[member], pos: i})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].pos < entries[j].pos
	})

	r := Ranking{
		Primary:      entries[0].member,
		PrimaryScore: entries[0].score,
	}
	if len(entries) > 1 {
		r.Secondary = entries[1].member
		r.SecondaryScore = entries[1].score
		r.IsTie = entries[0].score == entries[1].score && entries[0].score > 0
	}

	gap := r.PrimaryScore - r.SecondaryScore
	r.IsClear = r.PrimaryScore >= th.ClearTopScore && gap >= th.ClearGap

	if total > 0 {
		r.Confidence = r.PrimaryScore / total
	}
	switch {
	case r.Confidence >= th.StrongConfidence:
		r.Level = LevelStrong
	case r.Confidence >= th.ModerateConfidence:
		r.Level = LevelModerate
	default:
		r.Level = LevelWeak
	}

	for _, pair := range pairs {
		a := tally[string(pair.A)]
		b := tally[string(pair.B)]
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		if diff <= th.PairGap && a+b >= th.PairFloor {
			r.NeededPairs = append(r.NeededPairs, pair)
		}
	}

	return r
}

// BreakTie resolves an exact tie from free text: the member whose verb
// list has the most matches wins; when no verb matches at all, the
// already-leading member stands.
func BreakTie(text string, verbs map[string][]string, order []string, leader string) string {
	best := leader
	bestHits := 0
	for _, member := range order {
		hits := textmatch.CountMatches(text, verbs, member)
		if hits > bestHits {
			best = member
			bestHits = hits
		}
	}
	return best
}
