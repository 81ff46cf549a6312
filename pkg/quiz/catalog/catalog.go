package catalog

import (
	"fmt"

	"archetype-quiz-be/pkg/quiz/taxonomy"
	"archetype-quiz-be/pkg/quiz/textmatch"
)

// InputKind of a question.
type InputKind string

const (
	InputChoice   InputKind = "choice"
	InputFreeText InputKind = "free_text"
)

// Option is one selectable answer. ID is a single letter; only the
// leading character of user input is matched against it.
type Option struct {
	ID      string            `json:"id"`
	Text    string            `json:"text"`
	Signals []taxonomy.Signal `json:"signals,omitempty"`
}

// Question is an immutable configuration record.
type Question struct {
	ID      string    `json:"id"`
	Phase   string    `json:"phase"`
	Kind    InputKind `json:"kind"`
	Prompt  string    `json:"prompt"`
	Weight  float64   `json:"weight,omitempty"` // 0 means 1
	Options []Option  `json:"options,omitempty"`
}

// EffectiveWeight resolves the default question weight of 1.
func (q *Question) EffectiveWeight() float64 {
	if q.Weight == 0 {
		return 1
	}
	return q.Weight
}

// Option looks up an option by its letter id (already lowercased).
func (q *Question) Option(id string) (*Option, bool) {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i], true
		}
	}
	return nil, false
}

// Pair is a combination of archetypes known to be easily confused.
type Pair struct {
	A taxonomy.Archetype `json:"a"`
	B taxonomy.Archetype `json:"b"`
}

// Key is the stable identifier of the pair (declaration order of A/B).
func (p Pair) Key() string {
	return string(p.A) + "__" + string(p.B)
}

// SubdomainOption is one entry of a subdomain menu.
type SubdomainOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// SubdomainMenu is the per-domain follow-up menu asked at the end of
// refinement.
type SubdomainMenu struct {
	Prompt  string            `json:"prompt"`
	Options []SubdomainOption `json:"options"`
}

// Profile holds the static narrative text for an archetype. The
// presentation layer may rephrase it; the core delivers it as-is.
type Profile struct {
	Behavioral  string `json:"behavioral"`
	WorldImpact string `json:"world_impact"`
	Pairing     string `json:"pairing"`
}

// Thresholds are the tunable knobs of the confidence engine. They are
// configuration, not constants; Default() documents the chosen values.
type Thresholds struct {
	// Clear signal: top score >= ClearTopScore and (top-second) >= ClearGap.
	ClearTopScore float64 `json:"clear_top_score"`
	ClearGap      float64 `json:"clear_gap"`

	// Confused pair needs a fork when both members are within PairGap
	// of each other and their combined score is at least PairFloor.
	PairGap   float64 `json:"pair_gap"`
	PairFloor float64 `json:"pair_floor"`

	// Blend: (top-second)/total <= BlendFraction. Intentionally more
	// lenient than the clear-signal gap; a blended result is delivered,
	// just annotated.
	BlendFraction float64 `json:"blend_fraction"`

	// Confidence tiers over top/total.
	StrongConfidence   float64 `json:"strong_confidence"`
	ModerateConfidence float64 `json:"moderate_confidence"`

	MaxForkRounds  int `json:"max_fork_rounds"`
	MaxCorrections int `json:"max_corrections"`
}

// DefaultThresholds returns the documented default tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ClearTopScore:      2,
		ClearGap:           1,
		PairGap:            1,
		PairFloor:          2,
		BlendFraction:      0.25,
		StrongConfidence:   0.70,
		ModerateConfidence: 0.55,
		MaxForkRounds:      2,
		MaxCorrections:     2,
	}
}

// Catalog is the full static configuration: question bank, keyword
// tables, phrase lists, profiles and thresholds. Loaded once at process
// start; the engine treats it as read-only.
type Catalog struct {
	Rapid         []Question
	Tiebreaker    Question
	Behavior      Question
	Scale         Question
	DomainClarify Question
	Forks         map[string]Question // keyed by Pair.Key()

	Subdomains map[taxonomy.Domain]SubdomainMenu

	DomainKeywords        map[string][]string
	DomainClarifyKeywords []textmatch.Rule
	ArchetypeVerbs        map[string][]string
	Sentiment             textmatch.SentimentLexicon
	ConfusedPairs         []Pair

	Profiles map[taxonomy.Archetype]Profile

	DefaultArchetype taxonomy.Archetype
	DefaultDomain    taxonomy.Domain
	DefaultScale     taxonomy.Scale

	Thresholds Thresholds

	byID map[string]*Question
}

// Question resolves any question (rapid, tiebreaker, refinement, fork)
// by id.
func (c *Catalog) Question(id string) (*Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// ForkForPair returns the forced-choice question configured for the pair.
func (c *Catalog) ForkForPair(key string) (*Question, bool) {
	q, ok := c.Forks[key]
	if !ok {
		return nil, false
	}
	return &q, true
}

// TotalQuestions is the nominal question count used for progress
// reporting: the rapid batch plus the two fixed refinement questions.
func (c *Catalog) TotalQuestions() int {
	return len(c.Rapid) + 2
}

func (c *Catalog) index() {
	c.byID = make(map[string]*Question)
	for i := range c.Rapid {
		c.byID[c.Rapid[i].ID] = &c.Rapid[i]
	}
	c.byID[c.Tiebreaker.ID] = &c.Tiebreaker
	c.byID[c.Behavior.ID] = &c.Behavior
	c.byID[c.Scale.ID] = &c.Scale
	c.byID[c.DomainClarify.ID] = &c.DomainClarify
	for key := range c.Forks {
		q := c.Forks[key]
		c.byID[q.ID] = &q
	}
}

// Validate checks the internal consistency of the catalog: unique
// question ids, signals referencing real taxonomy members, a fork
// question for every confused pair, a profile for every archetype.
func (c *Catalog) Validate() error {
	seen := map[string]bool{}
	check := func(q Question) error {
		if q.ID == "" {
			return fmt.Errorf("question with empty id (%q)", q.Prompt)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if q.Kind == InputChoice && len(q.Options) < 2 {
			return fmt.Errorf("choice question %q has %d options", q.ID, len(q.Options))
		}
		for _, opt := range q.Options {
			for _, sig := range opt.Signals {
				if err := validateSignal(sig); err != nil {
					return fmt.Errorf("question %q option %q: %w", q.ID, opt.ID, err)
				}
			}
		}
		return nil
	}

	for _, q := range c.Rapid {
		if err := check(q); err != nil {
			return err
		}
	}
	for _, q := range []Question{c.Tiebreaker, c.Behavior, c.Scale, c.DomainClarify} {
		if err := check(q); err != nil {
			return err
		}
	}
	for _, pair := range c.ConfusedPairs {
		q, ok := c.Forks[pair.Key()]
		if !ok {
			return fmt.Errorf("no fork question for pair %s", pair.Key())
		}
		if err := check(q); err != nil {
			return err
		}
	}
	for _, a := range taxonomy.Archetypes() {
		if _, ok := c.Profiles[a]; !ok {
			return fmt.Errorf("no profile for archetype %s", a)
		}
	}
	for _, d := range taxonomy.Domains() {
		if _, ok := c.Subdomains[d]; !ok {
			return fmt.Errorf("no subdomain menu for domain %s", d)
		}
	}
	return nil
}

func validateSignal(sig taxonomy.Signal) error {
	switch sig.Axis {
	case taxonomy.AxisArchetype:
		if _, ok := taxonomy.ParseArchetype(sig.Member); !ok {
			return fmt.Errorf("unknown archetype %q", sig.Member)
		}
	case taxonomy.AxisDomain:
		if _, ok := taxonomy.ParseDomain(sig.Member); !ok {
			return fmt.Errorf("unknown domain %q", sig.Member)
		}
	case taxonomy.AxisScale:
		if _, ok := taxonomy.ParseScale(sig.Member); !ok {
			return fmt.Errorf("unknown scale %q", sig.Member)
		}
	default:
		return fmt.Errorf("unknown axis %q", sig.Axis)
	}
	if sig.Weight < 0 {
		return fmt.Errorf("negative weight %v", sig.Weight)
	}
	return nil
}
