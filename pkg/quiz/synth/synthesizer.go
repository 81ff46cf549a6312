package synth

import (
	"strings"

	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/rank"
	"archetype-quiz-be/pkg/quiz/taxonomy"
	"archetype-quiz-be/pkg/store"
)

// Result is the final structured classification. It carries no
// presentation formatting; the rendering layer (and the optional LLM
// enrichment behind it) works from these fields alone. Domain and scale
// are never empty: documented defaults fill genuinely signal-free axes.
type Result struct {
	Primary        string  `json:"primary"`
	PrimaryLabel   string  `json:"primary_label"`
	Secondary      string  `json:"secondary,omitempty"`
	SecondaryLabel string  `json:"secondary_label,omitempty"`
	Domain         string  `json:"domain"`
	DomainLabel    string  `json:"domain_label"`
	Subdomain      string  `json:"subdomain,omitempty"`
	Scale          string  `json:"scale"`
	ScaleLabel     string  `json:"scale_label"`
	IsBlended      bool    `json:"is_blended"`
	Confidence     float64 `json:"confidence"`
	Level          string  `json:"level"`

	// LowConfidence marks the honest-close outcome: the disambiguation
	// budget is exhausted and both leading candidates are reported
	// instead of forcing a single label.
	LowConfidence bool     `json:"low_confidence"`
	Candidates    []string `json:"candidates,omitempty"`

	// Static narrative blocks for the primary archetype.
	Behavioral  string `json:"behavioral"`
	WorldImpact string `json:"world_impact"`
	Pairing     string `json:"pairing"`

	// PodKey groups identical patterns (ARCHETYPE__DOMAIN__SCALE).
	PodKey string `json:"pod_key"`

	// Full tallies for telemetry and debugging.
	Scores map[string]map[string]float64 `json:"scores"`
}

// Synthesize assembles the final classification from the session.
// Deterministic: identical sessions produce identical results.
func Synthesize(s *store.Session, c *catalog.Catalog) *Result {
	th := c.Thresholds

	archRank := rank.Rank(s.ArchetypeTally, taxonomy.ArchetypeKeys(), s.TotalWeight, nil, th)

	primary := s.PrimaryArchetype
	if primary == "" {
		primary = archRank.Primary
	}
	if primary == "" {
		primary = string(c.DefaultArchetype)
	}

	// Blend uses a fraction of total signal, deliberately more lenient
	// than the clear-signal gap: a blended result is still delivered,
	// just annotated.
	totalSignal := 0.0
	for _, score := range s.ArchetypeTally {
		totalSignal += score
	}
	primaryScore := s.ArchetypeTally[primary]
	secondary, secondaryScore := runnerUp(s, primary)
	isBlended := false
	if totalSignal > 0 && secondaryScore > 0 {
		isBlended = (primaryScore-secondaryScore)/totalSignal <= th.BlendFraction
	}
	if !isBlended {
		secondary = ""
	}

	domain := s.Domain
	if domain == "" {
		domainRank := rank.Rank(s.DomainTally, taxonomy.DomainKeys(), 0, nil, th)
		if domainRank.PrimaryScore > 0 {
			domain = domainRank.Primary
		} else {
			domain = string(c.DefaultDomain)
		}
	}

	scale := s.Scale
	if scale == "" {
		scaleRank := rank.Rank(s.ScaleTally, taxonomy.ScaleKeys(), 0, nil, th)
		if scaleRank.PrimaryScore > 0 {
			scale = scaleRank.Primary
		} else {
			scale = string(c.DefaultScale)
		}
	}

	profile := c.Profiles[taxonomy.Archetype(primary)]

	res := &Result{
		Primary:      primary,
		PrimaryLabel: taxonomy.Archetype(primary).Label(),
		Domain:       domain,
		DomainLabel:  taxonomy.Domain(domain).Label(),
		Subdomain:    s.Subdomain,
		Scale:        scale,
		ScaleLabel:   taxonomy.Scale(scale).Label(),
		IsBlended:    isBlended,
		Confidence:   archRank.Confidence,
		Level:        string(archRank.Level),
		Behavioral:   profile.Behavioral,
		WorldImpact:  profile.WorldImpact,
		Pairing:      profile.Pairing,
		PodKey:       podKey(primary, domain, scale),
		Scores: map[string]map[string]float64{
			"archetype": copyTally(s.ArchetypeTally),
			"domain":    copyTally(s.DomainTally),
			"scale":     copyTally(s.ScaleTally),
		},
	}
	if secondary != "" {
		res.Secondary = secondary
		res.SecondaryLabel = taxonomy.Archetype(secondary).Label()
	}

	if s.LowConfidence {
		res.LowConfidence = true
		res.Candidates = []string{primary}
		if secondary != "" {
			res.Candidates = append(res.Candidates, secondary)
		} else if runner, score := runnerUp(s, primary); score > 0 {
			res.Candidates = append(res.Candidates, runner)
		}
	}

	return res
}

// runnerUp finds the best-scoring archetype other than primary, in
// declaration order for determinism.
func runnerUp(s *store.Session, primary string) (string, float64) {
	best := ""
	bestScore := 0.0
	for _, member := range taxonomy.ArchetypeKeys() {
		if member == primary {
			continue
		}
		if score := s.ArchetypeTally[member]; score > bestScore {
			best = member
			bestScore = score
		}
	}
	return best, bestScore
}

func copyTally(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func podKey(archetype, domain, scale string) string {
	key := taxonomy.Archetype(archetype).Label() + "__" +
		taxonomy.Domain(domain).Label() + "__" +
		taxonomy.Scale(scale).Label()
	return strings.ReplaceAll(key, " ", "_")
}
