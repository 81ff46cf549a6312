package synth

import (
	"testing"

	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/store"
)

func sessionWith(arch map[string]float64, total float64) *store.Session {
	s := store.NewSession("s1")
	for k, v := range arch {
		s.ArchetypeTally[k] = v
	}
	s.TotalWeight = total
	return s
}

func TestSynthesizeDefaults(t *testing.T) {
	c := catalog.Default()
	s := store.NewSession("s1")

	res := Synthesize(s, c)
	if res.Primary != "steward" {
		t.Errorf("Primary = %q, want steward", res.Primary)
	}
	if res.Domain != "society" {
		t.Errorf("Domain = %q, want society", res.Domain)
	}
	if res.Scale != "local" {
		t.Errorf("Scale = %q, want local", res.Scale)
	}
	if res.IsBlended {
		t.Error("IsBlended = true for empty session")
	}
	if res.PodKey != "Steward__Society__Local" {
		t.Errorf("PodKey = %q", res.PodKey)
	}
	if res.Behavioral == "" || res.WorldImpact == "" || res.Pairing == "" {
		t.Error("profile text missing")
	}
}

func TestSynthesizeBlended(t *testing.T) {
	c := catalog.Default()
	s := sessionWith(map[string]float64{"maker": 2, "explorer": 1.5, "sage": 0.5}, 4)
	s.PrimaryArchetype = "maker"

	res := Synthesize(s, c)
	if res.Primary != "maker" {
		t.Fatalf("Primary = %q, want maker", res.Primary)
	}
	// Gap 0.5 over total signal 4 is within the blend fraction.
	if !res.IsBlended {
		t.Error("IsBlended = false, want true")
	}
	if res.Secondary != "explorer" {
		t.Errorf("Secondary = %q, want explorer", res.Secondary)
	}
	if res.SecondaryLabel != "Explorer" {
		t.Errorf("SecondaryLabel = %q", res.SecondaryLabel)
	}
}

func TestSynthesizeNotBlended(t *testing.T) {
	c := catalog.Default()
	s := sessionWith(map[string]float64{"guardian": 3, "steward": 1}, 4)
	s.PrimaryArchetype = "guardian"

	res := Synthesize(s, c)
	if res.IsBlended {
		t.Error("IsBlended = true, want false")
	}
	if res.Secondary != "" {
		t.Errorf("Secondary = %q, want empty", res.Secondary)
	}
}

func TestSynthesizeResolvedFieldsWin(t *testing.T) {
	c := catalog.Default()
	s := sessionWith(map[string]float64{"sage": 3}, 3)
	s.PrimaryArchetype = "sage"
	s.Domain = "nature"
	s.Subdomain = "water"
	s.Scale = "bioregional"
	s.DomainTally["technology"] = 5 // must not override the resolved domain

	res := Synthesize(s, c)
	if res.Domain != "nature" {
		t.Errorf("Domain = %q, want nature", res.Domain)
	}
	if res.Subdomain != "water" {
		t.Errorf("Subdomain = %q, want water", res.Subdomain)
	}
	if res.Scale != "bioregional" {
		t.Errorf("Scale = %q, want bioregional", res.Scale)
	}
	if res.PodKey != "Sage__Nature__Bioregional" {
		t.Errorf("PodKey = %q", res.PodKey)
	}
}

func TestSynthesizeTallyFallback(t *testing.T) {
	c := catalog.Default()
	s := sessionWith(map[string]float64{"connector": 2}, 2)
	s.DomainTally["finance"] = 2
	s.ScaleTally["global"] = 1

	res := Synthesize(s, c)
	if res.Domain != "finance" {
		t.Errorf("Domain = %q, want finance", res.Domain)
	}
	if res.Scale != "global" {
		t.Errorf("Scale = %q, want global", res.Scale)
	}
	if res.PodKey != "Connector__Finance_&_Economy__Global" {
		t.Errorf("PodKey = %q", res.PodKey)
	}
}

func TestSynthesizeLowConfidence(t *testing.T) {
	c := catalog.Default()
	s := sessionWith(map[string]float64{"steward": 2, "guardian": 2}, 4)
	s.PrimaryArchetype = "steward"
	s.LowConfidence = true

	res := Synthesize(s, c)
	if !res.LowConfidence {
		t.Fatal("LowConfidence = false")
	}
	if len(res.Candidates) != 2 {
		t.Fatalf("Candidates = %v, want two entries", res.Candidates)
	}
	if res.Candidates[0] != "steward" || res.Candidates[1] != "guardian" {
		t.Errorf("Candidates = %v", res.Candidates)
	}
}

func TestSynthesizeScoresSnapshot(t *testing.T) {
	c := catalog.Default()
	s := sessionWith(map[string]float64{"maker": 1}, 1)

	res := Synthesize(s, c)
	res.Scores["archetype"]["maker"] = 99
	if s.ArchetypeTally["maker"] != 1 {
		t.Error("result scores alias the session tallies")
	}
}
