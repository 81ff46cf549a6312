package catalog

import (
	"testing"

	"archetype-quiz-be/pkg/quiz/taxonomy"
)

func TestDefaultValidates(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestDefaultStructure(t *testing.T) {
	c := Default()

	if len(c.Rapid) != 3 {
		t.Fatalf("Rapid len = %d, want 3", len(c.Rapid))
	}
	for _, q := range c.Rapid {
		if len(q.Options) != 6 {
			t.Errorf("question %s has %d options, want 6", q.ID, len(q.Options))
		}
	}

	// Every confused pair needs its fork question.
	for _, pair := range c.ConfusedPairs {
		if _, ok := c.ForkForPair(pair.Key()); !ok {
			t.Errorf("no fork question for pair %s", pair.Key())
		}
	}

	// Every domain needs a subdomain menu and a profile per archetype.
	for _, d := range taxonomy.Domains() {
		if _, ok := c.Subdomains[d]; !ok {
			t.Errorf("no subdomain menu for domain %s", d)
		}
	}
	for _, a := range taxonomy.Archetypes() {
		p, ok := c.Profiles[a]
		if !ok {
			t.Errorf("no profile for archetype %s", a)
			continue
		}
		if p.Behavioral == "" || p.WorldImpact == "" || p.Pairing == "" {
			t.Errorf("incomplete profile for archetype %s", a)
		}
	}
}

func TestQuestionLookup(t *testing.T) {
	c := Default()

	tests := []struct {
		name   string
		id     string
		wantOK bool
	}{
		{name: "rapid", id: "p1_q1", wantOK: true},
		{name: "tiebreaker", id: "p1_tiebreaker", wantOK: true},
		{name: "behavior", id: "p2_q4_behavior", wantOK: true},
		{name: "scale", id: "p2_q6_scale", wantOK: true},
		{name: "fork", id: "fork_maker_explorer", wantOK: true},
		{name: "unknown", id: "nope", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := c.Question(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("Question(%q) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if ok && q.ID != tt.id {
				t.Errorf("Question(%q).ID = %q", tt.id, q.ID)
			}
		})
	}
}

func TestPairKey(t *testing.T) {
	p := Pair{A: taxonomy.ArchetypeSteward, B: taxonomy.ArchetypeGuardian}
	if got := p.Key(); got != "steward__guardian" {
		t.Errorf("Key() = %q, want %q", got, "steward__guardian")
	}
}
