package taxonomy

import "testing"

func TestParseArchetype(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Archetype
		wantOK bool
	}{
		{name: "exact", raw: "steward", want: ArchetypeSteward, wantOK: true},
		{name: "upper", raw: "MAKER", want: ArchetypeMaker, wantOK: true},
		{name: "padded", raw: "  sage  ", want: ArchetypeSage, wantOK: true},
		{name: "unknown", raw: "wizard", want: "", wantOK: false},
		{name: "empty", raw: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseArchetype(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseArchetype(%q) = %q, %v, want %q, %v", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDeclarationOrder(t *testing.T) {
	// Downstream tie-breaking depends on this exact order.
	wantArchetypes := []Archetype{ArchetypeSteward, ArchetypeMaker, ArchetypeConnector, ArchetypeGuardian, ArchetypeExplorer, ArchetypeSage}
	got := Archetypes()
	if len(got) != len(wantArchetypes) {
		t.Fatalf("Archetypes() len = %d, want %d", len(got), len(wantArchetypes))
	}
	for i, a := range wantArchetypes {
		if got[i] != a {
			t.Errorf("Archetypes()[%d] = %q, want %q", i, got[i], a)
		}
	}

	if Domains()[0] != DomainHumanBeing {
		t.Errorf("Domains()[0] = %q, want %q", Domains()[0], DomainHumanBeing)
	}
	if Scales()[0] != ScaleLocal {
		t.Errorf("Scales()[0] = %q, want %q", Scales()[0], ScaleLocal)
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "archetype", got: ArchetypeSteward.Label(), want: "Steward"},
		{name: "domain two words", got: DomainHumanBeing.Label(), want: "Human Being"},
		{name: "domain ampersand", got: DomainFinance.Label(), want: "Finance & Economy"},
		{name: "scale", got: ScaleCivilizational.Label(), want: "Civilizational"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Label() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestEffectiveWeight(t *testing.T) {
	if w := (Signal{Axis: AxisArchetype, Member: "steward"}).EffectiveWeight(); w != 1 {
		t.Errorf("zero weight EffectiveWeight() = %v, want 1", w)
	}
	if w := (Signal{Axis: AxisArchetype, Member: "steward", Weight: 2}).EffectiveWeight(); w != 2 {
		t.Errorf("explicit weight EffectiveWeight() = %v, want 2", w)
	}
}
