package textmatch

import "testing"

func TestBestMatch(t *testing.T) {
	table := map[string][]string{
		"nature":     {"soil", "water", "ecosystem"},
		"technology": {"software", "code", "platform"},
	}
	order := []string{"nature", "technology"}

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "single hit", text: "I write software for a living", want: "technology", wantOK: true},
		{name: "most hits wins", text: "restoring soil and water in the ecosystem", want: "nature", wantOK: true},
		{name: "case insensitive", text: "SOIL health", want: "nature", wantOK: true},
		{name: "tie broken by order", text: "soil sensors and code", want: "nature", wantOK: true},
		{name: "no hit", text: "I like sailing", want: "", wantOK: false},
		{name: "empty text", text: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestMatch(tt.text, table, order)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("BestMatch(%q) = %q, %v, want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFirstMatch(t *testing.T) {
	rules := []Rule{
		{Keyword: "inner", Member: "human_being"},
		{Keyword: "future", Member: "vision"},
		{Keyword: "money", Member: "finance"},
	}

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "first rule", text: "mostly inner development work", want: "human_being", wantOK: true},
		{name: "rule order decides", text: "money for a shared future", want: "vision", wantOK: true},
		{name: "no rule", text: "gardening", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstMatch(tt.text, rules)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FirstMatch(%q) = %q, %v, want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCountMatches(t *testing.T) {
	table := map[string][]string{
		"steward": {"maintain", "tend", "keep"},
	}

	if got := CountMatches("I tend the garden and keep it alive", table, "steward"); got != 2 {
		t.Errorf("CountMatches = %d, want 2", got)
	}
	if got := CountMatches("nothing relevant", table, "steward"); got != 0 {
		t.Errorf("CountMatches = %d, want 0", got)
	}
	if got := CountMatches("anything", table, "unknown"); got != 0 {
		t.Errorf("CountMatches unknown member = %d, want 0", got)
	}
}
