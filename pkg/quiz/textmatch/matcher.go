package textmatch

import "strings"

// Keyword substring matching for free-text inference. Kept behind pure
// functions with injectable tables so the tables can be tuned (or the
// matcher replaced by a real classifier) without touching the state
// machine.

// Rule maps a keyword to a taxonomy member. Rules are ordered; the
// first matching rule wins.
type Rule struct {
	Keyword string
	Member  string
}

// BestMatch counts case-insensitive substring hits per member and
// returns the member with the most hits. Ties between members are
// broken by the supplied order so the result is deterministic. The
// boolean is false when no keyword matched at all.
func BestMatch(text string, table map[string][]string, order []string) (string, bool) {
	lower := strings.ToLower(text)

	best := ""
	bestHits := 0
	for _, member := range order {
		hits := 0
		for _, keyword := range table[member] {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				hits++
			}
		}
		if hits > bestHits {
			best = member
			bestHits = hits
		}
	}

	return best, bestHits > 0
}

// FirstMatch walks the ordered rules and returns the member of the
// first keyword contained in the text.
func FirstMatch(text string, rules []Rule) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		if strings.Contains(lower, strings.ToLower(rule.Keyword)) {
			return rule.Member, true
		}
	}
	return "", false
}

// CountMatches returns the number of table entries for the given member
// contained in the text.
func CountMatches(text string, table map[string][]string, member string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, keyword := range table[member] {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			hits++
		}
	}
	return hits
}
