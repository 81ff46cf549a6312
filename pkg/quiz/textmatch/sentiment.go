package textmatch

import "strings"

// Sentiment of a free-text confirmation reply.
type Sentiment string

const (
	SentimentPositive  Sentiment = "POSITIVE"
	SentimentUncertain Sentiment = "UNCERTAIN"
	SentimentNegative  Sentiment = "NEGATIVE"
	SentimentAmbiguous Sentiment = "AMBIGUOUS"
)

// SentimentLexicon holds the fixed phrase lists used to classify a
// confirmation reply.
type SentimentLexicon struct {
	Positive  []string
	Negative  []string
	Uncertain []string
}

// ClassifySentiment applies the phrase lists in priority order:
// negative phrases dominate (a reply like "no, that doesn't fit" must
// never pass as positive), then uncertain, then positive. A reply
// matching nothing is ambiguous.
//
// Single-word phrases match on word boundaries so "no" does not fire
// inside "know"; multi-word phrases match as substrings.
func ClassifySentiment(text string, lex SentimentLexicon) Sentiment {
	lower := strings.ToLower(text)
	words := tokenize(lower)

	if matchesAny(lower, words, lex.Negative) {
		return SentimentNegative
	}
	if matchesAny(lower, words, lex.Uncertain) {
		return SentimentUncertain
	}
	if matchesAny(lower, words, lex.Positive) {
		return SentimentPositive
	}

	return SentimentAmbiguous
}

func matchesAny(lower string, words map[string]bool, phrases []string) bool {
	for _, phrase := range phrases {
		p := strings.ToLower(phrase)
		if strings.ContainsRune(p, ' ') || strings.ContainsRune(p, '\'') {
			if strings.Contains(lower, p) {
				return true
			}
			continue
		}
		if words[p] {
			return true
		}
	}
	return false
}

func tokenize(lower string) map[string]bool {
	words := map[string]bool{}
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '\'')
	}) {
		words[strings.Trim(w, "'")] = true
	}
	return words
}
