package engine

import (
	"math"
	"strings"
	"unicode/utf8"
)

// tokenDivisor is the chars-per-token (and tokens-per-word) proxy the
// mock uses everywhere. It is NOT a tokenizer: real token counts depend
// on the model vocabulary. The divisor is isolated here so a real
// tokenizer can replace these functions without touching call sites.
const tokenDivisor = 1.3

// EstimateTokens approximates the token count of a string as
// ceil(chars/1.3), counting runes so non-ASCII text is not inflated by
// its byte length. Both prompt and response accounting use this.
func EstimateTokens(s string) int {
	return int(math.Ceil(float64(utf8.RuneCountInString(s)) / tokenDivisor))
}

// WordBudget converts a max-token limit to an approximate word budget,
// floor(maxTokens/1.3).
func WordBudget(maxTokens int) int {
	return int(math.Floor(float64(maxTokens) / tokenDivisor))
}

// TruncateWords keeps at most budget words of s, appending an ellipsis
// when anything was cut. Returns the (possibly shortened) text and
// whether truncation occurred.
func TruncateWords(s string, budget int) (string, bool) {
	words := strings.Fields(s)
	if len(words) <= budget {
		return s, false
	}
	if budget < 0 {
		budget = 0
	}
	return strings.Join(words[:budget], " ") + "...", true
}
