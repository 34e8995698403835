package filter

import (
	"strings"

	"github.com/alucardeht/wordcount/internal/constraint"
)

// MatchLetters reports whether word satisfies the letter constraints of set.
// With positions every letter must sit at its paired index; without them each
// letter only has to occur somewhere in the word, regardless of how often.
func MatchLetters(word string, set constraint.Set) bool {
	if !set.HasLetters() {
		return true
	}

	letters := set.Letters()
	if set.HasPositions() {
		runes := []rune(word)
		for i, p := range set.Positions() {
			if p >= len(runes) || runes[p] != letters[i] {
				return false
			}
		}
		return true
	}

	for _, l := range letters {
		if !strings.ContainsRune(word, l) {
			return false
		}
	}
	return true
}

func MatchSubstrings(word string, set constraint.Set) bool {
	for _, s := range set.Substrings() {
		if !strings.Contains(word, s) {
			return false
		}
	}
	return true
}

func Match(word string, set constraint.Set) bool {
	return MatchLetters(word, set) && MatchSubstrings(word, set)
}

// Count evaluates every word exactly once and returns how many match.
func Count(words []string, set constraint.Set) int {
	count := 0
	for _, w := range words {
		if Match(w, set) {
			count++
		}
	}
	return count
}

// Matches returns the matching words in list order.
func Matches(words []string, set constraint.Set) []string {
	matched := make([]string, 0)
	for _, w := range words {
		if Match(w, set) {
			matched = append(matched, w)
		}
	}
	return matched
}
