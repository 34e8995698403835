// Package constraint validates user-supplied filter arguments and turns them
// into an immutable Set.
package constraint

import (
	"unicode/utf8"

	"github.com/alucardeht/wordcount/internal/failure"
)

const (
	WordLength  = 5
	MinPosition = 0
	MaxPosition = WordLength - 1
)

// Raw holds the arguments as parsed from the command line. A nil slice means
// the argument was not given; an empty non-nil slice is treated the same way.
type Raw struct {
	Letters    []string
	Positions  []int
	Substrings []string
}

// Set is a validated constraint set. The zero value matches every word.
type Set struct {
	letters    []rune
	positions  []int
	substrings []string
}

func (s Set) Letters() []rune {
	return append([]rune(nil), s.letters...)
}

func (s Set) Positions() []int {
	return append([]int(nil), s.positions...)
}

func (s Set) Substrings() []string {
	return append([]string(nil), s.substrings...)
}

func (s Set) HasLetters() bool    { return len(s.letters) > 0 }
func (s Set) HasPositions() bool  { return len(s.positions) > 0 }
func (s Set) HasSubstrings() bool { return len(s.substrings) > 0 }

// Validate checks raw against the structural rules and returns the
// constraint set. All failures are failure.KindInvalidArgument.
func Validate(raw Raw) (Set, error) {
	var set Set

	if len(raw.Letters) > 0 {
		set.letters = make([]rune, 0, len(raw.Letters))
		for _, l := range raw.Letters {
			if utf8.RuneCountInString(l) != 1 {
				return Set{}, failure.InvalidArgument("each letter must be a single character, got %q: letters must be separated by spaces", l)
			}
			r, _ := utf8.DecodeRuneInString(l)
			set.letters = append(set.letters, r)
		}
	}

	if len(raw.Positions) > 0 {
		if len(raw.Letters) == 0 {
			return Set{}, failure.InvalidArgument("letters required when positions given")
		}
		if len(raw.Letters) != len(raw.Positions) {
			return Set{}, failure.InvalidArgument("a position must be provided for each letter: got %d letters and %d positions", len(raw.Letters), len(raw.Positions))
		}

		seen := make(map[int]bool, len(raw.Positions))
		for _, p := range raw.Positions {
			if seen[p] {
				return Set{}, failure.InvalidArgument("duplicate position: %d", p)
			}
			seen[p] = true
		}

		for _, p := range raw.Positions {
			if p < MinPosition || p > MaxPosition {
				return Set{}, failure.InvalidArgument("position out of range: %d (valid positions are %d-%d)", p, MinPosition, MaxPosition)
			}
		}

		set.positions = append([]int(nil), raw.Positions...)
	}

	if len(raw.Substrings) > 0 {
		for _, s := range raw.Substrings {
			if utf8.RuneCountInString(s) > WordLength {
				return Set{}, failure.InvalidArgument("substring exceeds word length: %q is longer than %d characters", s, WordLength)
			}
		}
		set.substrings = append([]string(nil), raw.Substrings...)
	}

	return set, nil
}
