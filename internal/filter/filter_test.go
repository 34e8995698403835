package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alucardeht/wordcount/internal/constraint"
)

func mustSet(t *testing.T, raw constraint.Raw) constraint.Set {
	t.Helper()
	set, err := constraint.Validate(raw)
	require.NoError(t, err)
	return set
}

var sample = []string{"crane", "slate", "crate"}

func TestCountWithoutConstraints(t *testing.T) {
	set := mustSet(t, constraint.Raw{})

	assert.Equal(t, len(sample), Count(sample, set))
	assert.Equal(t, 0, Count(nil, set))
}

func TestCountScenarios(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		raw     constraint.Raw
		matches []string
	}{
		{
			name:    "letter at position",
			words:   sample,
			raw:     constraint.Raw{Letters: []string{"c"}, Positions: []int{0}},
			matches: []string{"crane", "crate"},
		},
		{
			name:    "substring",
			words:   sample,
			raw:     constraint.Raw{Substrings: []string{"ra"}},
			matches: []string{"crane", "crate"},
		},
		{
			name:    "two positional letters",
			words:   []string{"crane", "slate"},
			raw:     constraint.Raw{Letters: []string{"c", "a"}, Positions: []int{0, 2}},
			matches: []string{"crane"},
		},
		{
			name:    "containment",
			words:   sample,
			raw:     constraint.Raw{Letters: []string{"s", "t"}},
			matches: []string{"slate"},
		},
		{
			name:    "letters and substrings combined",
			words:   sample,
			raw:     constraint.Raw{Letters: []string{"e"}, Positions: []int{4}, Substrings: []string{"at"}},
			matches: []string{"slate", "crate"},
		},
		{
			name:    "case sensitive",
			words:   sample,
			raw:     constraint.Raw{Letters: []string{"C"}, Positions: []int{0}},
			matches: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := mustSet(t, tt.raw)

			assert.Equal(t, tt.matches, Matches(tt.words, set))
			assert.Equal(t, len(tt.matches), Count(tt.words, set))
		})
	}
}

func TestMatchLettersPositional(t *testing.T) {
	set := mustSet(t, constraint.Raw{Letters: []string{"r", "e"}, Positions: []int{1, 4}})

	assert.True(t, MatchLetters("crane", set))
	assert.False(t, MatchLetters("slate", set))
	assert.False(t, MatchLetters("cr", set), "short word must not match or panic")
}

func TestMatchLettersContainmentIgnoresMultiplicity(t *testing.T) {
	set := mustSet(t, constraint.Raw{Letters: []string{"a", "a"}})

	assert.True(t, MatchLetters("crane", set))
	assert.False(t, MatchLetters("lemon", set))
}

func TestMatchSubstrings(t *testing.T) {
	set := mustSet(t, constraint.Raw{Substrings: []string{"sl", "te"}})

	assert.True(t, MatchSubstrings("slate", set))
	assert.False(t, MatchSubstrings("crate", set))
	assert.True(t, MatchSubstrings("anything", mustSet(t, constraint.Raw{})))
}

func TestCountDoesNotMutate(t *testing.T) {
	words := []string{"crane", "slate"}
	Count(words, mustSet(t, constraint.Raw{Substrings: []string{"ane"}}))

	assert.Equal(t, []string{"crane", "slate"}, words)
}
