package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alucardeht/wordcount/internal/failure"
)

func TestValidateEmpty(t *testing.T) {
	set, err := Validate(Raw{})
	require.NoError(t, err)

	assert.False(t, set.HasLetters())
	assert.False(t, set.HasPositions())
	assert.False(t, set.HasSubstrings())
}

func TestValidateAccepts(t *testing.T) {
	set, err := Validate(Raw{
		Letters:    []string{"c", "a"},
		Positions:  []int{0, 2},
		Substrings: []string{"ra", "crane"},
	})
	require.NoError(t, err)

	assert.Equal(t, []rune{'c', 'a'}, set.Letters())
	assert.Equal(t, []int{0, 2}, set.Positions())
	assert.Equal(t, []string{"ra", "crane"}, set.Substrings())
}

func TestValidateLettersWithoutPositions(t *testing.T) {
	set, err := Validate(Raw{Letters: []string{"é", "a", "a"}})
	require.NoError(t, err)

	assert.Equal(t, []rune{'é', 'a', 'a'}, set.Letters())
	assert.False(t, set.HasPositions())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		raw     Raw
		message string
	}{
		{"multi-character letter", Raw{Letters: []string{"ab"}}, "single character"},
		{"empty letter", Raw{Letters: []string{""}}, "single character"},
		{"length mismatch", Raw{Letters: []string{"a", "b"}, Positions: []int{0}}, "a position must be provided for each letter"},
		{"duplicate position", Raw{Letters: []string{"a", "b"}, Positions: []int{0, 0}}, "duplicate position"},
		{"duplicate position without letters", Raw{Positions: []int{0, 0}}, "letters required"},
		{"position above range", Raw{Letters: []string{"a"}, Positions: []int{5}}, "position out of range"},
		{"negative position", Raw{Letters: []string{"a"}, Positions: []int{-1}}, "position out of range"},
		{"positions without letters", Raw{Positions: []int{0}}, "letters required when positions given"},
		{"long substring", Raw{Substrings: []string{"abcdef"}}, "substring exceeds word length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.raw)
			require.Error(t, err)
			assert.True(t, failure.IsKind(err, failure.KindInvalidArgument))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateCopiesInput(t *testing.T) {
	raw := Raw{Letters: []string{"a"}, Positions: []int{1}, Substrings: []string{"x"}}
	set, err := Validate(raw)
	require.NoError(t, err)

	raw.Positions[0] = 4
	raw.Substrings[0] = "y"

	assert.Equal(t, []int{1}, set.Positions())
	assert.Equal(t, []string{"x"}, set.Substrings())
}
