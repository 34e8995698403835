package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alucardeht/wordcount/internal/failure"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "short flags",
			args: []string{"-l", "c", "a", "-p", "0", "2"},
			want: []string{"--letters", "c", "--letters", "a", "--positions", "0", "--positions", "2"},
		},
		{
			name: "long flags mixed with others",
			args: []string{"--substrings", "ra", "te", "--show-matches"},
			want: []string{"--substrings", "ra", "--substrings", "te", "--show-matches"},
		},
		{
			name: "negative position stays a value",
			args: []string{"-l", "a", "-p", "-1"},
			want: []string{"--letters", "a", "--positions", "-1"},
		},
		{
			name: "equals form untouched",
			args: []string{"--letters=a", "--source", "words.txt"},
			want: []string{"--letters=a", "--source", "words.txt"},
		},
		{
			name: "subcommand first",
			args: []string{"watch", "-s", "ra"},
			want: []string{"watch", "--substrings", "ra"},
		},
		{
			name: "double dash stops rewriting",
			args: []string{"-s", "ra", "--", "-l", "a"},
			want: []string{"--substrings", "ra", "--", "-l", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeArgsMissingValue(t *testing.T) {
	for _, args := range [][]string{
		{"-l"},
		{"-l", "--show-matches"},
		{"--positions", "-s", "ra"},
	} {
		_, err := normalizeArgs(args)
		require.Error(t, err, "%v", args)
		assert.True(t, failure.IsKind(err, failure.KindInvalidArgument))
		assert.Contains(t, err.Error(), "expected at least one argument")
	}
}
