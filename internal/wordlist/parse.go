package wordlist

import "strings"

// Parse splits newline-delimited text into words. Blank lines, including the
// one produced by a trailing newline, are not words.
func Parse(text string) []string {
	lines := strings.Split(text, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}
