package main

import (
	"regexp"
	"strings"

	"github.com/alucardeht/wordcount/internal/failure"
)

// multiValueFlags take every following token up to the next flag, so
// "-l c a -p 0 2" reads as two letters and two positions.
var multiValueFlags = map[string]string{
	"-l":           "--letters",
	"--letters":    "--letters",
	"-p":           "--positions",
	"--positions":  "--positions",
	"-s":           "--substrings",
	"--substrings": "--substrings",
}

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

func isFlag(token string) bool {
	return strings.HasPrefix(token, "-") && token != "-" && !negativeNumber.MatchString(token)
}

// normalizeArgs rewrites "-l c a" into "--letters c --letters a" so the
// repeated-flag form can be handed to pflag.
func normalizeArgs(args []string) ([]string, error) {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		token := args[i]
		if token == "--" {
			out = append(out, args[i:]...)
			break
		}

		long, ok := multiValueFlags[token]
		if !ok {
			out = append(out, token)
			continue
		}

		values := 0
		for i+1 < len(args) && !isFlag(args[i+1]) {
			i++
			out = append(out, long, args[i])
			values++
		}
		if values == 0 {
			return nil, failure.InvalidArgument("argument %s: expected at least one argument", token)
		}
	}

	return out, nil
}
