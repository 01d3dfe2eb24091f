// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"
	"strings"
)

// listFlags maps every spelling of a greedy numeric-list flag to its long name.
// "--guessees" is the historical spelling and stays accepted.
var listFlags = map[string]string{
	"-c":             flagCoefficients,
	"--coefficients": flagCoefficients,
	"-g":             flagGuesses,
	"--guesses":      flagGuesses,
	"--guessees":     flagGuesses,
}

// NormalizeArgs folds greedy numeric lists into single flag tokens so that
// negative numbers are not mistaken for shorthand flags:
//
//	-c 5 -3 -4 1 -e 0.001  →  --coefficients=5,-3,-4,1 -e 0.001
//
// A list ends at the first token that does not parse as a float. Everything
// after a literal "--" is passed through untouched. A list flag with no
// numbers after it is dropped.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if rest, ok := strings.CutPrefix(arg, "--guessees="); ok {
			out = append(out, "--"+flagGuesses+"="+rest)
			continue
		}

		name, ok := listFlags[arg]
		if !ok {
			out = append(out, arg)
			continue
		}

		var values []string
		for i+1 < len(args) && isNumber(args[i+1]) {
			i++
			values = append(values, args[i])
		}
		if len(values) == 0 {
			continue // an empty list is the same as no list
		}
		out = append(out, "--"+name+"="+strings.Join(values, ","))
	}

	return out
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
