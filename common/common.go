package common

import (
	"strings"
)

// RedactArgs drops the credential flag and its value from a command line so the
// rest can be logged. Both the short (-k) and long (--api_key) spellings are
// handled, attached or detached from their value.
func RedactArgs(args []string, short, long string) []string {
	shortFlag := "-" + short
	longFlag := "--" + long
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return append(out, args[i:]...)
		case a == shortFlag || a == longFlag:
			i++ // value is the next arg
		case strings.HasPrefix(a, longFlag+"="):
		case strings.HasPrefix(a, shortFlag) && !strings.HasPrefix(a, "--"):
		default:
			out = append(out, a)
		}
	}
	return out
}
