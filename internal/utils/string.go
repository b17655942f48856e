package utils

import (
	"strings"
	"unicode"
)

// IsAlpha reports whether s is non-empty and consists only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsMultiWord reports whether s contains more than one whitespace-separated
// word.
func IsMultiWord(s string) bool {
	return len(strings.Fields(s)) > 1
}

// TitleCase uppercases the first letter of every word and lowercases the
// rest, the way rule case operators expect.
func TitleCase(s string) string {
	var sb strings.Builder
	startOfWord := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			startOfWord = true
			sb.WriteRune(r)
		case startOfWord:
			sb.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}

// CollapseWhitespace folds runs of whitespace into single spaces and trims
// the ends. Used when the engine is configured to tolerate sloppy spacing.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
