package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// MaxLength truncates s to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == maxLen {
			return s[:i]
		}
		n++
	}
	return s
}

// MaxLengthFunc returns MaxLength bound to maxLen, for use in Compose.
func MaxLengthFunc(maxLen int) func(string) string {
	return func(s string) string {
		return MaxLength(s, maxLen)
	}
}

// RemoveControlChars drops control characters except newline, carriage return and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine collapses every whitespace run, line breaks included, into a
// single space and trims the result. Other control characters are removed.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(RemoveControlChars(s)), " ")
}
