package wordlist

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// leetMap is a one-to-one substitution table; unlisted runes pass through.
var leetMap = map[rune]rune{
	'a': '@', 'A': '@',
	'e': '3', 'E': '3',
	'i': '1', 'I': '1',
	'o': '0', 'O': '0',
	's': '$', 'S': '$',
	't': '7', 'T': '7',
}

// Leet replaces a, e, i, o, s and t (any case) with @, 3, 1, 0, $ and 7.
func Leet(s string) string {
	return strings.Map(func(r rune) rune {
		if l, ok := leetMap[r]; ok {
			return l
		}
		return r
	}, s)
}

// Capitalize upper-cases the first rune and lower-cases the rest,
// so "mcDonald" becomes "Mcdonald".
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ToggleCase alternates rune case by position. With startUpper false even
// positions are lower-cased and odd ones upper-cased ("aRyAn"); with
// startUpper true the parity is swapped ("ArYaN").
func ToggleCase(s string, startUpper bool) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for _, r := range s {
		if (i%2 == 0) == startUpper {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		i++
	}
	return b.String()
}
