package validator

import (
	"fmt"
	"unicode/utf8"
)

// MaxLenString counts runes, not bytes.
func MaxLenString(field, value string, max int) Rule {
	return newRule(field, "validation.max_length", fmt.Sprintf("must be at most %d characters long", max),
		func() bool { return utf8.RuneCountInString(value) <= max },
		map[string]any{"max": max})
}

func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return newRule(field, "validation.max_items", fmt.Sprintf("must have at most %d items", max),
		func() bool { return len(value) <= max },
		map[string]any{"max": max})
}
