package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// MinNum requires value >= min.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return newRule(field, "validation.min", fmt.Sprintf("must be at least %v", min),
		func() bool { return value >= min },
		map[string]any{"min": min})
}

// MaxNum requires value <= max.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return newRule(field, "validation.max", fmt.Sprintf("must be at most %v", max),
		func() bool { return value <= max },
		map[string]any{"max": max})
}

// NotGreaterThanField requires value <= other, where other is the value of
// the field named otherField.
func NotGreaterThanField[T Numeric](field string, value T, otherField string, other T) Rule {
	return newRule(field, "validation.lte_field", "must not exceed "+otherField,
		func() bool { return value <= other },
		map[string]any{"other": otherField})
}

// Integer requires a non-blank value to parse as a base-10 integer.
// Blank values pass.
func Integer(field, value string) Rule {
	return newRule(field, "validation.integer", "must be a whole number",
		func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			_, err := strconv.Atoi(v)
			return err == nil
		}, nil)
}
