// Package sanitizer holds small composable helpers for cleaning user input.
//
// Helpers are plain functions so they chain through Apply or Compose:
//
//	seeds := sanitizer.Apply(raw, sanitizer.TrimStringSlice, sanitizer.FilterEmpty)
//
//	label := sanitizer.Compose(sanitizer.SingleLine, sanitizer.MaxLengthFunc(120))
//	name := label("  Aryan\n Sharma ") // "Aryan Sharma"
//
// The package is stateless and depends only on the standard library.
package sanitizer
