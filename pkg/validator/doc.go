// Package validator provides rule-based validation with translation keys.
//
// A Rule pairs a check with the error reported when it fails. Apply runs a
// set of rules and collects every failure into ValidationErrors:
//
//	err := validator.Apply(
//		validator.Integer("minLen", raw.MinLen),
//		validator.MinNum("maxLen", maxLen, 0),
//		validator.MaxNum("maxLen", maxLen, limit),
//		validator.MaxLenSlice("seeds", seeds, 200),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		for _, field := range errs.Fields() { ... }
//	}
//
// Rules capture their inputs at construction time; Check is evaluated lazily
// by Apply. Use When to make a rule conditional on an earlier result.
package validator
