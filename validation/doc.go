// Package validation checks adapter parameters and configuration before any
// traversal starts.
//
// Struct tag validation (go-playground/validator) is used for parameter
// structs; the programmatic Validator collects errors for ad hoc checks.
// Both report failures as an INVALID_INPUT *errors.AppError.
//
//	type bound struct {
//	    Count int `validate:"gte=0"`
//	}
//	err := validation.Struct(bound{Count: n})
package validation
