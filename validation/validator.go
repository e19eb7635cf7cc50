package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kbukum/viewkit/errors"
)

// FieldError is one failed check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator accumulates failed checks and reports them as a single error.
// Checks chain:
//
//	err := validation.New().Names("scenario", picked, known).Validate()
type Validator struct {
	fields []FieldError
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a failed check on field.
func (v *Validator) AddError(field, message string) {
	v.fields = append(v.fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool {
	return len(v.fields) > 0
}

// Errors returns the failed checks in the order they ran.
func (v *Validator) Errors() []FieldError {
	return v.fields
}

// Validate returns nil when every check passed, otherwise an INVALID_INPUT
// error listing each field.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}
	parts := make([]string, len(v.fields))
	for i, f := range v.fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return errors.Validation(strings.Join(parts, "; ")).WithDetail("fields", v.fields)
}

// Required rejects a blank value.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// OneOf rejects a non-empty value that is not in allowed.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value != "" && !slices.Contains(allowed, value) {
		v.AddError(field, fmt.Sprintf("%q must be one of: %s", value, strings.Join(allowed, ", ")))
	}
	return v
}

// Names checks a selection of names against the known set. Each entry must
// be non-blank, known and picked once; errors are reported as field[i].
func (v *Validator) Names(field string, names, known []string) *Validator {
	seen := make(map[string]int, len(names))
	for i, name := range names {
		at := fmt.Sprintf("%s[%d]", field, i)
		v.Required(at, name).OneOf(at, name, known)
		if first, dup := seen[name]; dup && name != "" {
			v.AddError(at, fmt.Sprintf("%q already selected at %s[%d]", name, field, first))
			continue
		}
		seen[name] = i
	}
	return v
}
