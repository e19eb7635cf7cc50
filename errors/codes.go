package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Composition errors
const (
	// ErrCodeCapabilityMissing indicates an adapter was applied to a source
	// lacking a capability the adapter requires.
	ErrCodeCapabilityMissing ErrorCode = "CAPABILITY_MISSING"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeConfig indicates configuration could not be loaded.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
