// Package errors provides the structured error type used across viewkit.
// Every error carries a machine-readable code so callers can tell a static
// composition mistake (a missing capability) from bad input or bad
// configuration without string matching.
package errors
