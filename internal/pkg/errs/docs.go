// Package errs provides standardized error types for the shipping application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Callers classify failures with errors.Is against the sentinels, which lets
// the HTTP adapter map domain errors onto response codes without inspecting
// message strings.
package errs
