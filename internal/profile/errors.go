// Package profile decodes, validates, and normalizes raw profile
// records into the typed data model.
package profile

import "fmt"

// ValidationError represents a missing required field or malformed
// value, reported with the dotted path of the offending field.
type ValidationError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error at %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error at %s: %s", e.Path, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// DecodeError represents a YAML parse failure before validation begins.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
