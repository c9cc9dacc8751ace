package rendering

import "fmt"

// UnknownSectionError reports a section identifier in the configured
// order with no registered renderer and no matching custom section.
// This is a configuration error and aborts generation; silently
// skipping it would hide typos in user configuration.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section %q in section_order: no renderer is registered for it", e.Section)
}

// RenderError represents a general rendering failure.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
