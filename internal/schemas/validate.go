// Package schemas provides JSON Schema validation for the raw profile
// record tree before it is normalized into the typed data model.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchema []byte

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// SchemaError represents a structural schema validation failure with
// the offending field paths.
type SchemaError struct {
	Errors []FieldError
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("record does not match profile schema:\n")
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

// SchemaLoadError represents an error loading or parsing the schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load profile schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load profile schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateRecord validates a decoded record tree against the embedded
// profile schema. The tree is validated in memory; no file references
// are resolved.
func ValidateRecord(tree map[string]interface{}) error {
	schemaLoader := gojsonschema.NewBytesLoader(profileSchema)
	documentLoader := gojsonschema.NewGoLoader(tree)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Message: "schema validation failed during load", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	se := &SchemaError{}
	for _, resultErr := range result.Errors() {
		se.Errors = append(se.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return se
}
