package schemafield

import (
	"fmt"
	"strings"
)

// Validation error codes. The host framework keys its field-level error
// handling and message lookup on these.
const (
	// CodeInvalid marks a value that is not valid JSON. It originates in the
	// column codec, before schema validation is reached.
	CodeInvalid = "invalid"

	// CodeInvalidSchemaDefinition marks a resolved schema that is not itself
	// a valid JSON Schema document.
	CodeInvalidSchemaDefinition = "invalid_schema_definition"

	// CodeInvalidData marks a value that fails to conform to an otherwise
	// valid schema.
	CodeInvalidData = "invalid_data"
)

// DefaultMessages maps each validation error code to a fallback message
// template, used when a ValidationError carries no engine message of its own.
// Localization, if any, is layered on top of these by the host.
var DefaultMessages = map[string]string{
	CodeInvalid:                 "value must be valid JSON",
	CodeInvalidSchemaDefinition: "value must be valid JSON Schema",
	CodeInvalidData:             "value must respect the schema definition",
}

// ValidationError is the single validation failure representation handed to
// the host framework. Code identifies the failure kind; Message carries the
// validation engine's report verbatim, without wrapping or truncation.
type ValidationError struct {
	Code    string
	Message string
}

// Error implements the error interface for ValidationError. It returns the
// engine message when present, falling back to the code's default template.
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if msg, ok := DefaultMessages[e.Code]; ok {
		return msg
	}
	return e.Code
}

// UnresolvedReferenceError is returned when a dotted-path reference cannot be
// walked to a schema document: a segment names a missing attribute, an
// intermediate value cannot be traversed, or the terminal value is not a
// schema mapping.
type UnresolvedReferenceError struct {
	Path    []string
	Segment string
	Reason  string
}

// Error implements the error interface for UnresolvedReferenceError.
func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved schema reference %q at segment %q: %s", strings.Join(e.Path, "."), e.Segment, e.Reason)
}

// UnsupportedSpecError is returned by New when the schema argument is not one
// of the supported specification shapes.
type UnsupportedSpecError struct {
	Spec any
}

// Error implements the error interface for UnsupportedSpecError.
func (e *UnsupportedSpecError) Error() string {
	return fmt.Sprintf("unsupported schema specification type %T", e.Spec)
}
