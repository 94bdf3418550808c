package schemafield

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonschema"
)

// FormatChecker selects the JSON Schema draft the resolved schema is
// validated under. When a field carries no checker, the engine infers the
// draft from the schema's "$schema" key and falls back to the latest draft it
// supports.
type FormatChecker struct {
	// Draft is the dialect URI pinned onto the resolved schema's "$schema"
	// key before compilation.
	Draft string

	// AssertFormat makes "format" keywords assertive rather than
	// annotative.
	AssertFormat bool
}

// Predeclared format checkers, one per JSON Schema draft.
var (
	Draft4      = &FormatChecker{Draft: "http://json-schema.org/draft-04/schema#"}
	Draft6      = &FormatChecker{Draft: "http://json-schema.org/draft-06/schema#"}
	Draft7      = &FormatChecker{Draft: "http://json-schema.org/draft-07/schema#"}
	Draft201909 = &FormatChecker{Draft: "https://json-schema.org/draft/2019-09/schema"}
	Draft202012 = &FormatChecker{Draft: "https://json-schema.org/draft/2020-12/schema"}
)

// validateAgainstSchema checks value against an already resolved schema
// document. The schema is compiled on every call; the engine's two failure
// kinds map onto ValidationError codes: a schema that does not compile is
// invalid_schema_definition, a value that does not conform is invalid_data.
// Engine messages are preserved verbatim.
func validateAgainstSchema(value any, schema any, checker *FormatChecker, column Column) error {
	if checker != nil && checker.Draft != "" {
		if doc, ok := schema.(map[string]any); ok {
			pinned := make(map[string]any, len(doc)+1)
			for k, v := range doc {
				pinned[k] = v
			}
			pinned["$schema"] = checker.Draft
			schema = pinned
		}
	}

	raw, err := column.Encode(schema)
	if err != nil {
		return &ValidationError{Code: CodeInvalidSchemaDefinition, Message: err.Error()}
	}

	compiler := jsonschema.NewCompiler()
	if checker != nil && checker.AssertFormat {
		compiler.SetAssertFormat(true)
	}

	compiled, err := compiler.Compile(raw)
	if err != nil {
		return &ValidationError{Code: CodeInvalidSchemaDefinition, Message: err.Error()}
	}

	result := compiled.Validate(value)
	if !result.IsValid() {
		messages := make([]string, 0, len(result.Errors))
		for keyword, evalErr := range result.Errors {
			messages = append(messages, fmt.Sprintf("%s: %s", keyword, evalErr))
		}
		return &ValidationError{Code: CodeInvalidData, Message: strings.Join(messages, ", ")}
	}

	return nil
}
