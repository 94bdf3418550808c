// Package schemafield provides a persisted-object field type that stores a
// JSON document and validates it against a JSON Schema at write time.
//
// The schema may be declared four ways:
//   - nothing: an empty schema, any JSON value is accepted
//   - a literal schema document (map[string]any, or a JSON text)
//   - a dotted attribute path such as "related.schema", resolved against the
//     bound instance at validation time, possibly across related objects
//   - a function computed from the bound instance
//
// The host persistence framework registers the Field as a column type, calls
// Validate (or ValidateJSON) during its save lifecycle, and reads Deconstruct
// for migration state. The host's object model plugs in through the Instance
// accessor interface, and the underlying JSON column through the Column codec
// interface.
package schemafield

// Field is a JSON column field with JSON Schema validation. The schema
// specification is fixed at declaration time; only the resolved schema varies
// per instance. A Field is immutable after New and safe for concurrent use.
type Field struct {
	spec    SchemaSpec
	checker *FormatChecker
	column  Column

	// schemaArg is the schema argument exactly as passed to New, kept for
	// Deconstruct.
	schemaArg any
}

// FieldOption is a function that configures a Field during creation.
type FieldOption func(*Field)

// WithFormatChecker pins the JSON Schema draft the field validates under.
// Without it, the draft is inferred from the resolved schema's "$schema" key,
// defaulting to the latest draft the engine supports.
func WithFormatChecker(checker *FormatChecker) FieldOption {
	return func(f *Field) {
		f.checker = checker
	}
}

// WithColumn sets the underlying JSON column codec. The field borrows it to
// decode JSON-text schema specifications and stored values consistently with
// the column's own encoder configuration.
func WithColumn(column Column) FieldOption {
	return func(f *Field) {
		f.column = column
	}
}

// New creates a field from a schema specification and optional configuration.
// The schema argument may be nil (empty schema), a map[string]any literal
// schema document, a string (parsed once: JSON text if it decodes, otherwise
// a dotted attribute-path reference), a ComputeFunc, or a prebuilt
// SchemaSpec. Any other type is an UnsupportedSpecError.
func New(schema any, opts ...FieldOption) (*Field, error) {
	f := &Field{
		column:    jsonColumn{},
		schemaArg: schema,
	}

	for _, opt := range opts {
		opt(f)
	}

	switch s := schema.(type) {
	case nil:
		f.spec = SchemaSpec{}
	case SchemaSpec:
		f.spec = s
	case map[string]any:
		f.spec = Literal(s)
	case string:
		f.spec = parseSpec(s, f.column)
	case ComputeFunc:
		f.spec = Computed(s)
	case func(Instance) (map[string]any, error):
		f.spec = Computed(s)
	default:
		return nil, &UnsupportedSpecError{Spec: schema}
	}

	return f, nil
}

// Validate checks value against the schema resolved for instance. It returns
// nil on success, a *ValidationError when the value does not conform
// (invalid_data) or the resolved schema is malformed
// (invalid_schema_definition), and the untranslated resolution error when a
// dotted-path reference or compute function fails.
func (f *Field) Validate(value any, instance Instance) error {
	schema, err := f.spec.resolve(instance)
	if err != nil {
		return err
	}
	return validateAgainstSchema(value, schema, f.checker, f.column)
}

// ValidateJSON decodes raw through the column codec and validates the result.
// Bytes that are not valid JSON fail with the column-level code "invalid"
// before schema validation is reached.
func (f *Field) ValidateJSON(raw []byte, instance Instance) error {
	var value any
	if err := f.column.Decode(raw, &value); err != nil {
		return &ValidationError{Code: CodeInvalid}
	}
	return f.Validate(value, instance)
}

// Deconstruct returns the original, pre-parsed schema argument and the format
// checker, verbatim, so the host's migration machinery can reconstruct an
// identical field.
func (f *Field) Deconstruct() (any, *FormatChecker) {
	return f.schemaArg, f.checker
}

// Spec returns the parsed schema specification.
func (f *Field) Spec() SchemaSpec {
	return f.spec
}
