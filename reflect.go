package schemafield

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// FromStruct derives a literal schema specification from a Go struct type,
// for hosts that want to declare the stored document's shape as a type
// instead of hand-writing the schema. Struct tags understood by the reflector
// (json, jsonschema) apply.
func FromStruct[T any]() (SchemaSpec, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(new(T))

	b, err := json.Marshal(schema)
	if err != nil {
		return SchemaSpec{}, err
	}

	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return SchemaSpec{}, err
	}

	return Literal(doc), nil
}
