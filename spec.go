package schemafield

import "strings"

// ComputeFunc builds a schema document from the bound instance at validation
// time.
type ComputeFunc func(instance Instance) (map[string]any, error)

type specKind int

const (
	specEmpty specKind = iota
	specLiteral
	specReference
	specComputed
)

// SchemaSpec is a schema specification, fixed at field declaration time. It is
// one of four shapes: empty (any JSON value is accepted), a literal schema
// document, a dotted attribute-path reference resolved against the bound
// instance, or a function computed from the instance. The zero value is the
// empty spec.
type SchemaSpec struct {
	kind    specKind
	literal map[string]any
	path    []string
	compute ComputeFunc

	// source is the original, pre-parsed specification value, kept verbatim
	// for Deconstruct.
	source any
}

// Literal returns a spec holding the given schema document. The document is
// shared, not copied; it must not be mutated after field declaration.
func Literal(schema map[string]any) SchemaSpec {
	return SchemaSpec{kind: specLiteral, literal: schema, source: schema}
}

// Reference returns a spec addressing a schema document through a dotted
// attribute path, e.g. "related.schema" reads attribute "related" from the
// instance and then "schema" from the result.
func Reference(path string) SchemaSpec {
	return SchemaSpec{kind: specReference, path: strings.Split(path, "."), source: path}
}

// Computed returns a spec whose schema document is produced by fn from the
// bound instance on every validation.
func Computed(fn ComputeFunc) SchemaSpec {
	return SchemaSpec{kind: specComputed, compute: fn, source: fn}
}

// parseSpec turns a string specification into a spec, deciding once at
// declaration time: if the string decodes as a JSON document through the
// column codec it is a literal schema, otherwise the whole string is a dotted
// attribute-path reference.
func parseSpec(source string, column Column) SchemaSpec {
	var schema map[string]any
	if err := column.Decode([]byte(source), &schema); err != nil {
		spec := Reference(source)
		spec.source = source
		return spec
	}
	spec := Literal(schema)
	spec.source = source
	return spec
}

// resolve produces the concrete schema document for one instance. Literal
// specs come back unchanged and shared; references are walked attribute by
// attribute and yield whatever the final attribute holds; computed specs are
// invoked with the instance. Errors from the host's attribute accessor or
// from a compute function propagate untouched. A reference that resolves to
// something other than a schema document is not rejected here; the validation
// engine reports it as a malformed schema.
func (s SchemaSpec) resolve(instance Instance) (any, error) {
	switch s.kind {
	case specLiteral:
		return s.literal, nil
	case specReference:
		return s.walk(instance)
	case specComputed:
		return s.compute(instance)
	default:
		return map[string]any{}, nil
	}
}

func (s SchemaSpec) walk(instance Instance) (any, error) {
	var current any = instance
	for _, segment := range s.path {
		obj, ok := current.(Instance)
		if !ok {
			return nil, &UnresolvedReferenceError{Path: s.path, Segment: segment, Reason: "value is not traversable"}
		}
		v, err := obj.Attribute(segment)
		if err != nil {
			return nil, err
		}
		current = v
	}
	return current, nil
}
