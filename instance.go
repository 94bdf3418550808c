package schemafield

// Instance is the capability the host object model must provide for
// dotted-path schema references: resolving a field or relation by name on a
// bound object. Attribute returns the named attribute's value, or an error in
// the host's own terms when the attribute does not exist. Errors returned by
// the host are propagated to the caller untouched.
type Instance interface {
	Attribute(name string) (any, error)
}

// Attributes is a map-backed Instance, for hosts that represent objects as
// plain maps and for tests. A nested Attributes value acts as a related
// object, so dotted paths can traverse it.
type Attributes map[string]any

// Attribute implements Instance. A missing key yields an
// UnresolvedReferenceError naming the segment.
func (a Attributes) Attribute(name string) (any, error) {
	v, ok := a[name]
	if !ok {
		return nil, &UnresolvedReferenceError{Segment: name, Reason: "no such attribute"}
	}
	return v, nil
}
