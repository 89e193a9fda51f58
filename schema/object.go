package schema

// ObjectSchema builds a generic object response schema property by property.
// The zero value is not usable; create one with NewObject.
type ObjectSchema struct {
	base
	properties           *PropertyMap
	required             []string
	additionalProperties bool
}

// NewObject creates an empty strict object schema that rejects additional
// properties.
func NewObject(name string) *ObjectSchema {
	return &ObjectSchema{
		base:       newBase(name),
		properties: NewProperties(),
	}
}

// SetStrict sets whether the provider should reject deviations from the schema.
func (s *ObjectSchema) SetStrict(strict bool) *ObjectSchema {
	s.strict = strict
	return s
}

// AddProperty inserts or overwrites a property. An overwritten property keeps
// its original position. An empty description is omitted. When required is
// true the name is appended to the required list; repeated calls append it
// again.
func (s *ObjectSchema) AddProperty(name string, typ Type, description string, required bool, opts ...PropertyOption) *ObjectSchema {
	node := &Node{Type: typ.String(), Description: description}
	for _, opt := range opts {
		opt(node)
	}
	return s.set(name, node, required)
}

// AddEnumProperty adds a string property restricted to values, in order.
func (s *ObjectSchema) AddEnumProperty(name string, values []string, description string, required bool) *ObjectSchema {
	return s.AddProperty(name, TypeString, description, required, WithEnum(values...))
}

// AddObjectProperty adds a nested object property. nestedRequired is emitted
// only when non-empty and is not checked against properties. The property
// map is copied. Strict OpenAI requests also need
// WithAdditionalProperties(false) on nested objects.
func (s *ObjectSchema) AddObjectProperty(name string, properties *PropertyMap, nestedRequired []string, description string, required bool, opts ...PropertyOption) *ObjectSchema {
	node := &Node{
		Type:        TypeObject.String(),
		Properties:  copyProperties(properties),
		Description: description,
	}
	if len(nestedRequired) > 0 {
		node.Required = append([]string(nil), nestedRequired...)
	}
	for _, opt := range opts {
		opt(node)
	}
	return s.set(name, node, required)
}

// AddArrayProperty adds an array property whose items follow a copy of the
// given schema fragment.
func (s *ObjectSchema) AddArrayProperty(name string, items *Node, description string, required bool, opts ...PropertyOption) *ObjectSchema {
	node := &Node{
		Type:        TypeArray.String(),
		Items:       cloneNode(items),
		Description: description,
	}
	for _, opt := range opts {
		opt(node)
	}
	return s.set(name, node, required)
}

// SetAdditionalProperties controls whether unknown top-level keys are tolerated.
func (s *ObjectSchema) SetAdditionalProperties(allowed bool) *ObjectSchema {
	s.additionalProperties = allowed
	return s
}

// AdditionalProperties reports whether unknown top-level keys are tolerated.
func (s *ObjectSchema) AdditionalProperties() bool {
	return s.additionalProperties
}

// Required returns a copy of the required property names in marking order.
func (s *ObjectSchema) Required() []string {
	return append([]string(nil), s.required...)
}

// Property returns the node stored under name. Edits to it show up in wire
// forms produced afterwards.
func (s *ObjectSchema) Property(name string) (*Node, bool) {
	return s.properties.Get(name)
}

// PropertyNames returns the property names in insertion order.
func (s *ObjectSchema) PropertyNames() []string {
	names := make([]string, 0, s.properties.Len())
	for pair := s.properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// WireForm returns the {name, strict, schema} document.
func (s *ObjectSchema) WireForm() Wire {
	return wireOf(s)
}

func (s *ObjectSchema) set(name string, node *Node, required bool) *ObjectSchema {
	s.properties.Set(name, node)
	if required {
		s.required = append(s.required, name)
	}
	return s
}

func (s *ObjectSchema) definition() *Node {
	node := &Node{
		Type:                 TypeObject.String(),
		Properties:           copyProperties(s.properties),
		AdditionalProperties: boolSchema(s.additionalProperties),
	}
	if len(s.required) > 0 {
		node.Required = append([]string(nil), s.required...)
	}
	return node
}

var _ Schema = (*ObjectSchema)(nil)
