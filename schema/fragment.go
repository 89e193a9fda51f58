package schema

// Fragment constructors for nested property maps and array items.

// String creates a string node.
func String(description string) *Node {
	return &Node{Type: TypeString.String(), Description: description}
}

// Integer creates an integer node.
func Integer(description string) *Node {
	return &Node{Type: TypeInteger.String(), Description: description}
}

// Number creates a number node.
func Number(description string) *Node {
	return &Node{Type: TypeNumber.String(), Description: description}
}

// Boolean creates a boolean node.
func Boolean(description string) *Node {
	return &Node{Type: TypeBoolean.String(), Description: description}
}

// Enum creates a string node restricted to values, in order.
func Enum(description string, values ...string) *Node {
	node := String(description)
	WithEnum(values...)(node)
	return node
}

// Object creates an object node. required is emitted only when non-empty.
func Object(properties *PropertyMap, required ...string) *Node {
	node := &Node{Type: TypeObject.String(), Properties: copyProperties(properties)}
	if len(required) > 0 {
		node.Required = append([]string(nil), required...)
	}
	return node
}

// Array creates an array node with the given items schema.
func Array(items *Node) *Node {
	return &Node{Type: TypeArray.String(), Items: items}
}

// Field is a named property used to build an ordered property map.
type Field struct {
	Name   string
	Schema *Node
}

// Prop pairs a property name with its schema.
func Prop(name string, node *Node) Field {
	return Field{Name: name, Schema: node}
}

// Properties builds an ordered property map. A repeated name overwrites the
// earlier entry in place.
//
//	schema.Properties(
//		schema.Prop("name", schema.String("The person's full name")),
//		schema.Prop("role", schema.String("The person's role or occupation")),
//	)
func Properties(fields ...Field) *PropertyMap {
	props := NewProperties()
	for _, f := range fields {
		props.Set(f.Name, f.Schema)
	}
	return props
}
