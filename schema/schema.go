package schema

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Type is a JSON Schema type name.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
)

// String returns the JSON Schema type name.
func (t Type) String() string { return string(t) }

// Node is a single JSON Schema document node.
type Node = jsonschema.Schema

// PropertyMap holds an object's properties in insertion order.
type PropertyMap = orderedmap.OrderedMap[string, *Node]

// Schema is a named response schema that can be sent to a completion
// provider. The set of implementations is closed: *ObjectSchema and
// *CategorizationSchema.
type Schema interface {
	// Name identifies the schema to the provider.
	Name() string

	// Strict reports whether the provider should reject deviations.
	Strict() bool

	// WireForm returns a fresh {name, strict, schema} document. The document
	// shares no nodes with the builder: later edits to the builder, or to
	// nodes read back from it, do not reach documents already returned.
	WireForm() Wire

	// definition builds the root object node.
	definition() *Node
}

// Wire is the schema wire form: the root object schema wrapped with its name
// and strict flag.
type Wire struct {
	Name   string `json:"name"`
	Strict bool   `json:"strict"`
	Schema *Node  `json:"schema"`
}

// JSON serializes the wire form.
func (w Wire) JSON() (json.RawMessage, error) {
	return json.Marshal(w)
}

// base carries the fields shared by every schema kind.
type base struct {
	name   string
	strict bool
}

func newBase(name string) base {
	return base{name: name, strict: true}
}

// Name returns the schema name.
func (b *base) Name() string { return b.name }

// Strict reports whether strict mode is requested.
func (b *base) Strict() bool { return b.strict }

func wireOf(s Schema) Wire {
	return Wire{
		Name:   s.Name(),
		Strict: s.Strict(),
		Schema: s.definition(),
	}
}

// NewProperties returns an empty ordered property map.
func NewProperties() *PropertyMap {
	return jsonschema.NewProperties()
}

func boolSchema(v bool) *Node {
	if v {
		return jsonschema.TrueSchema
	}
	return jsonschema.FalseSchema
}

// copyProperties deep-copies src into a new map. A nil src yields an empty map.
func copyProperties(src *PropertyMap) *PropertyMap {
	dst := NewProperties()
	if src == nil {
		return dst
	}
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		dst.Set(pair.Key, cloneNode(pair.Value))
	}
	return dst
}

// cloneNode deep-copies the parts of a node this package builds or edits.
// The shared true and false schemas are returned as is.
func cloneNode(n *Node) *Node {
	if n == nil || n == jsonschema.TrueSchema || n == jsonschema.FalseSchema {
		return n
	}
	c := *n
	if n.Properties != nil {
		c.Properties = copyProperties(n.Properties)
	}
	c.Items = cloneNode(n.Items)
	c.AdditionalProperties = cloneNode(n.AdditionalProperties)
	c.Not = cloneNode(n.Not)
	c.AllOf = cloneNodes(n.AllOf)
	c.AnyOf = cloneNodes(n.AnyOf)
	c.OneOf = cloneNodes(n.OneOf)
	c.Enum = slices.Clone(n.Enum)
	c.Required = slices.Clone(n.Required)
	c.Extras = maps.Clone(n.Extras)
	return &c
}

func cloneNodes(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}
