package schema

import "slices"

// PropertyOption adds constraints to a property node. It is the typed form of
// the free-form extra options accepted by AddProperty.
type PropertyOption func(*Node)

// WithEnum restricts the property to the given values, in order.
func WithEnum(values ...string) PropertyOption {
	return func(n *Node) {
		if len(values) == 0 {
			n.Enum = nil
			return
		}
		n.Enum = make([]any, len(values))
		for i, v := range values {
			n.Enum[i] = v
		}
	}
}

// WithItems sets the items schema of an array property to a copy of items.
func WithItems(items *Node) PropertyOption {
	return func(n *Node) {
		n.Items = cloneNode(items)
	}
}

// WithFormat sets the string format (e.g. "date-time", "email").
func WithFormat(format string) PropertyOption {
	return func(n *Node) {
		n.Format = format
	}
}

// WithPattern sets a regular expression the string must match.
func WithPattern(pattern string) PropertyOption {
	return func(n *Node) {
		n.Pattern = pattern
	}
}

// WithDefault sets the default value.
func WithDefault(value any) PropertyOption {
	return func(n *Node) {
		n.Default = value
	}
}

// WithAdditionalProperties controls whether an object property tolerates
// unknown keys.
func WithAdditionalProperties(allowed bool) PropertyOption {
	return func(n *Node) {
		n.AdditionalProperties = boolSchema(allowed)
	}
}

// WithExtra sets an arbitrary keyword on the property. Keywords the node
// has a field for (type, description, enum, items, format, pattern,
// default, required, properties, additionalProperties) replace that field,
// so a keyword is never written twice. A value of an unexpected type clears
// the field and is written as given.
func WithExtra(key string, value any) PropertyOption {
	return func(n *Node) {
		delete(n.Extras, key)
		if setKeyword(n, key, value) {
			return
		}
		if n.Extras == nil {
			n.Extras = make(map[string]any)
		}
		n.Extras[key] = value
	}
}

// setKeyword assigns a standard keyword to its field. It reports false when
// value must go to Extras instead; the field is then cleared.
func setKeyword(n *Node, key string, value any) bool {
	switch key {
	case "type":
		switch v := value.(type) {
		case Type:
			n.Type = v.String()
		case string:
			n.Type = v
		default:
			n.Type = ""
			return false
		}
	case "description":
		return setString(&n.Description, value)
	case "format":
		return setString(&n.Format, value)
	case "pattern":
		return setString(&n.Pattern, value)
	case "enum":
		switch v := value.(type) {
		case []string:
			WithEnum(v...)(n)
		case []any:
			n.Enum = slices.Clone(v)
		default:
			n.Enum = nil
			return false
		}
	case "items":
		v, ok := value.(*Node)
		if !ok {
			n.Items = nil
			return false
		}
		n.Items = cloneNode(v)
	case "default":
		n.Default = value
	case "required":
		v, ok := value.([]string)
		if !ok {
			n.Required = nil
			return false
		}
		n.Required = slices.Clone(v)
	case "properties":
		v, ok := value.(*PropertyMap)
		if !ok {
			n.Properties = nil
			return false
		}
		n.Properties = copyProperties(v)
	case "additionalProperties":
		switch v := value.(type) {
		case bool:
			n.AdditionalProperties = boolSchema(v)
		case *Node:
			n.AdditionalProperties = cloneNode(v)
		default:
			n.AdditionalProperties = nil
			return false
		}
	default:
		return false
	}
	return true
}

func setString(field *string, value any) bool {
	v, ok := value.(string)
	if !ok {
		*field = ""
		return false
	}
	*field = v
	return true
}
