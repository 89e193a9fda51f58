package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors for schema validation.
var (
	// ErrUnknownRequired is returned when a required name has no property.
	ErrUnknownRequired = errors.New("schema: required property not defined")

	// ErrNilItems is returned when an array has no items schema.
	ErrNilItems = errors.New("schema: array requires items schema")
)

// ValidationError represents a schema consistency failure.
type ValidationError struct {
	Path    string // dotted path to the offending node, empty for the root
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("schema: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("schema: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks a schema for internal consistency: every required name must
// be a defined property and every array must declare items. Builders never
// call it; malformed documents are sent as built unless the caller opts in.
func Validate(s Schema) error {
	return validateNode(s.definition(), "")
}

func validateNode(n *Node, path string) error {
	if n == nil {
		return nil
	}
	switch n.Type {
	case TypeObject.String():
		for _, name := range n.Required {
			if n.Properties == nil {
				return unknownRequired(path, name)
			}
			if _, ok := n.Properties.Get(name); !ok {
				return unknownRequired(path, name)
			}
		}
		if n.Properties == nil {
			return nil
		}
		for pair := n.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if err := validateNode(pair.Value, join(path, pair.Key)); err != nil {
				return err
			}
		}
	case TypeArray.String():
		if n.Items == nil {
			return &ValidationError{Path: path, Message: "array requires items schema", Err: ErrNilItems}
		}
		return validateNode(n.Items, join(path, "items"))
	}
	return nil
}

func unknownRequired(path, name string) error {
	return &ValidationError{
		Path:    path,
		Message: fmt.Sprintf("required property %q is not defined", name),
		Err:     ErrUnknownRequired,
	}
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
