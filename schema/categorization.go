package schema

const (
	categoryProperty    = "category"
	reasonProperty      = "reason"
	categoryDescription = "Category of the input"
	reasonDescription   = "Reason for the categorization"
)

// CategorizationSchema asks the model to pick one category from a fixed list
// and explain why. Its shape is always
//
//	{"category": <one of categories>, "reason": <free text>}
//
// with both properties required and no additional properties.
type CategorizationSchema struct {
	base
	categories []string
}

// NewCategorization creates a strict categorization schema. categories should
// be non-empty; an empty list produces a category property without an enum.
func NewCategorization(name string, categories []string) *CategorizationSchema {
	return &CategorizationSchema{
		base:       newBase(name),
		categories: append([]string(nil), categories...),
	}
}

// SetStrict sets whether the provider should reject deviations from the schema.
func (s *CategorizationSchema) SetStrict(strict bool) *CategorizationSchema {
	s.strict = strict
	return s
}

// Categories returns a copy of the category labels.
func (s *CategorizationSchema) Categories() []string {
	return append([]string(nil), s.categories...)
}

// SetCategories replaces the category labels. Wire forms produced earlier are
// unaffected.
func (s *CategorizationSchema) SetCategories(categories []string) *CategorizationSchema {
	s.categories = append([]string(nil), categories...)
	return s
}

// WireForm returns the {name, strict, schema} document.
func (s *CategorizationSchema) WireForm() Wire {
	return wireOf(s)
}

func (s *CategorizationSchema) definition() *Node {
	props := NewProperties()
	props.Set(categoryProperty, Enum(categoryDescription, s.categories...))
	props.Set(reasonProperty, String(reasonDescription))

	return &Node{
		Type:                 TypeObject.String(),
		Properties:           props,
		Required:             []string{categoryProperty, reasonProperty},
		AdditionalProperties: boolSchema(false),
	}
}

var _ Schema = (*CategorizationSchema)(nil)
