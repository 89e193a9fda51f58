package google

import (
	"fmt"

	"github.com/spetersoncode/structured/schema"
	"google.golang.org/genai"
)

// convertSchema converts a JSON Schema node to a Gemini response schema.
// Property order is carried over through PropertyOrdering since Gemini
// otherwise sorts properties alphabetically.
func convertSchema(n *schema.Node) *genai.Schema {
	if n == nil {
		return nil
	}

	result := &genai.Schema{
		Description: n.Description,
		Format:      n.Format,
		Pattern:     n.Pattern,
		Required:    n.Required,
	}
	if n.Default != nil {
		result.Default = n.Default
	}

	switch schema.Type(n.Type) {
	case schema.TypeString:
		result.Type = genai.TypeString
	case schema.TypeNumber:
		result.Type = genai.TypeNumber
	case schema.TypeInteger:
		result.Type = genai.TypeInteger
	case schema.TypeBoolean:
		result.Type = genai.TypeBoolean
	case schema.TypeArray:
		result.Type = genai.TypeArray
	case schema.TypeObject:
		result.Type = genai.TypeObject
	}

	for _, v := range n.Enum {
		result.Enum = append(result.Enum, fmt.Sprint(v))
	}

	if n.Properties != nil && n.Properties.Len() > 0 {
		result.Properties = make(map[string]*genai.Schema, n.Properties.Len())
		for pair := n.Properties.Oldest(); pair != nil; pair = pair.Next() {
			result.Properties[pair.Key] = convertSchema(pair.Value)
			result.PropertyOrdering = append(result.PropertyOrdering, pair.Key)
		}
	}

	if n.Items != nil {
		result.Items = convertSchema(n.Items)
	}

	return result
}
