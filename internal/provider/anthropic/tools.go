package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spetersoncode/structured"
)

// fallbackToolName is used when the schema has no name.
const fallbackToolName = "structured_response"

// buildJSONTool turns the response schema into a tool the model is forced to
// call. The tool input is the structured response.
func buildJSONTool(format structured.ResponseFormat) (anthropic.ToolUnionParam, anthropic.ToolChoiceUnionParam, string) {
	wire := format.JSONSchema
	name := wire.Name
	if name == "" {
		name = fallbackToolName
	}

	inputSchema := anthropic.ToolInputSchemaParam{}
	if wire.Schema != nil {
		if wire.Schema.Properties != nil {
			inputSchema.Properties = wire.Schema.Properties
		}
		inputSchema.Required = wire.Schema.Required
	}

	tool := anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        name,
			Description: anthropic.String("Output the response as JSON matching the " + name + " schema"),
			InputSchema: inputSchema,
		},
	}

	choice := anthropic.ToolChoiceUnionParam{
		OfTool: &anthropic.ToolChoiceToolParam{
			Name: name,
		},
	}

	return tool, choice, name
}
