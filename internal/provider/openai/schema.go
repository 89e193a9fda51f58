package openai

import (
	"github.com/openai/openai-go"
	"github.com/spetersoncode/structured"
)

// buildResponseFormat sends the schema wire form unchanged. Strict mode on the
// OpenAI side also expects additionalProperties: false on nested objects; the
// document is not patched, so schemas must be built that way when needed.
func buildResponseFormat(format structured.ResponseFormat) openai.ChatCompletionNewParamsResponseFormatUnion {
	wire := format.JSONSchema
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			Type: "json_schema",
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:   wire.Name,
				Schema: wire.Schema,
				Strict: openai.Bool(wire.Strict),
			},
		},
	}
}
