// Package anthropic provides a Claude completion capability for structured
// output.
//
// Anthropic has no json_schema response format, so the response schema is
// sent as the input schema of a single tool and tool_choice forces the model
// to call it. The tool input becomes the response content. The tool is named
// after the schema.
//
// Only the root object's properties and required list are carried into the
// tool input schema; the root additionalProperties flag is not sent.
package anthropic
