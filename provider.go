package structured

import (
	"context"

	"github.com/spetersoncode/structured/schema"
)

// ProviderName identifies a completion provider.
type ProviderName string

// String returns the provider identifier.
func (p ProviderName) String() string { return string(p) }

// Supported providers.
const (
	ProviderOpenAI    ProviderName = "openai"
	ProviderAnthropic ProviderName = "anthropic"
	ProviderGoogle    ProviderName = "google"
)

// ResponseFormatJSONSchema is the only response format kind this library sends.
const ResponseFormatJSONSchema = "json_schema"

// ResponseFormat constrains the provider's output to a schema.
type ResponseFormat struct {
	Type       string      `json:"type"`
	JSONSchema schema.Wire `json:"json_schema"`
}

// NewResponseFormat wraps a schema's wire form as a json_schema response format.
func NewResponseFormat(s schema.Schema) ResponseFormat {
	return ResponseFormat{
		Type:       ResponseFormatJSONSchema,
		JSONSchema: s.WireForm(),
	}
}

// Request is a single structured completion request. It is built fresh for
// each call and owned by that call.
type Request struct {
	Model          string         `json:"model"`
	Messages       []Message      `json:"messages"`
	ResponseFormat ResponseFormat `json:"response_format"`
	MaxTokens      int            `json:"max_tokens,omitempty"`
	Temperature    *float64       `json:"temperature,omitempty"`

	// Extra holds provider-specific fields forwarded verbatim.
	Extra map[string]any `json:"-"`
}

// Response is the provider's answer to a Request.
type Response struct {
	// Content is the first choice's message content, expected to be JSON text.
	Content      string `json:"content"`
	FinishReason string `json:"finishReason,omitempty"`
	Usage        Usage  `json:"usage"`
}

// Usage contains token usage information for a request.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

// CompletionProvider is the external completion capability: given a request,
// return a response or fail. Implementations perform a single blocking call
// with no internal retry.
type CompletionProvider interface {
	// Name identifies the provider.
	Name() ProviderName

	// DefaultModel is used when neither the client nor the request names a model.
	DefaultModel() string

	// Complete dispatches req and returns the first choice. A response without
	// any choice is reported as an error wrapping ErrNoChoices.
	Complete(ctx context.Context, req *Request) (*Response, error)
}
