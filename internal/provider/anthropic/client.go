package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spetersoncode/structured"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "claude-sonnet-4-5"

	defaultMaxTokens = 4096
)

// Client wraps the Anthropic SDK to implement structured.CompletionProvider.
type Client struct {
	client  *anthropic.Client
	model   string
	reqOpts []option.RequestOption
}

// New creates a new Anthropic client with the given API key. The SDK's own
// retries are disabled.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{model: DefaultModel}
	for _, opt := range opts {
		opt(c)
	}

	reqOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, c.reqOpts...)
	client := anthropic.NewClient(reqOpts...)
	c.client = &client
	return c
}

// ClientOption configures the Anthropic client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.reqOpts = append(c.reqOpts, option.WithBaseURL(url))
	}
}

// Name identifies the provider.
func (c *Client) Name() structured.ProviderName {
	return structured.ProviderAnthropic
}

// DefaultModel returns the model used when a request names none.
func (c *Client) DefaultModel() string {
	return c.model
}

// Complete forces the model to call a tool whose input schema is the response
// schema and returns the tool input as the response content.
func (c *Client) Complete(ctx context.Context, req *structured.Request) (*structured.Response, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	maxTokens := int64(defaultMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	msgs, system := convertMessages(req.Messages)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	tool, choice, toolName := buildJSONTool(req.ResponseFormat)
	params.Tools = []anthropic.ToolUnionParam{tool}
	params.ToolChoice = choice

	reqOpts := make([]option.RequestOption, 0, len(req.Extra))
	for key, value := range req.Extra {
		reqOpts = append(reqOpts, option.WithJSONSet(key, value))
	}

	resp, err := c.client.Messages.New(ctx, params, reqOpts...)
	if err != nil {
		return nil, wrapError(err)
	}
	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("anthropic: %w", structured.ErrNoChoices)
	}

	// Prefer the forced tool input; fall back to any text the model produced.
	var text strings.Builder
	content := ""
	found := false
	for _, block := range resp.Content {
		switch block.Type {
		case "tool_use":
			if block.Name == toolName && !found {
				content = string(block.Input)
				found = true
			}
		case "text":
			text.WriteString(block.Text)
		}
	}
	if !found {
		content = text.String()
	}

	return &structured.Response{
		Content:      content,
		FinishReason: string(resp.StopReason),
		Usage: structured.Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}, nil
}

var _ structured.CompletionProvider = (*Client)(nil)
