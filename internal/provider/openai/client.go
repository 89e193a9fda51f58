package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spetersoncode/structured"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o"

// Client wraps the OpenAI SDK to implement structured.CompletionProvider.
type Client struct {
	client  *openai.Client
	model   string
	reqOpts []option.RequestOption
}

// New creates a new OpenAI client with the given API key. The SDK's own
// retries are disabled: each Complete call is a single request.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{model: DefaultModel}
	for _, opt := range opts {
		opt(c)
	}

	reqOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, c.reqOpts...)
	client := openai.NewClient(reqOpts...)
	c.client = &client
	return c
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.reqOpts = append(c.reqOpts, option.WithBaseURL(url))
	}
}

// WithRequestOptions appends raw SDK request options.
func WithRequestOptions(opts ...option.RequestOption) ClientOption {
	return func(c *Client) {
		c.reqOpts = append(c.reqOpts, opts...)
	}
}

// Name identifies the provider.
func (c *Client) Name() structured.ProviderName {
	return structured.ProviderOpenAI
}

// DefaultModel returns the model used when a request names none.
func (c *Client) DefaultModel() string {
	return c.model
}

// SDK returns the underlying OpenAI SDK client.
func (c *Client) SDK() *openai.Client {
	return c.client
}

// Complete sends one chat completion request with a json_schema response
// format and returns the first choice.
func (c *Client) Complete(ctx context.Context, req *structured.Request) (*structured.Response, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	params := openai.ChatCompletionNewParams{
		Model:          model,
		Messages:       convertMessages(req.Messages),
		ResponseFormat: buildResponseFormat(req.ResponseFormat),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	// Provider-specific fields go into the request body verbatim.
	reqOpts := make([]option.RequestOption, 0, len(req.Extra))
	for key, value := range req.Extra {
		reqOpts = append(reqOpts, option.WithJSONSet(key, value))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params, reqOpts...)
	if err != nil {
		return nil, wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: %w", structured.ErrNoChoices)
	}

	return &structured.Response{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		Usage: structured.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}, nil
}

var _ structured.CompletionProvider = (*Client)(nil)
