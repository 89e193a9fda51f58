package google

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spetersoncode/structured"
	"google.golang.org/genai"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"

	jsonMIMEType = "application/json"
)

// Client wraps the Google GenAI SDK to implement structured.CompletionProvider.
type Client struct {
	client  *genai.Client
	model   string
	baseURL string
	logger  zerolog.Logger
}

// New creates a Gemini API client with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	return NewWithConfig(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, opts...)
}

// NewVertex creates a client on the Vertex AI backend. Authentication uses
// Application Default Credentials.
func NewVertex(ctx context.Context, project, location string, opts ...ClientOption) (*Client, error) {
	return NewWithConfig(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  project,
		Location: location,
	}, opts...)
}

// NewWithConfig creates a client from a raw SDK configuration.
func NewWithConfig(ctx context.Context, cfg *genai.ClientConfig, opts ...ClientOption) (*Client, error) {
	c := &Client{
		model:  DefaultModel,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL != "" {
		cfg.HTTPOptions.BaseURL = c.baseURL
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("google: create client: %w", err)
	}
	c.client = client
	return c, nil
}

// ClientOption configures the Google client.
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
		c.baseURL = url
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// Name identifies the provider.
func (c *Client) Name() structured.ProviderName {
	return structured.ProviderGoogle
}

// DefaultModel returns the model used when a request names none.
func (c *Client) DefaultModel() string {
	return c.model
}

// Complete requests a JSON response constrained by the response schema.
// Gemini has no strict flag; the schema is always enforced. Request extras
// are not supported and are dropped.
func (c *Client) Complete(ctx context.Context, req *structured.Request) (*structured.Response, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	contents, system := convertMessages(req.Messages)
	config := &genai.GenerateContentConfig{
		SystemInstruction: system,
		ResponseMIMEType:  jsonMIMEType,
		ResponseSchema:    convertSchema(req.ResponseFormat.JSONSchema.Schema),
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature != nil {
		temp := float32(*req.Temperature)
		config.Temperature = &temp
	}
	if len(req.Extra) > 0 {
		c.logger.Warn().
			Strs("keys", slices.Sorted(maps.Keys(req.Extra))).
			Msg("google provider ignores request extras")
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, wrapError(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, structured.NewUserInputError("google: prompt blocked", 0,
			&BlockedError{Reason: string(resp.PromptFeedback.BlockReason)})
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("google: %w", structured.ErrNoChoices)
	}

	var content strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		content.WriteString(part.Text)
	}

	usage := structured.Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	return &structured.Response{
		Content:      content.String(),
		FinishReason: string(resp.Candidates[0].FinishReason),
		Usage:        usage,
	}, nil
}

var _ structured.CompletionProvider = (*Client)(nil)
