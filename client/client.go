package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spetersoncode/structured"
	"github.com/spetersoncode/structured/internal/provider/anthropic"
	"github.com/spetersoncode/structured/internal/provider/google"
	"github.com/spetersoncode/structured/internal/provider/openai"
	"github.com/spetersoncode/structured/schema"
)

const opCompleteWithSchema = "complete_with_schema"

// APIKeys holds API keys for different providers.
// Only the key of the selected provider is required.
type APIKeys struct {
	Anthropic string
	OpenAI    string
	Google    string
}

// Config selects and configures a provider for NewFromConfig.
type Config struct {
	// Provider selects the backend. Empty means OpenAI.
	Provider structured.ProviderName

	// Model overrides the provider's default model.
	Model string

	// BaseURL points the provider at a different endpoint.
	BaseURL string

	// APIKeys contains authentication keys for each provider.
	APIKeys APIKeys

	// Logger receives request diagnostics. Nil disables logging.
	Logger *zerolog.Logger

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// ErrMissingAPIKey is returned when the selected provider has no API key.
type ErrMissingAPIKey struct {
	Provider string
}

func (e *ErrMissingAPIKey) Error() string {
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrUnsupportedProvider is returned for an unknown provider name.
type ErrUnsupportedProvider struct {
	Provider string
}

func (e *ErrUnsupportedProvider) Error() string {
	return fmt.Sprintf("unsupported provider: %q", e.Provider)
}

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	model    string
	baseURL  string
	provider structured.CompletionProvider
	logger   zerolog.Logger
	events   chan<- Event
}

// WithModel sets the model used when a request names none.
func WithModel(model string) Option {
	return func(c *clientConfig) {
		c.model = model
	}
}

// WithBaseURL points the default OpenAI capability at a compatible endpoint.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithProvider replaces the default OpenAI capability.
func WithProvider(p structured.CompletionProvider) Option {
	return func(c *clientConfig) {
		c.provider = p
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithEvents sets a channel that receives client operation events.
func WithEvents(ch chan<- Event) Option {
	return func(c *clientConfig) {
		c.events = ch
	}
}

// Client requests schema-constrained JSON completions from a provider.
// It is safe for concurrent use.
type Client struct {
	provider structured.CompletionProvider
	logger   zerolog.Logger
	events   chan<- Event

	mu    sync.RWMutex
	model string
}

// New creates a client backed by OpenAI using apiKey. The model defaults to
// gpt-4o unless WithModel or WithProvider says otherwise.
func New(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	provider := cfg.provider
	if provider == nil {
		var providerOpts []openai.ClientOption
		if cfg.baseURL != "" {
			providerOpts = append(providerOpts, openai.WithBaseURL(cfg.baseURL))
		}
		provider = openai.New(apiKey, providerOpts...)
	}

	model := cfg.model
	if model == "" {
		model = provider.DefaultModel()
	}

	return &Client{
		provider: provider,
		logger:   cfg.logger,
		events:   cfg.events,
		model:    model,
	}
}

// NewFromConfig creates a client for the provider named in cfg.
func NewFromConfig(ctx context.Context, cfg Config) (*Client, error) {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	var provider structured.CompletionProvider
	switch cfg.Provider {
	case structured.ProviderOpenAI, "":
		if cfg.APIKeys.OpenAI == "" {
			return nil, &ErrMissingAPIKey{Provider: structured.ProviderOpenAI.String()}
		}
		var opts []openai.ClientOption
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		provider = openai.New(cfg.APIKeys.OpenAI, opts...)
	case structured.ProviderAnthropic:
		if cfg.APIKeys.Anthropic == "" {
			return nil, &ErrMissingAPIKey{Provider: structured.ProviderAnthropic.String()}
		}
		var opts []anthropic.ClientOption
		if cfg.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(cfg.BaseURL))
		}
		provider = anthropic.New(cfg.APIKeys.Anthropic, opts...)
	case structured.ProviderGoogle:
		if cfg.APIKeys.Google == "" {
			return nil, &ErrMissingAPIKey{Provider: structured.ProviderGoogle.String()}
		}
		opts := []google.ClientOption{google.WithLogger(logger)}
		if cfg.BaseURL != "" {
			opts = append(opts, google.WithBaseURL(cfg.BaseURL))
		}
		g, err := google.New(ctx, cfg.APIKeys.Google, opts...)
		if err != nil {
			return nil, err
		}
		provider = g
	default:
		return nil, &ErrUnsupportedProvider{Provider: cfg.Provider.String()}
	}

	return New("",
		WithProvider(provider),
		WithModel(cfg.Model),
		WithLogger(logger),
		WithEvents(cfg.Events),
	), nil
}

// Model returns the model used when a request names none.
func (c *Client) Model() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// SetModel changes the model for subsequent requests.
func (c *Client) SetModel(model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
}

// Provider returns the underlying completion capability.
func (c *Client) Provider() structured.CompletionProvider {
	return c.provider
}

// CompleteWithSchema asks the model for a JSON object conforming to s and
// returns the parsed value. The conversation is the system prompt, the
// encoded userPayload, then any messages from WithMessages.
//
// Provider failures are returned as *structured.ProviderError. Content that
// is not JSON, or a response without choices, is returned as
// *structured.MalformedResponseError. The result is not validated against s.
func (c *Client) CompleteWithSchema(ctx context.Context, s schema.Schema, systemPrompt string, userPayload any, opts ...structured.Option) (any, error) {
	var result any
	if err := c.complete(ctx, s, systemPrompt, userPayload, &result, opts...); err != nil {
		return nil, err
	}
	return result, nil
}

// complete builds and dispatches one request and decodes the content of the
// first choice into out.
func (c *Client) complete(ctx context.Context, s schema.Schema, systemPrompt string, userPayload any, out any, opts ...structured.Option) error {
	options := structured.ApplyOptions(opts...)

	payload, err := structured.EncodePayload(userPayload)
	if err != nil {
		return err
	}

	messages := make([]structured.Message, 0, len(options.Messages)+2)
	messages = append(messages,
		structured.SystemMessage(systemPrompt),
		structured.UserMessage(payload),
	)
	messages = append(messages, options.Messages...)

	model := options.Model
	if model == "" {
		model = c.Model()
	}

	req := &structured.Request{
		Model:          model,
		Messages:       messages,
		ResponseFormat: structured.NewResponseFormat(s),
		MaxTokens:      options.MaxTokens,
		Temperature:    options.Temperature,
		Extra:          options.Extra,
	}

	provider := c.provider.Name()
	requestID := structured.GenerateRequestID()
	logger := c.logger.With().
		Str("request_id", requestID).
		Str("provider", provider.String()).
		Str("model", model).
		Str("schema", s.Name()).
		Logger()

	logger.Debug().Int("messages", len(messages)).Msg("dispatching completion request")
	start := time.Now()
	emit(c.events, Event{
		Type:      EventRequestStart,
		Operation: opCompleteWithSchema,
		RequestID: requestID,
		Provider:  provider,
		Model:     model,
		Schema:    s.Name(),
	})

	resp, err := c.provider.Complete(ctx, req)
	if err != nil {
		var failure error
		if errors.Is(err, structured.ErrNoChoices) {
			failure = &structured.MalformedResponseError{Err: err}
			logger.Warn().Err(err).Str("stage", "parse").Msg("completion request failed")
		} else {
			failure = &structured.ProviderError{Provider: provider, Model: model, Err: err}
			logger.Warn().Err(err).Str("stage", "provider").Msg("completion request failed")
		}
		c.emitError(requestID, provider, model, s.Name(), start, failure)
		return failure
	}

	if err := json.Unmarshal([]byte(resp.Content), out); err != nil {
		failure := &structured.MalformedResponseError{Content: resp.Content, Err: err}
		logger.Warn().Err(err).Str("stage", "parse").Msg("completion request failed")
		c.emitError(requestID, provider, model, s.Name(), start, failure)
		return failure
	}

	duration := time.Since(start)
	logger.Debug().
		Dur("duration", duration).
		Int("input_tokens", resp.Usage.InputTokens).
		Int("output_tokens", resp.Usage.OutputTokens).
		Str("finish_reason", resp.FinishReason).
		Msg("completion request finished")
	emit(c.events, Event{
		Type:      EventRequestComplete,
		Operation: opCompleteWithSchema,
		RequestID: requestID,
		Provider:  provider,
		Model:     model,
		Schema:    s.Name(),
		Duration:  duration,
		Usage:     &resp.Usage,
	})
	return nil
}

func (c *Client) emitError(requestID string, provider structured.ProviderName, model, schemaName string, start time.Time, err error) {
	emit(c.events, Event{
		Type:      EventRequestError,
		Operation: opCompleteWithSchema,
		RequestID: requestID,
		Provider:  provider,
		Model:     model,
		Schema:    schemaName,
		Duration:  time.Since(start),
		Error:     err,
	})
}
