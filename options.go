package structured

import "maps"

// Options contains per-call configuration for a structured completion.
//
// MaxTokens and Temperature are typed conveniences for the most common
// sampling parameters. Everything in Extra is forwarded to the provider
// request body verbatim under its own key.
type Options struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature *float64
	Extra       map[string]any
}

// Option is a functional option for configuring completion requests.
type Option func(*Options)

// WithModel overrides the client's default model for one request.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithMessages appends messages after the mandatory system and user pair.
func WithMessages(msgs ...Message) Option {
	return func(o *Options) {
		o.Messages = append(o.Messages, msgs...)
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// WithExtra passes a provider-specific field through to the request body.
func WithExtra(key string, value any) Option {
	return func(o *Options) {
		if o.Extra == nil {
			o.Extra = make(map[string]any)
		}
		o.Extra[key] = value
	}
}

// WithExtras passes several provider-specific fields through to the request body.
// Later keys overwrite earlier ones.
func WithExtras(extra map[string]any) Option {
	return func(o *Options) {
		if len(extra) == 0 {
			return
		}
		if o.Extra == nil {
			o.Extra = make(map[string]any, len(extra))
		}
		maps.Copy(o.Extra, extra)
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
