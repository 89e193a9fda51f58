// Package client requests schema-constrained JSON completions.
//
// A Client wraps one completion capability (OpenAI by default, or Anthropic
// and Google through NewFromConfig) and turns a schema, a system prompt and
// a payload into a single request. The first choice is parsed as JSON.
//
// # Basic Usage
//
//	c := client.New(os.Getenv("OPENAI_API_KEY"))
//
//	s := schema.NewCategorization("contact_categorization", []string{"Real", "Fake"})
//	result, err := c.CompleteWithSchema(ctx, s,
//	    "Decide whether the contact is real or fake.",
//	    map[string]any{"first_name": "John", "last_name": "Doe"},
//	)
//
// String payloads are sent verbatim; anything else is encoded as JSON.
//
// # Options
//
// Per-request options override the client's model and add generation
// parameters. Keys set with structured.WithExtra are copied into the
// provider request body untouched:
//
//	result, err := c.CompleteWithSchema(ctx, s, prompt, payload,
//	    structured.WithModel("gpt-4o-mini"),
//	    structured.WithTemperature(0),
//	    structured.WithExtra("seed", 42),
//	)
//
// # Errors
//
// Failures from the provider are *structured.ProviderError and keep the
// provider's categorized error (see structured.IsTransient). Responses
// that are not JSON are *structured.MalformedResponseError. Nothing is
// retried.
//
// # Events
//
// Operations can be observed via an event channel:
//
//	events := make(chan client.Event, 100)
//	c := client.New(key, client.WithEvents(events))
//
//	go func() {
//	    for e := range events {
//	        log.Printf("[%s] %s %s took %v", e.Type, e.RequestID, e.Model, e.Duration)
//	    }
//	}()
//
// Events are sent non-blocking; if the channel is full, events are dropped.
package client
