// Package structured requests schema-constrained JSON completions from LLM
// chat-completion APIs.
//
// The root package holds the types shared by the builder, the client and the
// provider adapters: messages, per-request options, the provider-neutral
// [Request] and [Response], the [CompletionProvider] capability and the error
// types.
//
// Use the [github.com/spetersoncode/structured/schema] package to describe
// the expected output and the [github.com/spetersoncode/structured/client]
// package to send requests.
//
// # Basic Usage
//
//	s := schema.NewObject("entity_extraction").
//	    AddProperty("name", schema.TypeString, "Full name", true).
//	    AddEnumProperty("kind", []string{"person", "company"}, "Entity kind", true)
//
//	c := client.New(os.Getenv("OPENAI_API_KEY"))
//	result, err := c.CompleteWithSchema(ctx, s, "Extract the entity.", text)
//
// # Error Handling
//
// Provider failures are reported as [*ProviderError] and unparseable content
// as [*MalformedResponseError]:
//
//	result, err := c.CompleteWithSchema(ctx, s, prompt, payload)
//	switch {
//	case structured.IsMalformedResponse(err):
//	    // the model answered, but not with JSON
//	case structured.IsTransient(err):
//	    // rate limit or server error; RetryAfterOf may carry a delay
//	case err != nil:
//	    // authentication, bad request, network
//	}
//
// Nothing is retried automatically.
package structured
