package client

import (
	"context"

	"github.com/spetersoncode/structured"
	"github.com/spetersoncode/structured/schema"
)

// CompleteTyped sends a schema-constrained request and decodes the response
// into T instead of a generic value:
//
//	type Verdict struct {
//	    Category string `json:"category"`
//	    Reason   string `json:"reason"`
//	}
//
//	s := schema.NewCategorization("contact_categorization", []string{"Real", "Fake"})
//	v, err := client.CompleteTyped[Verdict](ctx, c, s, prompt, contact)
//
// Content that does not decode into T is returned as
// *structured.MalformedResponseError.
func CompleteTyped[T any](ctx context.Context, c *Client, s schema.Schema, systemPrompt string, userPayload any, opts ...structured.Option) (T, error) {
	var result T
	if err := c.complete(ctx, s, systemPrompt, userPayload, &result, opts...); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
