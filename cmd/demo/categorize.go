package main

import (
	"context"
	"fmt"

	"github.com/spetersoncode/structured/client"
	"github.com/spetersoncode/structured/internal/config"
	"github.com/spetersoncode/structured/schema"
)

const contactPrompt = `You review contact records submitted through a sign-up form.
Decide whether each contact looks like a real person or a fake entry.`

func demoCategorize(ctx context.Context, c *client.Client, cfg *config.Config) error {
	printHeader("Contact categorization")

	s := schema.NewCategorization("contact_categorization", []string{"Real", "Fake"})
	contacts := []map[string]any{
		{"first_name": "John", "last_name": "Doe", "email": "john.doe@example.com"},
		{"first_name": "Test", "last_name": "Test", "email": "asdf@asdf.asdf"},
	}

	for _, contact := range contacts {
		result, err := c.CompleteWithSchema(ctx, s, contactPrompt, contact, cfg.RequestOptions()...)
		if err != nil {
			return err
		}
		fmt.Printf("  %s %s:\n", contact["first_name"], contact["last_name"])
		printJSON(result)
	}
	return nil
}
