package main

import (
	"context"
	"fmt"

	"github.com/spetersoncode/structured"
	"github.com/spetersoncode/structured/client"
	"github.com/spetersoncode/structured/internal/config"
	"github.com/spetersoncode/structured/schema"
)

// Severity is the decoded categorization result.
type Severity struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

func demoTyped(ctx context.Context, c *client.Client, cfg *config.Config) error {
	printHeader("Typed categorization")

	s := schema.NewCategorization("incident_severity", []string{"low", "medium", "high", "critical"})
	incident := "Checkout API returns 500 for every request since the last deploy."

	opts := append(cfg.RequestOptions(),
		structured.WithMessages(structured.UserMessage("Answer for an on-call engineer.")),
	)
	sev, err := client.CompleteTyped[Severity](ctx, c, s, "Rate the severity of the incident.", incident, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("  Category: %s\n", sev.Category)
	fmt.Printf("  Reason:   %s\n", sev.Reason)
	return nil
}
