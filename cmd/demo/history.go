package main

import (
	"context"

	"github.com/spetersoncode/structured/client"
	"github.com/spetersoncode/structured/internal/config"
	"github.com/spetersoncode/structured/schema"
)

const accessLog = `2024-05-01T08:12:00Z login ok
2024-05-01T08:15:42Z login failed (bad password)
2024-05-02T19:01:10Z login ok`

func demoHistory(ctx context.Context, c *client.Client, cfg *config.Config) error {
	printHeader("Access history")

	// Non-strict: nested objects carry no required list here.
	s := schema.NewObject("access_history").
		SetStrict(false).
		AddArrayProperty("accessHistory", schema.Object(schema.Properties(
			schema.Prop("timestamp", schema.String("ISO 8601 timestamp")),
			schema.Prop("success", schema.Boolean("Whether the login succeeded")),
		)), "Login attempts in order", false)

	result, err := c.CompleteWithSchema(ctx, s, "Convert the access log to JSON.", accessLog,
		cfg.RequestOptions()...)
	if err != nil {
		return err
	}
	printJSON(result)
	return nil
}
