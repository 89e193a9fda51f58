package main

import (
	"context"

	"github.com/spetersoncode/structured/client"
	"github.com/spetersoncode/structured/internal/config"
	"github.com/spetersoncode/structured/schema"
)

const profileText = `Hi, I'm Maria Lopez (maria_l), 34, a site admin from Valencia.
I mostly write Go and SQL and I've been on the team since 2019.`

func demoExtract(ctx context.Context, c *client.Client, cfg *config.Config) error {
	printHeader("Profile extraction")

	s := schema.NewObject("user_analysis").
		AddProperty("username", schema.TypeString, "Username of the user", true).
		AddEnumProperty("role", []string{"admin", "user", "guest"}, "User role", true).
		AddObjectProperty("profile", schema.Properties(
			schema.Prop("fullName", schema.String("Full name of the user")),
			schema.Prop("age", schema.Integer("Age of the user")),
			schema.Prop("city", schema.String("City of residence")),
		), []string{"fullName", "age", "city"}, "User profile information", true,
			schema.WithAdditionalProperties(false)).
		AddArrayProperty("skills", schema.String("A skill"), "Skills mentioned", true)

	if err := schema.Validate(s); err != nil {
		return err
	}

	result, err := c.CompleteWithSchema(ctx, s, "Extract the user described in the text.", profileText,
		cfg.RequestOptions()...)
	if err != nil {
		return err
	}
	printJSON(result)
	return nil
}
