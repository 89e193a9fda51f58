package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spetersoncode/structured/client"
	"github.com/spetersoncode/structured/internal/config"
)

// Demo represents a single demo with its metadata.
type Demo struct {
	Name        string
	Description string
	Run         func(ctx context.Context, c *client.Client, cfg *config.Config) error
}

// demos is the registry of all available demos.
var demos = []Demo{
	{Name: "categorize", Description: "Classify contacts as Real or Fake", Run: demoCategorize},
	{Name: "extract", Description: "Extract a nested user profile from free text", Run: demoExtract},
	{Name: "typed", Description: "Decode a categorization into a Go struct", Run: demoTyped},
	{Name: "history", Description: "Optional array property with no required keys", Run: demoHistory},
}

func findDemo(name string) (Demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

func printMenu() {
	fmt.Println("Usage: demo [flags] <demo>...")
	fmt.Println()
	fmt.Println("Available demos:")
	for _, d := range demos {
		fmt.Printf("  %-12s %s\n", d.Name, d.Description)
	}
	fmt.Println()
	fmt.Println("Flags: --provider, --model, --base-url, --log-level, --max-tokens, --temperature, --config")
}

func printHeader(title string) {
	fmt.Println()
	fmt.Printf("── %s ──\n", title)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "  ", "  ")
	if err != nil {
		fmt.Printf("  %v\n", v)
		return
	}
	fmt.Printf("  %s\n", data)
}
