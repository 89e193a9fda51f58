// Package config loads command-line configuration with
// flags > env > .env > file > defaults precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spetersoncode/structured"
	"github.com/spetersoncode/structured/client"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read from the working directory.
const DefaultFile = "structured.yaml"

// Config holds the settings for building a client.
type Config struct {
	Provider     string   `yaml:"provider"`
	Model        string   `yaml:"model"`
	BaseURL      string   `yaml:"base-url"`
	LogLevel     string   `yaml:"log-level"`
	MaxTokens    int      `yaml:"max-tokens"`
	Temperature  *float64 `yaml:"temperature"` // nil leaves the provider default
	OpenAIKey    string   `yaml:"openai-api-key"`
	AnthropicKey string   `yaml:"anthropic-api-key"`
	GoogleKey    string   `yaml:"google-api-key"`

	args []string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: structured.ProviderOpenAI.String(),
		LogLevel: "info",
	}
}

// Load builds a Config by merging CLI flags, environment variables, a .env
// file and the YAML config file. The file defaults to DefaultFile and can be
// changed with --config; a missing file is not an error.
func Load(args []string) (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath(args)
	if err != nil {
		return nil, err
	}
	if err := cfg.loadYAML(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	// Existing environment variables win over .env entries.
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configPath finds --config before the other flags are known.
func configPath(args []string) (string, error) {
	fset := flag.NewFlagSet("structured-config", flag.ContinueOnError)
	fset.ParseErrorsWhitelist.UnknownFlags = true
	fset.Usage = func() {}
	path := fset.String("config", DefaultFile, "")
	fset.BoolP("help", "h", false, "")
	if err := fset.Parse(args); err != nil {
		return "", err
	}
	return *path, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("STRUCTURED_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("STRUCTURED_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("STRUCTURED_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("STRUCTURED_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.AnthropicKey = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		c.GoogleKey = v
	}
}

func (c *Config) parseFlags(args []string) error {
	fset := flag.NewFlagSet("structured", flag.ContinueOnError)
	fset.String("config", DefaultFile, "Path to the YAML config file")
	fset.StringVar(&c.Provider, "provider", c.Provider, "Provider (openai, anthropic, google)")
	fset.StringVar(&c.Model, "model", c.Model, "Model name; empty uses the provider default")
	fset.StringVar(&c.BaseURL, "base-url", c.BaseURL, "API base URL override")
	fset.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fset.IntVar(&c.MaxTokens, "max-tokens", c.MaxTokens, "Maximum tokens to generate")
	var temperature float64
	if c.Temperature != nil {
		temperature = *c.Temperature
	}
	fset.Float64Var(&temperature, "temperature", temperature, "Sampling temperature; unset uses the provider default")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.Changed("temperature") {
		c.Temperature = &temperature
	}
	c.args = fset.Args()
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// Validate reports settings that cannot produce a client.
func (c *Config) Validate() error {
	switch structured.ProviderName(c.Provider) {
	case structured.ProviderOpenAI, structured.ProviderAnthropic, structured.ProviderGoogle:
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("config: max-tokens must not be negative, got %d", c.MaxTokens)
	}
	return nil
}

// ClientConfig converts the settings into a client configuration.
func (c *Config) ClientConfig(logger zerolog.Logger) client.Config {
	return client.Config{
		Provider: structured.ProviderName(c.Provider),
		Model:    c.Model,
		BaseURL:  c.BaseURL,
		APIKeys: client.APIKeys{
			OpenAI:    c.OpenAIKey,
			Anthropic: c.AnthropicKey,
			Google:    c.GoogleKey,
		},
		Logger: &logger,
	}
}

// RequestOptions returns the per-request options implied by the settings.
func (c *Config) RequestOptions() []structured.Option {
	var opts []structured.Option
	if c.Temperature != nil {
		opts = append(opts, structured.WithTemperature(*c.Temperature))
	}
	if c.MaxTokens > 0 {
		opts = append(opts, structured.WithMaxTokens(c.MaxTokens))
	}
	return opts
}
