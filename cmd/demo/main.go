package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spetersoncode/structured/client"
	"github.com/spetersoncode/structured/internal/config"
	"github.com/spetersoncode/structured/internal/logging"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	names := cfg.Args()
	if len(names) == 0 {
		printMenu()
		return nil
	}

	c, err := client.NewFromConfig(ctx, cfg.ClientConfig(logger))
	if err != nil {
		return err
	}
	logger.Info().
		Str("provider", c.Provider().Name().String()).
		Str("model", c.Model()).
		Msg("client ready")

	for _, name := range names {
		d, ok := findDemo(name)
		if !ok {
			return fmt.Errorf("unknown demo %q", name)
		}
		if err := d.Run(ctx, c, cfg); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
	}
	return nil
}
