// Command hamlet verifies combinatorial claims about edge-disjoint
// Hamiltonian paths and cycles on uniformly spaced points.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/hamlet/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the process configuration and hands control to the CLI.
func run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	return cli.Execute(ctx, cli.Options{
		Level:   cli.ParseLevel(cfg.LogLevel),
		NoColor: cfg.NoColor,
	})
}
