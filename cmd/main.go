package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/pickx/internal/shared"
	"github.com/urfave/cli/v3"
)

// exitCanceled is the exit status when the user closes a picker without confirming.
const exitCanceled = 130

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:     "pickx",
		Usage:    "Pick a value from a list with an animated terminal picker",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		switch {
		case errors.Is(err, shared.ErrCanceled):
			os.Exit(exitCanceled)
		case errors.Is(err, shared.ErrNotImplemented):
			logger.Warn("not implemented")
			os.Exit(0)
		default:
			logger.Fatalf("application error: %v", err)
		}
	}
}
