package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fpgaflow/gp4synth/internal/app"
	"github.com/fpgaflow/gp4synth/internal/cli"
	"github.com/fpgaflow/gp4synth/internal/dispatch"
)

// main is the entrypoint for the gp4synth tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The flow script goes to outW; logs and diagnostics go to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// App construction panics on build defects (bad embedded manifests, a
	// stage table out of sync with the catalog); recover to give the user a
	// clean message.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(errW, "A critical startup error occurred: %v\n", r)
			os.Exit(1)
		}
	}()

	synthApp := app.NewApp(errW, appConfig, dispatch.NewScript(outW))
	return synthApp.Run(context.Background())
}
