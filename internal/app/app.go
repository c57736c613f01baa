package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fpgaflow/gp4synth/internal/config"
	"github.com/fpgaflow/gp4synth/internal/ctxlog"
	"github.com/fpgaflow/gp4synth/internal/dispatch"
	"github.com/fpgaflow/gp4synth/internal/flow"
	"github.com/fpgaflow/gp4synth/internal/part"
	"github.com/fpgaflow/gp4synth/internal/registry"
)

// Config holds everything an App instance needs for one synthesis run.
type Config struct {
	LogLevel  string
	LogFormat string

	Pipeline config.Config
}

// App encapsulates the tool's dependencies, configuration, and lifecycle.
type App struct {
	logW       io.Writer
	logger     *slog.Logger
	parts      *part.Table
	registry   *registry.Registry
	dispatcher dispatch.Dispatcher
	pipeline   config.Config
}

// NewApp constructs a fully initialized App with its own isolated logger.
// Failures here are build defects (unparseable embedded manifests, a stage
// table out of sync with the operation catalog), so they panic; the CLI
// entrypoint recovers and turns them into a clean exit.
func NewApp(logW io.Writer, appConfig *Config, d dispatch.Dispatcher) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	parts, err := part.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load part table: %w", err))
	}
	logger.Debug("Part table loaded.", "parts", parts.Names(), "default", parts.Default())

	reg, err := registry.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load operation catalog: %w", err))
	}
	if err := reg.Validate(ctx, flow.IssuedOps()); err != nil {
		panic(err)
	}
	logger.Debug("Operation catalog validated against the stage table.")

	pipeline := appConfig.Pipeline
	if pipeline.Part == "" {
		pipeline.Part = parts.Default()
		logger.Debug("No part requested, using the default.", "part", pipeline.Part)
	}

	return &App{
		logW:       logW,
		logger:     logger,
		parts:      parts,
		registry:   reg,
		dispatcher: d,
		pipeline:   pipeline,
	}
}

// Registry returns the application's operation registry so embedders can
// attach handlers before Run.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Parts returns the loaded target parameter table.
func (a *App) Parts() *part.Table {
	return a.parts
}
