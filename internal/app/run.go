package app

import (
	"context"

	"github.com/fpgaflow/gp4synth/internal/ctxlog"
	"github.com/fpgaflow/gp4synth/internal/flow"
)

// Run executes the synthesis flow with the App's dispatcher.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := flow.Run(ctx, &a.pipeline, a.parts, a.dispatcher); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
