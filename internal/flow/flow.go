// Package flow implements the staged synthesis pipeline: the fixed stage
// table, the label window that bounds a partial run, and the sequencer that
// drives a dispatcher through the active stages.
package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/fpgaflow/gp4synth/internal/config"
	"github.com/fpgaflow/gp4synth/internal/ctxlog"
	"github.com/fpgaflow/gp4synth/internal/dispatch"
	"github.com/fpgaflow/gp4synth/internal/part"
)

// ErrPartialSelection is returned when the dispatcher reports a design that
// is not fully selected.
var ErrPartialSelection = errors.New("flow only operates on fully selected designs")

// StageError identifies the operation whose failure aborted the run.
type StageError struct {
	Stage string
	Op    string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: operation %s failed: %v", e.Stage, e.Op, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Run drives the dispatcher through every stage inside the configured label
// window, in the fixed table order. The part id is validated before any
// stage runs, so no operation is issued for an unknown part. The first
// failing operation aborts the run; operations already completed are not
// rolled back.
//
// An unmatched RunFrom or RunTo label is not an error: the window simply
// never opens or closes, which can legitimately produce a run that executes
// no stage at all.
func Run(ctx context.Context, cfg *config.Config, parts *part.Table, d dispatch.Dispatcher) error {
	logger := ctxlog.FromContext(ctx)

	budget, err := parts.Lookup(cfg.Part)
	if err != nil {
		return err
	}
	if sel, ok := d.(dispatch.Selection); ok && !sel.FullSelection() {
		return ErrPartialSelection
	}

	logger.Info("Executing GreenPAK4 synthesis flow.", "part", cfg.Part)

	active := cfg.RunFrom == ""
	for _, st := range Stages() {
		if st.Enabled != nil && !st.Enabled(cfg) {
			logger.Debug("Stage disabled by configuration.", "stage", st.Label)
			continue
		}
		active = Advance(active, cfg.RunFrom, cfg.RunTo, st.Label)
		if !active {
			logger.Debug("Stage outside run range.", "stage", st.Label)
			continue
		}

		stageLogger := logger.With("stage", st.Label)
		stageLogger.Info("Running stage.")
		for _, inv := range st.Body(cfg, budget) {
			stageLogger.Debug("Dispatching operation.", "op", inv.Op, "args", inv.Args)
			if err := d.Invoke(ctx, inv.Op, inv.Args); err != nil {
				return &StageError{Stage: st.Label, Op: inv.Op, Err: err}
			}
		}
	}

	logger.Info("Synthesis flow finished.")
	return nil
}
