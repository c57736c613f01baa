// Package testutil provides dispatcher doubles shared by the package tests.
package testutil

import (
	"context"
	"fmt"
)

// Call is one recorded dispatcher invocation.
type Call struct {
	Op   string
	Args []string
}

// Recorder records every invocation in order and can be programmed to fail
// on a named operation. It satisfies both dispatch.Dispatcher and
// dispatch.Selection.
type Recorder struct {
	Calls []Call

	// FailOn makes the named operation return an error after being recorded.
	FailOn string

	// Partial makes FullSelection report false.
	Partial bool
}

// Invoke records the call and fails if op matches FailOn.
func (r *Recorder) Invoke(_ context.Context, op string, args []string) error {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
	if r.FailOn != "" && op == r.FailOn {
		return fmt.Errorf("operation %s failed", op)
	}
	return nil
}

// FullSelection reports the programmed selection state.
func (r *Recorder) FullSelection() bool { return !r.Partial }

// Ops returns just the operation names, in invocation order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}
