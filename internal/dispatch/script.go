package dispatch

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Script renders every invocation as one command line, producing a flow
// script a synthesis kernel can replay. It is the dispatcher the shipped
// binary wires by default.
type Script struct {
	w io.Writer
}

// NewScript returns a Script dispatcher writing to w.
func NewScript(w io.Writer) *Script {
	return &Script{w: w}
}

// Invoke writes the operation and its arguments as a single line.
func (s *Script) Invoke(_ context.Context, op string, args []string) error {
	line := op
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		return fmt.Errorf("failed to write script line for %s: %w", op, err)
	}
	return nil
}

// FullSelection reports true: a script target has no selection to narrow.
func (s *Script) FullSelection() bool { return true }
