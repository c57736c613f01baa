package dispatch

import "context"

// Dispatcher executes one named operation against the shared design. The
// flow treats every operation as opaque: it issues a name and arguments and
// expects the design to be mutated in place before Invoke returns.
type Dispatcher interface {
	Invoke(ctx context.Context, op string, args []string) error
}

// Selection is implemented by dispatchers that know the selection state of
// the design they operate on. The flow refuses to start when the design is
// not fully selected.
type Selection interface {
	FullSelection() bool
}
