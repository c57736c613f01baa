package flow

// Advance computes the next active-window state at a stage boundary. A label
// equal to runFrom opens the window; a label equal to runTo closes it. The
// close is evaluated second against the already-updated state, so a stage
// whose label matches both ends up inactive: the range runs up to but not
// including runTo. Empty runFrom and runTo never match, since labels are
// always non-empty.
func Advance(active bool, runFrom, runTo, label string) bool {
	if label == runFrom {
		active = true
	}
	if label == runTo {
		active = false
	}
	return active
}
