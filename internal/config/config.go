package config

import (
	"fmt"
	"strings"
)

// Config is the snapshot of one synthesis run's parameters. It is assembled
// before execution starts and never mutated while the flow runs.
type Config struct {
	// TopModule is the design's top-level module. Empty means auto-detect.
	TopModule string

	// Part is the target device identifier. The flow validates it against
	// the part table before any stage runs.
	Part string

	// RunFrom and RunTo bound the stages that execute. An empty RunFrom
	// starts the flow at the first stage; an empty RunTo runs it to the end.
	// A label that matches no stage is not an error: the corresponding end
	// of the window simply never triggers.
	RunFrom string
	RunTo   string

	// Flatten enables the hierarchy-flattening stage.
	Flatten bool

	// Retime enables the extra 'abc -dff' step in the fine stage.
	Retime bool

	// JSONPath, when non-empty, is where the final design is serialized.
	JSONPath string
}

// ParseRunRange splits a "from:to" range on its first colon. Either side may
// be empty; a value with no colon at all is malformed.
func ParseRunRange(s string) (from, to string, err error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return "", "", fmt.Errorf("malformed run range %q: expected <from_label>:<to_label>", s)
	}
	return from, to, nil
}
