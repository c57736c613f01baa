package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fpgaflow/gp4synth/internal/ctxlog"
)

// Validate performs a parity check between the catalog and the set of
// operations the stage table issues. An issued operation missing from the
// catalog is an error; a cataloged operation that is never issued is only
// logged, since embedders may register handlers for ops outside the fixed
// flow.
func (r *Registry) Validate(ctx context.Context, issued []string) error {
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]bool, len(issued))
	var missing []string
	for _, op := range issued {
		seen[op] = true
		if _, ok := r.defs[op]; !ok {
			missing = append(missing, op)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("stage table issues operations missing from the catalog: %s", strings.Join(missing, ", "))
	}

	var unused []string
	for name := range r.defs {
		if !seen[name] {
			unused = append(unused, name)
		}
	}
	if len(unused) > 0 {
		sort.Strings(unused)
		logger.Warn("Catalog declares operations the flow never issues.", "ops", unused)
	}
	return nil
}
