package registry

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/fpgaflow/gp4synth/internal/dispatch"
)

//go:embed ops.hcl
var manifest []byte

// Definition describes one operation declared in the catalog.
type Definition struct {
	Name    string `hcl:"name,label"`
	Summary string `hcl:"summary"`
}

// manifestFile is the top-level structure of the operation catalog for decoding.
type manifestFile struct {
	Ops []*Definition `hcl:"op,block"`
}

// Handler executes one operation against the shared design.
type Handler func(ctx context.Context, args []string) error

// Registry holds the operation catalog and any Go handlers attached to it.
type Registry struct {
	defs     map[string]*Definition
	handlers map[string]Handler
}

// Load parses the embedded operation catalog into a Registry.
func Load() (*Registry, error) {
	return load(manifest, "ops.hcl")
}

func load(src []byte, filename string) (*Registry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse operation catalog: %w", diags)
	}

	var mf manifestFile
	if diags := gohcl.DecodeBody(file.Body, nil, &mf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode operation catalog: %w", diags)
	}

	r := &Registry{
		defs:     make(map[string]*Definition, len(mf.Ops)),
		handlers: make(map[string]Handler),
	}
	for _, def := range mf.Ops {
		if _, exists := r.defs[def.Name]; exists {
			return nil, fmt.Errorf("duplicate operation %q in catalog", def.Name)
		}
		r.defs[def.Name] = def
	}
	return r, nil
}

// Known reports whether name is declared in the catalog.
func (r *Registry) Known(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Definition returns the catalog entry for name, or nil if it is undeclared.
func (r *Registry) Definition(name string) *Definition {
	return r.defs[name]
}

// RegisterOp attaches a Go handler for a cataloged operation. Registering a
// handler twice, or for an operation missing from the catalog, is a
// programmer error.
func (r *Registry) RegisterOp(name string, fn Handler) {
	if _, known := r.defs[name]; !known {
		panic(fmt.Sprintf("operation %q not declared in catalog", name))
	}
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("handler for operation %q already registered", name))
	}
	slog.Debug("Registering operation handler.", "op", name)
	r.handlers[name] = fn
}

// Dispatcher adapts the registered handlers into the flow's dispatch
// capability. Invoking an operation with no registered handler fails.
func (r *Registry) Dispatcher() dispatch.Dispatcher {
	return &registryDispatcher{reg: r}
}

type registryDispatcher struct {
	reg *Registry
}

func (d *registryDispatcher) Invoke(ctx context.Context, op string, args []string) error {
	fn, ok := d.reg.handlers[op]
	if !ok {
		return fmt.Errorf("no handler registered for operation %q", op)
	}
	return fn(ctx, args)
}
