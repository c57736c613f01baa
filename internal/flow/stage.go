package flow

import (
	"github.com/fpgaflow/gp4synth/internal/config"
	"github.com/fpgaflow/gp4synth/internal/part"
)

// Invocation is one operation issued by a stage body.
type Invocation struct {
	Op   string
	Args []string
}

// Stage is one named entry in the fixed pipeline order.
type Stage struct {
	// Label names the stage's entry checkpoint for -run ranges.
	Label string

	// Enabled gates the whole stage on the run configuration. A disabled
	// stage is invisible to the label window: its label never advances the
	// range state. Nil means always enabled.
	Enabled func(cfg *config.Config) bool

	// Body returns the stage's operation invocations in dispatch order.
	Body func(cfg *config.Config, budget part.Budget) []Invocation
}

// dffTypes are the sequential cell variants that need initial-value
// propagation after cell mapping.
var dffTypes = []string{"GP_DFF", "GP_DFFR", "GP_DFFS", "GP_DFFSR"}

// Stages returns the fixed stage table. The order is part of the tool's
// contract: -run labels address stages by their position in this sequence,
// and reordering entries is a compatibility break.
func Stages() []Stage {
	return []Stage{
		{
			Label: "begin",
			Body: func(cfg *config.Config, _ part.Budget) []Invocation {
				hierarchy := []string{"-check", "-auto-top"}
				if cfg.TopModule != "" {
					hierarchy = []string{"-check", "-top", cfg.TopModule}
				}
				return []Invocation{
					{Op: "read_verilog", Args: []string{"-lib", "+/greenpak4/cells_sim.v"}},
					{Op: "hierarchy", Args: hierarchy},
				}
			},
		},
		{
			Label:   "flatten",
			Enabled: func(cfg *config.Config) bool { return cfg.Flatten },
			Body: func(*config.Config, part.Budget) []Invocation {
				return []Invocation{
					{Op: "proc"},
					{Op: "flatten"},
					{Op: "tribuf", Args: []string{"-logic"}},
				}
			},
		},
		{
			Label: "coarse",
			Body: func(*config.Config, part.Budget) []Invocation {
				return []Invocation{
					{Op: "synth", Args: []string{"-run", "coarse"}},
				}
			},
		},
		{
			Label: "fine",
			Body: func(cfg *config.Config, _ part.Budget) []Invocation {
				invs := []Invocation{
					{Op: "greenpak4_counters"},
					{Op: "clean"},
					{Op: "opt", Args: []string{"-fast", "-mux_undef", "-undriven", "-fine"}},
					{Op: "memory_map"},
					{Op: "opt", Args: []string{"-undriven", "-fine"}},
					{Op: "techmap"},
					{Op: "dfflibmap", Args: []string{"-prepare", "-liberty", "+/greenpak4/gp_dff.lib"}},
					{Op: "opt", Args: []string{"-fast"}},
				}
				if cfg.Retime {
					invs = append(invs, Invocation{Op: "abc", Args: []string{"-dff"}})
				}
				return invs
			},
		},
		{
			Label: "map_luts",
			Body: func(_ *config.Config, budget part.Budget) []Invocation {
				return []Invocation{
					{Op: "nlutmap", Args: []string{"-luts", budget.String()}},
					{Op: "clean"},
				}
			},
		},
		{
			Label: "map_cells",
			Body: func(*config.Config, part.Budget) []Invocation {
				invs := []Invocation{
					{Op: "dfflibmap", Args: []string{"-liberty", "+/greenpak4/gp_dff.lib"}},
					{Op: "techmap", Args: []string{"-map", "+/greenpak4/cells_map.v"}},
				}
				for _, ff := range dffTypes {
					invs = append(invs, Invocation{Op: "dffinit", Args: []string{"-ff", ff, "Q", "INIT"}})
				}
				return append(invs, Invocation{Op: "clean"})
			},
		},
		{
			Label: "check",
			Body: func(*config.Config, part.Budget) []Invocation {
				return []Invocation{
					{Op: "hierarchy", Args: []string{"-check"}},
					{Op: "stat"},
					{Op: "check", Args: []string{"-noinit"}},
				}
			},
		},
		{
			Label: "json",
			Body: func(cfg *config.Config, _ part.Budget) []Invocation {
				// splitnets normalizes the netlist for the JSON writer's
				// input grammar and runs even when no file is written.
				invs := []Invocation{{Op: "splitnets"}}
				if cfg.JSONPath != "" {
					invs = append(invs, Invocation{Op: "write_json", Args: []string{cfg.JSONPath}})
				}
				return invs
			},
		},
	}
}

// IssuedOps returns every operation name the stage table can issue under any
// flag combination, for catalog parity validation.
func IssuedOps() []string {
	cfg := &config.Config{
		TopModule: "top",
		Flatten:   true,
		Retime:    true,
		JSONPath:  "design.json",
	}

	var ops []string
	seen := make(map[string]bool)
	for _, st := range Stages() {
		for _, inv := range st.Body(cfg, part.Budget{}) {
			if !seen[inv.Op] {
				seen[inv.Op] = true
				ops = append(ops, inv.Op)
			}
		}
	}
	return ops
}
