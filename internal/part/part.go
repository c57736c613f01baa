// Package part holds the target parameter table: the enumerated GreenPAK4
// device identifiers and the LUT resource budget consumed by the
// technology-mapping stage.
//
// The table is declared in the embedded parts.hcl manifest and parsed once
// per Load call; after loading it is read-only.
package part

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

//go:embed parts.hcl
var manifest []byte

// Budget is the per-part LUT resource tuple, ordered by LUT arity.
type Budget [4]int

// String renders the budget in the comma-joined form nlutmap expects.
func (b Budget) String() string {
	elems := make([]string, len(b))
	for i, n := range b {
		elems[i] = strconv.Itoa(n)
	}
	return strings.Join(elems, ",")
}

// Table maps part identifiers to their resource budgets.
type Table struct {
	budgets     map[string]Budget
	names       []string
	defaultPart string
}

// manifestFile is the top-level structure of the part manifest for decoding.
type manifestFile struct {
	Parts []*partBlock `hcl:"part,block"`
}

type partBlock struct {
	Name    string         `hcl:"name,label"`
	LUTs    hcl.Expression `hcl:"luts"`
	Default bool           `hcl:"default,optional"`
}

// Load parses the embedded part manifest into a Table.
func Load() (*Table, error) {
	return load(manifest, "parts.hcl")
}

func load(src []byte, filename string) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse part manifest: %w", diags)
	}

	var mf manifestFile
	if diags := gohcl.DecodeBody(file.Body, nil, &mf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode part manifest: %w", diags)
	}

	t := &Table{budgets: make(map[string]Budget, len(mf.Parts))}
	for _, blk := range mf.Parts {
		if _, exists := t.budgets[blk.Name]; exists {
			return nil, fmt.Errorf("duplicate part %q in manifest", blk.Name)
		}
		budget, err := decodeBudget(blk.LUTs)
		if err != nil {
			return nil, fmt.Errorf("part %q: %w", blk.Name, err)
		}
		t.budgets[blk.Name] = budget
		t.names = append(t.names, blk.Name)
		if blk.Default {
			if t.defaultPart != "" {
				return nil, fmt.Errorf("parts %q and %q are both marked default", t.defaultPart, blk.Name)
			}
			t.defaultPart = blk.Name
		}
	}
	if len(t.names) == 0 {
		return nil, fmt.Errorf("part manifest declares no parts")
	}
	if t.defaultPart == "" {
		return nil, fmt.Errorf("part manifest declares no default part")
	}
	return t, nil
}

// decodeBudget evaluates a luts expression into the four-integer tuple.
func decodeBudget(expr hcl.Expression) (Budget, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return Budget{}, fmt.Errorf("failed to evaluate luts: %w", diags)
	}
	if !val.CanIterateElements() {
		return Budget{}, fmt.Errorf("luts must be a list of numbers, got %s", val.Type().FriendlyName())
	}

	var budget Budget
	i := 0
	for it := val.ElementIterator(); it.Next(); i++ {
		if i >= len(budget) {
			return Budget{}, fmt.Errorf("luts must have exactly %d entries", len(budget))
		}
		_, elem := it.Element()
		if elem.Type() != cty.Number {
			return Budget{}, fmt.Errorf("luts[%d] must be a number, got %s", i, elem.Type().FriendlyName())
		}
		n, _ := elem.AsBigFloat().Int64()
		if n < 0 {
			return Budget{}, fmt.Errorf("luts[%d] must be non-negative, got %d", i, n)
		}
		budget[i] = int(n)
	}
	if i != len(budget) {
		return Budget{}, fmt.Errorf("luts must have exactly %d entries, got %d", len(budget), i)
	}
	return budget, nil
}

// Lookup returns the budget for id. An unknown id yields an error naming the
// valid parts.
func (t *Table) Lookup(id string) (Budget, error) {
	budget, ok := t.budgets[id]
	if !ok {
		return Budget{}, fmt.Errorf("invalid part name %q: valid parts are %s", id, strings.Join(t.names, ", "))
	}
	return budget, nil
}

// Valid reports whether id names a known part.
func (t *Table) Valid(id string) bool {
	_, ok := t.budgets[id]
	return ok
}

// Default returns the part used when the caller requests none.
func (t *Table) Default() string { return t.defaultPart }

// Names returns the part identifiers in manifest order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}
