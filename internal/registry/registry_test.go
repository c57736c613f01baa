package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fpgaflow/gp4synth/internal/flow"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	require.True(t, reg.Known("nlutmap"))
	require.True(t, reg.Known("greenpak4_counters"))
	require.False(t, reg.Known("no_such_op"))

	def := reg.Definition("splitnets")
	require.NotNil(t, def)
	require.NotEmpty(t, def.Summary)
	require.Nil(t, reg.Definition("no_such_op"))
}

func TestValidate_StageTableParity(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	require.NoError(t, reg.Validate(context.Background(), flow.IssuedOps()))
}

func TestValidate_RejectsUncatalogedOp(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	err = reg.Validate(context.Background(), []string{"clean", "mystery_pass"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "mystery_pass")
}

func TestLoad_RejectsDuplicateOps(t *testing.T) {
	src := "op \"clean\" {\n  summary = \"a\"\n}\n\nop \"clean\" {\n  summary = \"b\"\n}\n"
	_, err := load([]byte(src), "test.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate operation "clean"`)
}

func TestRegisterOp(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	reg.RegisterOp("clean", func(context.Context, []string) error { return nil })

	require.Panics(t, func() {
		reg.RegisterOp("clean", func(context.Context, []string) error { return nil })
	}, "duplicate registration is a programmer error")

	require.Panics(t, func() {
		reg.RegisterOp("no_such_op", func(context.Context, []string) error { return nil })
	}, "registering an uncataloged op is a programmer error")
}

func TestDispatcher(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	var gotArgs []string
	failure := errors.New("mapping failed")
	reg.RegisterOp("nlutmap", func(_ context.Context, args []string) error {
		gotArgs = args
		return nil
	})
	reg.RegisterOp("stat", func(context.Context, []string) error {
		return failure
	})

	d := reg.Dispatcher()

	require.NoError(t, d.Invoke(context.Background(), "nlutmap", []string{"-luts", "0,6,8,2"}))
	require.Equal(t, []string{"-luts", "0,6,8,2"}, gotArgs)

	require.ErrorIs(t, d.Invoke(context.Background(), "stat", nil), failure)

	err = d.Invoke(context.Background(), "clean", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), `no handler registered for operation "clean"`)
}
