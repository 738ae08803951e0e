package guarded_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eluv-io/guarded-go"
)

func TestViolationError(t *testing.T) {
	v := &guarded.Violation{Op: "close", Disposition: guarded.Unchecked}
	assert.Equal(t, "error was not checked: op [close] disposition [unchecked]", v.Error())

	v.Origin = "\tmain.go:10\tmain()\n"
	assert.Equal(t,
		"error was not checked: op [close] disposition [unchecked]\n"+
			"value written at:\n"+
			"\tmain.go:10\tmain()\n",
		v.Error())
}

func TestHandlerReceivesViolation(t *testing.T) {
	var got *guarded.Violation
	guarded.SetHandler(func(v *guarded.Violation) {
		got = v
		panic(v)
	})
	defer guarded.SetHandler(guarded.PanicOnViolation)

	ge := guarded.NewErr()
	ge.ResetTo(io.EOF)
	func() {
		defer func() { _ = recover() }()
		ge.Close()
	}()

	require.NotNil(t, got)
	assert.Equal(t, "close", got.Op)
	assert.Equal(t, guarded.Unchecked, got.Disposition)
	ge.Release()
	ge.Close()
}
