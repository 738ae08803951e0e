//go:build !errnostack

package guarded_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eluv-io/guarded-go"
)

func TestViolationOrigin(t *testing.T) {
	ge := guarded.NewErr()
	ge.ResetTo(io.EOF)

	v := catchViolation(t, func() { ge.Reset() })
	// the origin points at the write that was never checked, not at the
	// refused operation
	assert.Contains(t, v.Origin, "stack_test.go")
	assert.Contains(t, v.Origin, "TestViolationOrigin()")
	ge.Release()
	ge.Close()
}

func TestViolationOriginFromClone(t *testing.T) {
	a := guarded.FromErr(io.EOF)
	c := a.Clone()

	v := catchViolation(t, func() { c.Close() })
	assert.Contains(t, v.Origin, "TestViolationOriginFromClone()")
	c.Release()
	c.Close()
	a.Release()
	a.Close()
}

func TestNoOriginWhenDisabled(t *testing.T) {
	guarded.SetPopulateStacktrace(false)
	defer guarded.SetPopulateStacktrace(true)

	ge := guarded.NewErr()
	ge.ResetTo(io.EOF)
	v := catchViolation(t, func() { ge.Reset() })
	assert.Empty(t, v.Origin)
	ge.Release()
	ge.Close()
}
