//go:build !errnostack

package guarded

import (
	"bytes"
	"fmt"

	gostack "github.com/eluv-io/stack"
)

// origin is a type that is embedded in an Error struct, and records the call
// stack of the write that put the wrapper into the Unchecked state. If that
// value is then discarded without being checked, the recorded stack is
// reported with the violation, pointing at the write that was never followed
// up on.
type origin struct {
	pcs []uintptr // the program counters returned by runtime.Callers()
}

// captureOrigin uses the runtime to record the current stack. It should be
// called from the exported operation that performs the unchecked write; skip
// removes captureOrigin() and that operation from the trace.
func (o *origin) captureOrigin(skip int) {
	if !PopulateStacktrace() {
		o.pcs = nil
		return
	}
	o.pcs = gostack.Callers(skip)
}

func (o *origin) clearOrigin() {
	o.pcs = nil
}

func (o *origin) swapOrigin(p *origin) {
	o.pcs, p.pcs = p.pcs, o.pcs
}

// originTrace formats the recorded stack, one call per line.
func (o *origin) originTrace() string {
	if o.pcs == nil {
		return ""
	}
	b := new(bytes.Buffer)
	for _, call := range gostack.TraceFrom(o.pcs).TrimRuntime() {
		fmt.Fprintf(b, "\t%+v\t%[1]n()\n", call)
	}
	return b.String()
}
