package guarded

import (
	"bytes"
	"fmt"
	"os"
	"sync/atomic"
)

// Violation describes a broken check discipline: an operation tried to discard
// a value whose disposition was still Unchecked. In normal operation a
// Violation is printed and the process terminates; it only travels as a value
// when a custom Handler (e.g. PanicOnViolation) is installed.
type Violation struct {
	// Op is the refused operation: "reset", "close".
	Op string
	// Disposition is the disposition that caused the refusal.
	Disposition Disposition
	// Origin is the formatted call stack of the write that produced the
	// unchecked value, or "" if capture was disabled.
	Origin string
}

func (v *Violation) Error() string {
	b := new(bytes.Buffer)
	fmt.Fprintf(b, "error was not checked: op [%s] disposition [%s]", v.Op, v.Disposition)
	if v.Origin != "" {
		b.WriteString("\nvalue written at:\n")
		b.WriteString(v.Origin)
	}
	return b.String()
}

// Handler is called with the violation when the check discipline is broken.
// A handler is expected not to return: the discipline cannot be restored after
// the fact. If it returns anyway, the process is terminated.
type Handler func(v *Violation)

var handler atomic.Value // of Handler

func init() {
	handler.Store(Handler(Terminate))
}

// SetHandler installs the given violation handler. Passing nil restores the
// default Terminate handler.
//
// The only intended non-default handler is PanicOnViolation (or a test
// handler of the same spirit): production code should let violations
// terminate the process.
func SetHandler(h Handler) {
	if h == nil {
		h = Terminate
	}
	handler.Store(h)
}

// Terminate is the default Handler: it prints the violation to stderr and
// exits the process.
func Terminate(v *Violation) {
	_, _ = fmt.Fprintln(os.Stderr, v.Error())
	os.Exit(2)
}

// PanicOnViolation is a Handler that panics with the *Violation instead of
// terminating the process. It exists so that the check discipline itself can
// be exercised in tests.
func PanicOnViolation(v *Violation) {
	panic(v)
}

func fail(v *Violation) {
	handler.Load().(Handler)(v)
	// the handler was not supposed to return
	os.Exit(2)
}
