package guarded_test

import (
	"errors"
	"fmt"

	"github.com/eluv-io/guarded-go"
)

func ExampleError() {
	ge := guarded.NewErr()
	defer ge.Close()

	// wrap the result of a fallible call
	ge.ResetTo(errors.New("connection refused"))
	if ge.Failed() {
		fmt.Println("call failed:", ge.Get())
	}

	// checked, so overwriting with the next result is fine
	ge.ResetTo(nil)
	fmt.Println("ok:", ge.OK())

	// Output:
	// call failed: connection refused
	// ok: true
}

func ExampleError_Release() {
	open := func(name string) error {
		return fmt.Errorf("open %s: no such file", name)
	}

	ge := guarded.NewErr()
	defer ge.Close()

	ge.ResetTo(open("settings.yaml"))
	if ge.Failed() {
		// hand the error on; releasing discharges the obligation too
		err := ge.Release()
		fmt.Println(err)
	}

	// Output:
	// open settings.yaml: no such file
}

// exitStatus is a distinct named type for a process exit status, with 0 as the
// success value. Each status-code domain gets its own type - traits over bare
// integers are deliberately not provided.
type exitStatus int

type exitStatusTraits struct{}

func (exitStatusTraits) Initiate() exitStatus { return 0 }
func (exitStatusTraits) OK(s exitStatus) bool { return s == 0 }

func ExampleTraits() {
	ge := guarded.New[exitStatus](exitStatusTraits{})
	defer ge.Close()

	ge.ResetTo(127)
	if ge.Failed() {
		fmt.Println("command exited with status", ge.Get())
	}

	// Output:
	// command exited with status 127
}
