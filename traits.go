package guarded

import "syscall"

// Traits binds a concrete error or status type E to the two operations the
// guarded wrapper needs: the canonical success value and the success test.
//
// Implementations must be pure and must satisfy OK(Initiate()) == true.
//
// Traits are defined per error domain. Deliberately, no traits over bare
// integral types are provided: a bare int is ambiguous (is 0 success? is -1?),
// so each status-code domain gets its own named type with its own traits. See
// ExampleTraits for the pattern.
type Traits[E any] interface {
	// Initiate returns the canonical "no error" value for E.
	Initiate() E
	// OK reports whether e represents success.
	OK(e E) bool
}

// ErrorTraits are the Traits for plain error values: nil is success.
type ErrorTraits struct{}

func (ErrorTraits) Initiate() error { return nil }
func (ErrorTraits) OK(e error) bool { return e == nil }

// ErrnoTraits are the Traits for syscall.Errno status codes: zero is success.
type ErrnoTraits struct{}

func (ErrnoTraits) Initiate() syscall.Errno { return 0 }
func (ErrnoTraits) OK(e syscall.Errno) bool { return e == 0 }
