package guarded

import (
	"cmp"
	"sync/atomic"
	"syscall"
)

// populateStacktrace controls whether the call site of an unchecked write is
// captured per default or not. This is (obviously) a runtime setting - use the
// "errnostack" build tag to disable stacktrace captures at compile time.
var populateStacktrace = atomic.Bool{}

func init() {
	SetPopulateStacktrace(true)
}

func SetPopulateStacktrace(b bool) {
	populateStacktrace.Store(b)
}

func PopulateStacktrace() bool {
	return populateStacktrace.Load()
}

// Error is a single-owner wrapper around an error or status value of type E.
// It tracks whether the value has been examined since it was last written, and
// refuses - fatally - to discard a value that was never checked.
//
// An Error must be obtained from one of the constructors (New, From, NewErr,
// ...) or from another Error (Clone, Move); the zero value has no Traits and
// is not usable. A single Error instance must not be shared across goroutines
// without external synchronization.
//
// The obligation to check is discharged by OK or Failed (which mark the value
// checked), by Release (which extracts it), or by Reset (which explicitly
// clears it). Get and TryOK are inspection-only and discharge nothing, and
// neither do the comparison functions.
type Error[E any] struct {
	origin
	value       E
	traits      Traits[E]
	disposition Disposition
}

// New returns a wrapper holding the traits' success value. Its disposition is
// Defaulted: a value nobody supplied needs no checking and is safe to discard.
func New[E any](traits Traits[E]) *Error[E] {
	return &Error[E]{value: traits.Initiate(), traits: traits, disposition: Defaulted}
}

// From returns a wrapper owning the given raw value. Its disposition is
// Initiated: the value was supplied explicitly, so it counts as known.
func From[E any](traits Traits[E], raw E) *Error[E] {
	return &Error[E]{value: raw, traits: traits, disposition: Initiated}
}

// NewErr returns a wrapper over plain error values, holding nil.
func NewErr() *Error[error] {
	return New[error](ErrorTraits{})
}

// FromErr returns a wrapper owning the given error value.
func FromErr(err error) *Error[error] {
	return From[error](ErrorTraits{}, err)
}

// NewErrno returns a wrapper over syscall.Errno status codes, holding zero.
func NewErrno() *Error[syscall.Errno] {
	return New[syscall.Errno](ErrnoTraits{})
}

// FromErrno returns a wrapper owning the given status code.
func FromErrno(no syscall.Errno) *Error[syscall.Errno] {
	return From[syscall.Errno](ErrnoTraits{}, no)
}

// Clone returns a new wrapper holding a copy of the value. The clone's
// disposition is Unchecked regardless of the receiver's: the new owner has not
// examined the value, whatever the previous owner did. The receiver is left
// untouched.
func (g *Error[E]) Clone() *Error[E] {
	c := &Error[E]{value: g.value, traits: g.traits, disposition: Unchecked}
	c.captureOrigin(2)
	return c
}

// Move transfers ownership of the value into a new wrapper and returns it.
// The new wrapper's disposition is Unchecked; the receiver is released and
// left cleared and safe to discard.
func (g *Error[E]) Move() *Error[E] {
	m := &Error[E]{traits: g.traits, disposition: Unchecked}
	m.value = g.Release()
	m.captureOrigin(2)
	return m
}

// Adopt transfers ownership of src's value into the receiver and returns the
// receiver. src is released and left cleared; the receiver's disposition
// becomes Unchecked.
//
// Like assignment to a single-owner handle, Adopt discards the receiver's
// previous value without the overwrite check that Reset enforces. This is a
// deliberate asymmetry, not an oversight.
func (g *Error[E]) Adopt(src *Error[E]) *Error[E] {
	g.value = src.Release()
	g.disposition = Unchecked
	g.captureOrigin(2)
	return g
}

// Copy copies src's value into the receiver and returns the receiver. src is
// left untouched; the receiver's disposition becomes Unchecked.
//
// Like Adopt, Copy bypasses the overwrite check on the receiver.
func (g *Error[E]) Copy(src *Error[E]) *Error[E] {
	g.value = src.value
	g.disposition = Unchecked
	g.captureOrigin(2)
	return g
}

// Swap exchanges value, disposition and recorded origin with other.
func (g *Error[E]) Swap(other *Error[E]) {
	g.value, other.value = other.value, g.value
	g.disposition, other.disposition = other.disposition, g.disposition
	g.swapOrigin(&other.origin)
}

// Reset clears the wrapper to the traits' success value and disposition
// Defaulted, and returns the receiver for chaining.
//
// Fatal if the current value is Unchecked.
func (g *Error[E]) Reset() *Error[E] {
	g.clear("reset")
	return g
}

// ResetTo overwrites the wrapper with the given raw value, typically the
// return value of an API call. The disposition becomes Unchecked: the caller
// now owes a check, even if raw happens to be a success value.
//
// Fatal if the current value is Unchecked.
func (g *Error[E]) ResetTo(raw E) *Error[E] {
	g.assertChecked("reset")
	g.value = raw
	g.disposition = Unchecked
	g.captureOrigin(2)
	return g
}

// Release extracts and returns the wrapped value, leaving the wrapper cleared
// and safe to discard. Release never fails: extracting the value is itself a
// form of taking note of it.
func (g *Error[E]) Release() E {
	g.disposition = Released
	v := g.value
	g.clear("release")
	return v
}

// Get returns the wrapped value. Inspection only: the disposition is not
// changed and the obligation to check is not discharged.
func (g *Error[E]) Get() E {
	return g.value
}

// TryOK reports whether the wrapped value is a success value. Inspection only,
// like Get.
func (g *Error[E]) TryOK() bool {
	return g.traits.OK(g.value)
}

// OK reports whether the wrapped value is a success value and marks it
// checked. This is the canonical way to discharge the obligation without
// clearing or releasing the value.
func (g *Error[E]) OK() bool {
	g.disposition = Checked
	return g.TryOK()
}

// Failed reports whether the wrapped value is an error, i.e. !OK(). Like OK
// it marks the value checked, so
//
//	if ge.Failed() {
//	    return ge.Release()
//	}
//
// satisfies the obligation on both paths.
func (g *Error[E]) Failed() bool {
	return !g.OK()
}

// Disposition returns the current disposition.
func (g *Error[E]) Disposition() Disposition {
	return g.disposition
}

// Close clears the wrapper like Reset and is meant to be deferred when the
// wrapper leaves scope:
//
//	ge := guarded.NewErr()
//	defer ge.Close()
//
// Fatal if the value is still Unchecked - forgetting to check before the
// wrapper goes out of scope is exactly the bug this type exists to catch.
func (g *Error[E]) Close() {
	g.clear("close")
}

func (g *Error[E]) clear(op string) {
	g.assertChecked(op)
	g.value = g.traits.Initiate()
	g.disposition = Defaulted
	g.clearOrigin()
}

func (g *Error[E]) assertChecked(op string) {
	if g.disposition != Unchecked {
		return
	}
	fail(&Violation{Op: op, Disposition: g.disposition, Origin: g.originTrace()})
}

// Swap exchanges the contents of a and b.
func Swap[E any](a, b *Error[E]) {
	a.Swap(b)
}

// Equal reports whether lhs and rhs hold equal values. Comparisons are
// inspection-only: they do not mark either value checked, so a comparison
// alone never makes a subsequent overwrite safe.
func Equal[E comparable](lhs, rhs *Error[E]) bool {
	return lhs.Get() == rhs.Get()
}

// EqualValue reports whether lhs holds a value equal to raw. Inspection only.
func EqualValue[E comparable](lhs *Error[E], raw E) bool {
	return lhs.Get() == raw
}

// Less reports whether lhs's value orders before rhs's. Inspection only.
func Less[E cmp.Ordered](lhs, rhs *Error[E]) bool {
	return lhs.Get() < rhs.Get()
}

// LessValue reports whether lhs's value orders before raw. Inspection only.
func LessValue[E cmp.Ordered](lhs *Error[E], raw E) bool {
	return lhs.Get() < raw
}

// Compare compares the values of lhs and rhs like cmp.Compare. Inspection
// only.
func Compare[E cmp.Ordered](lhs, rhs *Error[E]) int {
	return cmp.Compare(lhs.Get(), rhs.Get())
}
