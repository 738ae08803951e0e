package guarded

// Disposition tracks whether the value held by an Error has been examined
// since it was last written. It is the entire state of the check-before-
// overwrite machine: an overwrite-class operation (Reset, ResetTo, Close) is
// refused exactly when the disposition is Unchecked.
type Disposition int8

const (
	// Initiated means the value was supplied directly by the caller at
	// construction. Its origin is explicit, so it counts as known and may be
	// discarded without checking.
	Initiated Disposition = iota + 1
	// Defaulted means the value is the traits' success value and was never
	// supplied by anyone. Safe to discard.
	Defaulted
	// Released means the value was extracted with Release. The wrapper holds
	// the success value and is safe to discard.
	Released
	// Checked means OK or Failed was called since the last write. Safe to
	// discard.
	Checked
	// Unchecked means the value was written (ResetTo) or inherited from
	// another wrapper (Clone, Move, Adopt, Copy) and nobody has examined it
	// yet. Overwriting or closing in this state trips the fatal path.
	Unchecked
)

func (d Disposition) String() string {
	switch d {
	case Initiated:
		return "initiated"
	case Defaulted:
		return "defaulted"
	case Released:
		return "released"
	case Checked:
		return "checked"
	case Unchecked:
		return "unchecked"
	}
	return "invalid"
}
