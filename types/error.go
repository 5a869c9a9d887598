package types

import "errors"

// Recoverable errors reported by the object runtime. Fatal invariant
// violations (reference count corruption, operations on invalidated
// objects) panic instead of returning one of these.
var (
	// ErrKeyKind reports an attempt to use a kind that cannot serve as a
	// dictionary key.
	ErrKeyKind = errors.New("invalid dictionary key kind")

	// ErrIndexRange reports a list index outside the addressable range.
	ErrIndexRange = errors.New("list index out of range")

	// ErrDictModified reports structural mutation of a dictionary while
	// an iterator created before the mutation is still advancing.
	ErrDictModified = errors.New("dictionary changed while iterating")
)
