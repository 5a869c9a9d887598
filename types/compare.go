package types

import (
	"bytes"
	"fmt"
)

// Compare orders two objects, returning -1, 0, or 1. Objects of
// different kinds order by kind tag, never by value. Null objects are
// always equal, integers order numerically, strings bytewise, and lists
// first by length and then element-wise. Kinds without value semantics
// (dictionaries, functions) order by creation identity: stable, but
// otherwise arbitrary.
func Compare(a, b *Object) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}

	switch a.kind {
	case KindNull:
		return 0

	case KindInteger:
		switch {
		case a.integer < b.integer:
			return -1
		case a.integer > b.integer:
			return 1
		}
		return 0

	case KindString:
		return bytes.Compare(a.str, b.str)

	case KindList:
		switch {
		case len(a.elems) < len(b.elems):
			return -1
		case len(a.elems) > len(b.elems):
			return 1
		}
		for i := range a.elems {
			if r := compareSlots(a.elems[i], b.elems[i]); r != 0 {
				return r
			}
		}
		return 0

	case KindDict, KindFunction:
		return compareIdentity(a, b)

	default:
		panic(fmt.Sprintf("types: compare of object with invalid kind %d", int(a.kind)))
	}
}

// compareSlots orders two list slots, either of which may be empty. An
// empty slot orders before any object.
func compareSlots(a, b *Object) int {
	if a == nil || b == nil {
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		}
		return 1
	}
	return Compare(a, b)
}

func compareIdentity(a, b *Object) int {
	switch {
	case a.id < b.id:
		return -1
	case a.id > b.id:
		return 1
	}
	return 0
}
