package types

import (
	"fmt"

	"chalk/trace"
)

// Reference counts at or above this are treated as corruption rather
// than legitimate sharing.
const maxRefs = 0x10000000

var (
	lastID uint64 = 1 // the null singleton owns id 1
	live   int64
)

// LiveObjects returns the number of heap objects currently alive:
// everything constructed minus everything destroyed. The null singleton
// is not counted. Tests use this to detect leaked or double-released
// objects.
func LiveObjects() int64 {
	return live
}

func newObject(kind Kind) *Object {
	lastID++
	live++
	o := &Object{kind: kind, refs: 1, id: lastID}
	o.traceEvent("create")
	return o
}

// AddRef adds a reference to the object.
func (o *Object) AddRef() {
	o.checkHeader()
	o.refs++
	o.traceEvent("addref")
}

// Release drops a reference from the object. When the last reference
// goes away the object's contents are torn down, recursively releasing
// every owned child, and its kind is invalidated.
func (o *Object) Release() {
	o.checkHeader()
	o.refs--
	o.traceEvent("release")
	if o.refs == 0 {
		o.destroy()
	}
}

// checkHeader verifies the header invariants shared by every lifecycle
// operation. A violation means a bug in the runtime or its caller, not
// a recoverable condition.
func (o *Object) checkHeader() {
	if o.kind <= KindInvalid || o.kind >= kindCount {
		panic(fmt.Sprintf("types: operation on object with invalid kind %d", int(o.kind)))
	}
	if o.refs == 0 || o.refs >= maxRefs {
		panic(fmt.Sprintf("types: corrupt reference count %#x on %s object", o.refs, o.kind))
	}
}

func (o *Object) destroy() {
	o.traceEvent("destroy")
	switch o.kind {
	case KindNull:
		// The singleton holds the process's bootstrap reference, so
		// reaching zero means a release was unbalanced somewhere.
		panic("types: reference counting problem on null object")
	case KindInteger:
	case KindString:
		o.str = nil
	case KindList:
		o.destroyList()
	case KindDict:
		o.destroyDict()
	case KindFunction:
		if o.fnArgs != nil {
			o.fnArgs.Release()
			o.fnArgs = nil
		}
		o.fnBody = nil
		o.fnScript = nil
	default:
		panic(fmt.Sprintf("types: destroy of object with invalid kind %d", int(o.kind)))
	}

	// Invalidate the kind so any use after this point trips the header
	// check instead of reading freed contents.
	o.kind = KindInvalid
	live--
}

func (o *Object) mustBe(k Kind) {
	if o.kind != k {
		panic(fmt.Sprintf("types: %s object used as %s", o.kind, k))
	}
}

func (o *Object) traceEvent(event string) {
	if trace.IsEnabled() {
		trace.Object(event, o.kind.String(), o.id, o.refs)
	}
}
