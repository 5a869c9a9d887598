package builtins

import (
	"errors"
	"fmt"
	"io"

	"chalk/types"
)

// ErrNotDict is returned by Get when the receiver is neither a
// dictionary nor null.
var ErrNotDict = errors.New("get() passed non-dictionary object")

// Print implements the script-level print builtin. A list prints its
// non-empty elements separated by spaces; anything else prints directly.
// Either way elements render at depth 0, so top-level strings come out
// raw rather than quoted.
func Print(w io.Writer, obj *types.Object) {
	if obj.Kind() == types.KindList {
		first := true
		it := obj.ListIterator()
		for e := it.Next(); e != nil; e = it.Next() {
			if !first {
				fmt.Fprint(w, " ")
			}
			first = false
			types.Print(w, e, 0)
		}
		return
	}
	types.Print(w, obj, 0)
}

// Length implements the len builtin: the byte length of a string
// (embedded zero bytes count), the logical length of a list, or the
// entry count of a dictionary. Every other kind has length zero. The
// result is a new integer object.
func Length(obj *types.Object) *types.Object {
	var n int
	switch obj.Kind() {
	case types.KindString:
		n = len(obj.Bytes())
	case types.KindList:
		n = obj.ListLen()
	case types.KindDict:
		n = obj.DictLen()
	}
	return types.NewInteger(int64(n))
}

// Get implements the get builtin: the value for key in a dictionary
// with an added reference, or a fresh null object when the key is
// absent or the receiver itself is null. Any other receiver kind is an
// error.
func Get(obj, key *types.Object) (*types.Object, error) {
	if obj.Kind() != types.KindDict && obj.Kind() != types.KindNull {
		return nil, ErrNotDict
	}

	if obj.Kind() == types.KindDict {
		if entry := obj.DictGet(key); entry != nil {
			entry.Value.AddRef()
			return entry.Value, nil
		}
	}
	return types.NewNull(), nil
}
