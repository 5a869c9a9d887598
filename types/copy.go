package types

import "fmt"

// Copy creates a new top-level object from o. Scalars are duplicated by
// value. Lists and functions are one-level copies: a new container
// holding added references to the same children. Dictionaries are
// copied by re-inserting their entries (see NewDict). The two container
// behaviors are intentionally different; callers depend on both.
func (o *Object) Copy() (*Object, error) {
	switch o.kind {
	case KindNull:
		return NewNull(), nil
	case KindInteger:
		return NewInteger(o.integer), nil
	case KindString:
		return NewString(o.str), nil
	case KindList:
		return NewList(o.elems), nil
	case KindDict:
		return NewDict(o)
	case KindFunction:
		return NewFunction(o.fnArgs, o.fnBody, o.fnScript), nil
	default:
		panic(fmt.Sprintf("types: copy of object with invalid kind %d", int(o.kind)))
	}
}
