package types

import "fmt"

// Truthy converts the object to a boolean value: null is false,
// integers are false only at zero, strings and containers are false
// only when empty, and functions are always true.
func (o *Object) Truthy() bool {
	switch o.kind {
	case KindNull:
		return false
	case KindInteger:
		return o.integer != 0
	case KindString:
		return len(o.str) != 0
	case KindList:
		return len(o.elems) != 0
	case KindDict:
		return len(o.entries) != 0
	case KindFunction:
		return true
	default:
		panic(fmt.Sprintf("types: truthiness of object with invalid kind %d", int(o.kind)))
	}
}
