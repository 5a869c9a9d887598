package types

// Kind identifies which of the object variants a value is. The numeric
// order is significant: cross-kind comparison orders by it.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindInteger
	KindString
	KindDict
	KindList
	KindFunction
	kindCount
)

// String returns the script-facing name of the kind
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "INVALID"
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindDict:
		return "dict"
	case KindList:
		return "list"
	case KindFunction:
		return "function"
	default:
		return "UNKNOWN"
	}
}
