package types

// Object is the universal unit of data in the runtime. Every object is
// exactly one of the six kinds and carries a reference count; the object
// is destroyed exactly when the count reaches zero.
type Object struct {
	kind Kind
	refs uint32
	id   uint64 // creation order, used for identity comparison

	integer int64
	str     []byte

	// List slots; a nil slot is empty. The logical length is len(elems).
	elems []*Object

	// Dictionary entries in insertion order, plus the generation counter
	// bumped on every structural mutation.
	entries    []*DictEntry
	generation uint64

	fnArgs   *Object // owned argument list, may be nil
	fnBody   any     // opaque body, owned by the defining script
	fnScript *Script // non-owning back-reference
}

// Script identifies the script a function was defined in. The runtime
// carries it as a back-reference only: holding one never keeps the
// script alive, and the object model never looks inside it.
type Script struct {
	Path  string
	Order int
}

// nullObject is the one and only null object. It starts with a single
// reference; if reference counting is done correctly it is never
// destroyed.
var nullObject = Object{kind: KindNull, refs: 1, id: 1}

// NewNull returns a null object with an initial reference. Really it
// hands back the same object every time with an incremented reference,
// but callers should not assume this.
func NewNull() *Object {
	nullObject.AddRef()
	return &nullObject
}

// NewInteger creates a new integer object.
func NewInteger(v int64) *Object {
	o := newObject(KindInteger)
	o.integer = v
	return o
}

// NewString creates a new string object holding a copy of b. The length
// is len(b); embedded zero bytes are ordinary content.
func NewString(b []byte) *Object {
	o := newObject(KindString)
	o.str = make([]byte, len(b))
	copy(o.str, b)
	return o
}

// NewStr creates a new string object from a Go string.
func NewStr(s string) *Object {
	return NewString([]byte(s))
}

// NewList creates a new list object. The initial slice is copied; a nil
// element becomes an empty slot, and every non-nil element is
// referenced.
func NewList(initial []*Object) *Object {
	o := newObject(KindList)
	if len(initial) > 0 {
		o.elems = make([]*Object, len(initial))
		copy(o.elems, initial)
		for _, e := range o.elems {
			if e != nil {
				e.AddRef()
			}
		}
	}
	return o
}

// NewDict creates a new dictionary object. When source is non-nil its
// entries are re-inserted into the new dictionary through DictSet, so
// keys and values are reference-shared with the source while the entry
// structure is independent.
func NewDict(source *Object) (*Object, error) {
	o := newObject(KindDict)
	if source != nil {
		source.mustBe(KindDict)
		for _, e := range source.entries {
			if _, err := o.DictSet(e.Key, e.Value); err != nil {
				o.Release()
				return nil, err
			}
		}
	}
	return o, nil
}

// NewFunction creates a new function object. The argument list is
// referenced and used directly. The body is opaque to the runtime, and
// both it and the script link are non-owning.
func NewFunction(args *Object, body any, script *Script) *Object {
	o := newObject(KindFunction)
	o.fnArgs = args
	if args != nil {
		args.AddRef()
	}
	o.fnBody = body
	o.fnScript = script
	return o
}

// Concat builds a new string from the concatenation of two strings.
// Neither input is modified.
func Concat(left, right *Object) *Object {
	left.mustBe(KindString)
	right.mustBe(KindString)
	buf := make([]byte, 0, len(left.str)+len(right.str))
	buf = append(buf, left.str...)
	buf = append(buf, right.str...)
	o := newObject(KindString)
	o.str = buf
	return o
}

// Kind returns the object's kind tag.
func (o *Object) Kind() Kind {
	return o.kind
}

// Refs returns the object's current reference count.
func (o *Object) Refs() uint32 {
	return o.refs
}

// Int returns the value of an integer object.
func (o *Object) Int() int64 {
	o.mustBe(KindInteger)
	return o.integer
}

// Bytes returns the backing bytes of a string object. Callers must not
// modify the returned slice.
func (o *Object) Bytes() []byte {
	o.mustBe(KindString)
	return o.str
}

// Arguments returns the argument list of a function object, or nil. The
// reference is not incremented.
func (o *Object) Arguments() *Object {
	o.mustBe(KindFunction)
	return o.fnArgs
}

// Body returns the opaque body of a function object.
func (o *Object) Body() any {
	o.mustBe(KindFunction)
	return o.fnBody
}

// DefiningScript returns the script back-reference of a function object.
func (o *Object) DefiningScript() *Script {
	o.mustBe(KindFunction)
	return o.fnScript
}
