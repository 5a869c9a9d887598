package types

import "fmt"

// ListLen returns the logical length of the list. Empty slots count
// toward the length.
func (o *Object) ListLen() int {
	o.mustBe(KindList)
	return len(o.elems)
}

// ListGet returns the element at index with an added reference, or nil
// when the index is out of range or the slot is empty. The list is not
// modified.
func (o *Object) ListGet(index int) *Object {
	o.mustBe(KindList)
	if index < 0 || index >= len(o.elems) {
		return nil
	}
	e := o.elems[index]
	if e != nil {
		e.AddRef()
	}
	return e
}

// ListSet stores value at index. If index is past the end the list
// grows to index+1, filling the new region with empty slots; growth
// never shrinks the existing region. Any previous occupant is released
// and the new value referenced. A nil value clears the slot.
func (o *Object) ListSet(index int, value *Object) error {
	o.mustBe(KindList)
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrIndexRange, index)
	}
	if index >= len(o.elems) {
		grown := make([]*Object, index+1)
		copy(grown, o.elems)
		o.elems = grown
	}
	if o.elems[index] != nil {
		o.elems[index].Release()
	}
	o.elems[index] = value
	if value != nil {
		value.AddRef()
	}
	return nil
}

// ListAdd appends every slot of addition to the list, referencing each
// copied non-empty element. The backing storage grows once for the
// whole batch, and appending a list to itself is safe.
func (o *Object) ListAdd(addition *Object) {
	o.mustBe(KindList)
	addition.mustBe(KindList)
	head := len(o.elems)
	grown := make([]*Object, head+len(addition.elems))
	copy(grown, o.elems)
	copy(grown[head:], addition.elems)
	for _, e := range grown[head:] {
		if e != nil {
			e.AddRef()
		}
	}
	o.elems = grown
}

// ListIterator iterates the list's non-empty slots in index order.
// Unlike DictIterator it carries no mutation check: structurally
// mutating the list while iterating it is unsafe.
type ListIterator struct {
	list  *Object
	index int
}

// ListIterator returns an iterator positioned before the first element.
func (o *Object) ListIterator() *ListIterator {
	o.mustBe(KindList)
	return &ListIterator{list: o}
}

// Next returns the next non-empty element, or nil at the end of the
// list. The element's reference count is not incremented; callers that
// retain it beyond the list's lifetime must AddRef it themselves.
func (it *ListIterator) Next() *Object {
	for it.index < len(it.list.elems) {
		e := it.list.elems[it.index]
		it.index++
		if e != nil {
			return e
		}
	}
	return nil
}

func (o *Object) destroyList() {
	for _, e := range o.elems {
		if e != nil {
			e.Release()
		}
	}
	o.elems = nil
}
