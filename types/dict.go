package types

import "fmt"

// DictEntry is a single key/value pair owned by a dictionary. Entries
// are heap-allocated and their addresses are stable for the life of the
// dictionary, so a caller holding the entry returned by DictSet may
// assign Value directly for a later, single-use update.
type DictEntry struct {
	Key   *Object
	Value *Object
}

// DictLen returns the number of live entries.
func (o *Object) DictLen() int {
	o.mustBe(KindDict)
	return len(o.entries)
}

// DictGet finds the entry whose key compares equal to key, scanning in
// entry order. Returns nil if the key is not present. Lookup is
// O(entries) by design; there is no hashing.
func (o *Object) DictGet(key *Object) *DictEntry {
	o.mustBe(KindDict)
	for _, e := range o.entries {
		if Compare(e.Key, key) == 0 {
			return e
		}
	}
	return nil
}

// DictSet adds or assigns the value for key. Only integer and string
// keys are accepted. An insert appends a new entry at the end of the
// order and references the key; a replacement keeps the entry where it
// is. Both bump the generation counter, failing any iteration that is
// in progress. The old value, if any, is released and the new value
// referenced. The returned entry can be used to assign into the value
// slot later.
func (o *Object) DictSet(key, value *Object) (*DictEntry, error) {
	o.mustBe(KindDict)
	if key.kind != KindInteger && key.kind != KindString {
		return nil, fmt.Errorf("%w: cannot use %s as dictionary key", ErrKeyKind, key.kind)
	}

	entry := o.DictGet(key)
	if entry == nil {
		entry = &DictEntry{Key: key}
		key.AddRef()
		o.entries = append(o.entries, entry)
	}
	o.generation++

	// Reference the new value before releasing the old one, in case
	// they are the same object.
	value.AddRef()
	if entry.Value != nil {
		entry.Value.Release()
	}
	entry.Value = value
	return entry, nil
}

// DictAdd merges every entry of addition into the dictionary using
// DictSet, in addition's entry order. Keys already present are
// overwritten with normal replace semantics.
func (o *Object) DictAdd(addition *Object) error {
	o.mustBe(KindDict)
	addition.mustBe(KindDict)
	for _, e := range addition.entries {
		if _, err := o.DictSet(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// DictIterator iterates a dictionary's keys in entry order. It
// snapshots the generation counter at creation; any structural mutation
// after that makes Next fail instead of walking entries that may no
// longer exist.
type DictIterator struct {
	dict       *Object
	index      int
	generation uint64
}

// DictIterator returns an iterator positioned before the first entry.
func (o *Object) DictIterator() *DictIterator {
	o.mustBe(KindDict)
	return &DictIterator{dict: o, generation: o.generation}
}

// Next returns the next entry's key, or nil at the end of the
// dictionary. The key's reference count is not incremented; callers
// that retain it beyond the dictionary's lifetime must AddRef it
// themselves. Next returns ErrDictModified if the dictionary has been
// structurally mutated since the iterator was created.
func (it *DictIterator) Next() (*Object, error) {
	if it.dict == nil {
		return nil, nil
	}
	if it.generation != it.dict.generation {
		return nil, ErrDictModified
	}
	if it.index >= len(it.dict.entries) {
		// Drop the container pointer once exhausted.
		it.dict = nil
		return nil, nil
	}
	key := it.dict.entries[it.index].Key
	it.index++
	return key, nil
}

func (o *Object) destroyDict() {
	for _, e := range o.entries {
		e.Key.Release()
		if e.Value != nil {
			e.Value.Release()
		}
		e.Key = nil
		e.Value = nil
	}
	o.entries = nil
}
