package conformance

import (
	"fmt"
	"strings"

	"chalk/builtins"
	"chalk/types"
)

// RunCase builds the case's object graph, checks every expectation, and
// releases everything again. A nil return means the case passed. After
// the final release the live-object count must be back at its starting
// value; a difference means the scenario leaked or double-released.
func RunCase(tc TestCase) error {
	if tc.Value == nil {
		return fmt.Errorf("case has no value literal")
	}

	base := types.LiveObjects()

	obj, err := build(tc.Value)
	if err != nil {
		return err
	}

	checkErr := checkExpectations(tc, obj)
	obj.Release()

	if checkErr != nil {
		return checkErr
	}
	if leaked := types.LiveObjects() - base; leaked != 0 {
		return fmt.Errorf("scenario leaked %d objects", leaked)
	}
	return nil
}

func checkExpectations(tc TestCase, obj *types.Object) error {
	expect := tc.Expect

	if expect.Print != nil {
		var b strings.Builder
		types.Print(&b, obj, 0)
		if b.String() != *expect.Print {
			return fmt.Errorf("print: got %q, want %q", b.String(), *expect.Print)
		}
	}

	if expect.Quoted != nil {
		var b strings.Builder
		types.Print(&b, obj, 1)
		if b.String() != *expect.Quoted {
			return fmt.Errorf("quoted print: got %q, want %q", b.String(), *expect.Quoted)
		}
	}

	if expect.Length != nil {
		length := builtins.Length(obj)
		got := length.Int()
		length.Release()
		if got != *expect.Length {
			return fmt.Errorf("length: got %d, want %d", got, *expect.Length)
		}
	}

	if expect.Truthy != nil {
		if got := obj.Truthy(); got != *expect.Truthy {
			return fmt.Errorf("truthy: got %v, want %v", got, *expect.Truthy)
		}
	}

	if expect.Compare != nil {
		if tc.Other == nil {
			return fmt.Errorf("compare expectation without an other literal")
		}
		other, err := build(tc.Other)
		if err != nil {
			return err
		}
		got := types.Compare(obj, other)
		other.Release()
		if got != *expect.Compare {
			return fmt.Errorf("compare: got %d, want %d", got, *expect.Compare)
		}
	}

	return nil
}

// build constructs the object a literal describes, with one reference
// owned by the caller. On failure any partially built container is
// released before returning.
func build(l *Literal) (*types.Object, error) {
	switch {
	case l.Int != nil:
		return types.NewInteger(*l.Int), nil

	case l.Str != nil:
		return types.NewStr(*l.Str), nil

	case l.List != nil:
		return buildList(l.List)

	case l.Dict != nil:
		return buildDict(l.Dict)

	case l.Kind == "null":
		return types.NewNull(), nil
	}
	return nil, fmt.Errorf("literal sets no kind")
}

func buildList(elems []*Literal) (*types.Object, error) {
	list := types.NewList(nil)
	for i, el := range elems {
		if el == nil {
			// Empty slot: extend the list without storing a value.
			if err := list.ListSet(i, nil); err != nil {
				list.Release()
				return nil, err
			}
			continue
		}
		child, err := build(el)
		if err != nil {
			list.Release()
			return nil, err
		}
		err = list.ListSet(i, child)
		child.Release()
		if err != nil {
			list.Release()
			return nil, err
		}
	}
	return list, nil
}

func buildDict(pairs []Pair) (*types.Object, error) {
	dict, err := types.NewDict(nil)
	if err != nil {
		return nil, err
	}
	for _, pair := range pairs {
		if pair.Key == nil || pair.Value == nil {
			dict.Release()
			return nil, fmt.Errorf("dictionary pair missing key or value")
		}
		key, err := build(pair.Key)
		if err != nil {
			dict.Release()
			return nil, err
		}
		value, err := build(pair.Value)
		if err != nil {
			key.Release()
			dict.Release()
			return nil, err
		}
		_, err = dict.DictSet(key, value)
		key.Release()
		value.Release()
		if err != nil {
			dict.Release()
			return nil, err
		}
	}
	return dict, nil
}
