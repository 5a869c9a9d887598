package types

import (
	"strings"
	"testing"
)

func render(obj *Object, depth int) string {
	var b strings.Builder
	Print(&b, obj, depth)
	return b.String()
}

func TestPrintScalars(t *testing.T) {
	null := NewNull()
	neg := NewInteger(-17)
	str := NewStr("plain text")
	defer null.Release()
	defer neg.Release()
	defer str.Release()

	tests := []struct {
		name  string
		obj   *Object
		depth int
		want  string
	}{
		{"null", null, 0, "null"},
		{"negative integer", neg, 0, "-17"},
		{"string at depth zero is raw", str, 0, "plain text"},
		{"string nested is quoted", str, 1, `"plain text"`},
		{"nil prints like an empty slot", nil, 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(tt.obj, tt.depth); got != tt.want {
				t.Errorf("rendered %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestPrintStringEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short escapes", "a\r\n\v\t\f\b\ab", `"a\r\n\v\t\f\b\ab"`},
		{"backslash and quote", `say "hi"\now`, `"say \"hi\"\\now"`},
		{"control byte", "x\x01y", `"x\x01y"`},
		{"high byte", "x\xe9y", `"x\xE9y"`},
		{"embedded zero", "a\x00b", `"a\x00b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStr(tt.in)
			defer s.Release()
			if got := render(s, 1); got != tt.want {
				t.Errorf("rendered %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestPrintShortList(t *testing.T) {
	one := NewInteger(1)
	two := NewStr("two")
	list := NewList([]*Object{one, nil, two})
	one.Release()
	two.Release()
	defer list.Release()

	if got := render(list, 0); got != `[1, 0, "two"]` {
		t.Errorf("rendered %q", got)
	}
}

func TestPrintLongListWraps(t *testing.T) {
	list := newIntList(t, 1, 2, 3, 4, 5)
	defer list.Release()

	want := "[1, \n 2, \n 3, \n 4, \n 5]"
	if got := render(list, 0); got != want {
		t.Errorf("rendered %q, expected %q", got, want)
	}
}

func TestPrintNestedListIndent(t *testing.T) {
	inner := newIntList(t, 1, 2, 3, 4, 5)
	outer := NewList([]*Object{inner})
	inner.Release()
	defer outer.Release()

	// The inner list wraps with two-space indentation at depth 1.
	want := "[[1, \n  2, \n  3, \n  4, \n  5]]"
	if got := render(outer, 0); got != want {
		t.Errorf("rendered %q, expected %q", got, want)
	}
}

func TestPrintDict(t *testing.T) {
	dict := newDict(t, "a", 1, "b", 2)
	defer dict.Release()

	want := "{\"a\" : 1\n \"b\" : 2}"
	if got := render(dict, 0); got != want {
		t.Errorf("rendered %q, expected %q", got, want)
	}

	empty := newDict(t)
	defer empty.Release()
	if got := render(empty, 0); got != "{}" {
		t.Errorf("empty dict rendered %q, expected {}", got)
	}
}

func TestPrintListCycle(t *testing.T) {
	list := NewList(nil)
	if err := list.ListSet(0, list); err != nil {
		t.Fatal(err)
	}
	refsBefore := list.Refs()

	if got := render(list, 0); got != "[[...]]" {
		t.Errorf("rendered %q, expected [[...]]", got)
	}
	if list.Refs() != refsBefore {
		t.Errorf("refs = %d after print, expected %d", list.Refs(), refsBefore)
	}

	// Break the cycle before the final release, otherwise the self
	// reference keeps the list alive.
	if err := list.ListSet(0, nil); err != nil {
		t.Fatal(err)
	}
	list.Release()
}

func TestPrintDictCycle(t *testing.T) {
	dict := newDict(t)
	key := NewStr("self")
	if _, err := dict.DictSet(key, dict); err != nil {
		t.Fatal(err)
	}

	want := "{\"self\" : {...}}"
	if got := render(dict, 0); got != want {
		t.Errorf("rendered %q, expected %q", got, want)
	}

	null := NewNull()
	if _, err := dict.DictSet(key, null); err != nil {
		t.Fatal(err)
	}
	null.Release()
	key.Release()
	dict.Release()
}

func TestPrintSharedChildNotACycle(t *testing.T) {
	shared := newIntList(t, 7)
	list := NewList([]*Object{shared, shared})
	shared.Release()
	defer list.Release()

	// The same child twice on one level is sharing, not a cycle.
	if got := render(list, 0); got != "[[7], [7]]" {
		t.Errorf("rendered %q, expected [[7], [7]]", got)
	}
}

func TestPrintFunction(t *testing.T) {
	fn := NewFunction(nil, &struct{}{}, nil)
	defer fn.Release()

	got := render(fn, 0)
	if !strings.HasPrefix(got, "Function at ") {
		t.Errorf("rendered %q, expected a Function at prefix", got)
	}
}

func TestObjectStringer(t *testing.T) {
	s := NewStr("raw")
	defer s.Release()
	if s.String() != "raw" {
		t.Errorf("String() = %q, expected raw", s.String())
	}
}
