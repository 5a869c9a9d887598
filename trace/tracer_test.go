package trace

import (
	"bytes"
	"testing"
)

func TestObjectEvent(t *testing.T) {
	var buf bytes.Buffer
	Init(true, nil, &buf)
	defer Init(false, nil, nil)

	Object("create", "integer", 5, 1)

	want := "[TRACE] CREATE integer#5 refs=1\n"
	if buf.String() != want {
		t.Errorf("wrote %q, expected %q", buf.String(), want)
	}
}

func TestFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(true, []string{"dict", "li*"}, &buf)
	defer Init(false, nil, nil)

	Object("addref", "integer", 2, 3)
	if buf.Len() != 0 {
		t.Errorf("filtered kind wrote %q", buf.String())
	}

	Object("destroy", "list", 4, 0)
	want := "[TRACE] DESTROY list#4 refs=0\n"
	if buf.String() != want {
		t.Errorf("wrote %q, expected %q", buf.String(), want)
	}
}

func TestDisabled(t *testing.T) {
	var buf bytes.Buffer
	Init(false, nil, &buf)
	defer Init(false, nil, nil)

	if IsEnabled() {
		t.Error("IsEnabled should be false after a disabled Init")
	}
	Object("create", "integer", 1, 1)
	if buf.Len() != 0 {
		t.Errorf("disabled tracer wrote %q", buf.String())
	}
}

func TestUninitialized(t *testing.T) {
	globalTracer = nil
	if IsEnabled() {
		t.Error("IsEnabled should be false before Init")
	}
	// Must not panic.
	Object("create", "integer", 1, 1)
}
