package conformance

// TestSuite represents a complete YAML scenario file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single scenario within a suite. The value
// literal is built through the public object constructors and mutators,
// checked against the expectations, then released; the runner verifies
// that no objects leak in the process.
type TestCase struct {
	Name   string      `yaml:"name"`
	Skip   string      `yaml:"skip,omitempty"`
	Value  *Literal    `yaml:"value"`
	Other  *Literal    `yaml:"other,omitempty"` // right side for compare
	Expect Expectation `yaml:"expect"`
}

// Literal describes one object in a scenario file. Exactly one of the
// fields should be set; kind "null" stands for the null object. Inside
// a list, a YAML null element (~) denotes an empty slot.
type Literal struct {
	Kind string     `yaml:"kind,omitempty"` // "null"
	Int  *int64     `yaml:"int,omitempty"`
	Str  *string    `yaml:"str,omitempty"`
	List []*Literal `yaml:"list,omitempty"`
	Dict []Pair     `yaml:"dict,omitempty"`
}

// Pair is one ordered key/value pair of a dictionary literal
type Pair struct {
	Key   *Literal `yaml:"key"`
	Value *Literal `yaml:"value"`
}

// Expectation defines what is checked for a test case. Unset fields are
// not checked.
type Expectation struct {
	Print   *string `yaml:"print,omitempty"`   // depth-0 rendering
	Quoted  *string `yaml:"quoted,omitempty"`  // depth-1 rendering
	Length  *int64  `yaml:"length,omitempty"`  // len builtin result
	Truthy  *bool   `yaml:"truthy,omitempty"`  // boolean coercion
	Compare *int    `yaml:"compare,omitempty"` // sign of Compare(value, other)
}
