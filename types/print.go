package types

import (
	"fmt"
	"io"
	"strings"
)

// printer carries the output destination and the set of containers on
// the current recursion path, so a cyclic structure renders a
// placeholder instead of recursing forever. Cycle tracking lives here,
// not in the objects: printing never touches reference counts.
type printer struct {
	w       io.Writer
	visited map[*Object]struct{}
}

// Print renders obj to w. At depth 0 strings print raw; nested strings
// print quoted with escape sequences. The depth also keys the
// indentation of nested containers. A nil obj prints as 0, matching an
// empty list slot.
func Print(w io.Writer, obj *Object, depth int) {
	p := &printer{w: w, visited: make(map[*Object]struct{})}
	p.print(obj, depth)
}

// String renders the object at depth 0.
func (o *Object) String() string {
	var b strings.Builder
	Print(&b, o, 0)
	return b.String()
}

func (p *printer) print(o *Object, depth int) {
	if o == nil {
		fmt.Fprint(p.w, "0")
		return
	}

	// A marked object can only be a container re-entered through one of
	// its own descendants.
	if _, ok := p.visited[o]; ok {
		if o.kind == KindList {
			fmt.Fprint(p.w, "[...]")
		} else {
			fmt.Fprint(p.w, "{...}")
		}
		return
	}

	switch o.kind {
	case KindNull:
		fmt.Fprint(p.w, "null")

	case KindInteger:
		fmt.Fprintf(p.w, "%d", o.integer)

	case KindString:
		if depth == 0 {
			p.w.Write(o.str)
		} else {
			p.quote(o.str)
		}

	case KindList:
		p.visited[o] = struct{}{}
		fmt.Fprint(p.w, "[")
		count := len(o.elems)
		for i, e := range o.elems {
			p.print(e, depth+1)
			if i < count-1 {
				fmt.Fprint(p.w, ", ")
				if count >= 5 {
					fmt.Fprintf(p.w, "\n%*s", depth+1, "")
				}
			}
		}
		fmt.Fprint(p.w, "]")
		delete(p.visited, o)

	case KindDict:
		p.visited[o] = struct{}{}
		fmt.Fprint(p.w, "{")
		for i, e := range o.entries {
			p.print(e.Key, depth+1)
			fmt.Fprint(p.w, " : ")
			p.print(e.Value, depth+1)
			if i < len(o.entries)-1 {
				fmt.Fprintf(p.w, "\n%*s", depth+1, "")
			}
		}
		fmt.Fprint(p.w, "}")
		delete(p.visited, o)

	case KindFunction:
		fmt.Fprintf(p.w, "Function at %p", o.fnBody)

	default:
		panic(fmt.Sprintf("types: print of object with invalid kind %d", int(o.kind)))
	}
}

// quote writes b as a quoted string literal. Control characters get
// their short escapes, backslash and quote are escaped, and anything
// else non-printable or high-bit prints as a hexadecimal escape.
func (p *printer) quote(b []byte) {
	fmt.Fprint(p.w, `"`)
	for _, c := range b {
		switch c {
		case '\r':
			fmt.Fprint(p.w, `\r`)
		case '\n':
			fmt.Fprint(p.w, `\n`)
		case '\v':
			fmt.Fprint(p.w, `\v`)
		case '\t':
			fmt.Fprint(p.w, `\t`)
		case '\f':
			fmt.Fprint(p.w, `\f`)
		case '\b':
			fmt.Fprint(p.w, `\b`)
		case '\a':
			fmt.Fprint(p.w, `\a`)
		case '\\':
			fmt.Fprint(p.w, `\\`)
		case '"':
			fmt.Fprint(p.w, `\"`)
		default:
			if c < ' ' || c >= 0x80 {
				fmt.Fprintf(p.w, `\x%02X`, c)
			} else {
				fmt.Fprintf(p.w, "%c", c)
			}
		}
	}
	fmt.Fprint(p.w, `"`)
}
