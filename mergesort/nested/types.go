package nested

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for nested values.
var (
	// ErrIndistinguishable indicates two values the ordering rules cannot tell apart.
	ErrIndistinguishable = errors.New("nested: values are indistinguishable")
	// ErrMalformed indicates a literal that is not a nested integer list.
	ErrMalformed = errors.New("nested: malformed literal")
)

// Value is either an integer leaf or a list of Values.
// The zero value is the integer 0.
type Value struct {
	n     int
	items []Value
	list  bool
}

// Int returns an integer leaf.
func Int(n int) Value {
	return Value{n: n}
}

// List returns a list of the given values. List() is the empty list.
func List(items ...Value) Value {
	return Value{items: items, list: true}
}

// Ints is shorthand for a flat list of integers.
func Ints(ns ...int) Value {
	items := make([]Value, len(ns))
	for i, n := range ns {
		items[i] = Int(n)
	}
	return List(items...)
}

// IsInt reports whether v is an integer leaf.
func (v Value) IsInt() bool { return !v.list }

// Number returns v's integer and true, or 0 and false for a list.
func (v Value) Number() (int, bool) {
	return v.n, !v.list
}

// Items returns the elements of a list; nil for an integer.
func (v Value) Items() []Value {
	return v.items
}

// Len returns the number of elements of a list; 0 for an integer.
func (v Value) Len() int {
	return len(v.items)
}

// String renders v in bracket literal form without spaces, e.g. [1,[2,3],[]].
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	if !v.list {
		sb.WriteString(strconv.Itoa(v.n))
		return
	}
	sb.WriteByte('[')
	for i, it := range v.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		it.write(sb)
	}
	sb.WriteByte(']')
}

// asList promotes an integer to a one-element list.
func (v Value) asList() []Value {
	if v.list {
		return v.items
	}
	return []Value{v}
}
