package nested

import (
	"fmt"

	"github.com/puzzlekit/puzzlekit/mergesort"
)

// frame is one level of an in-progress list comparison.
type frame struct {
	left, right []Value
	i           int // next index to compare
}

// Compare ranks a against b under the packet ordering rules.
// Inconclusive means no element decided the order.
//
// Complexity: O(total elements) time, O(depth) heap space.
func Compare(a, b Value) mergesort.Order {
	stack := []frame{{left: a.asList(), right: b.asList()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		i := top.i
		switch {
		case i >= len(top.left) && i >= len(top.right):
			// Both exhausted: undecided here, resume the parent list.
			stack = stack[:len(stack)-1]
			continue
		case i >= len(top.left):
			return mergesort.Before
		case i >= len(top.right):
			return mergesort.After
		}
		top.i++

		l, r := top.left[i], top.right[i]
		if l.IsInt() && r.IsInt() {
			switch {
			case l.n < r.n:
				return mergesort.Before
			case l.n > r.n:
				return mergesort.After
			}
			continue
		}
		stack = append(stack, frame{left: l.asList(), right: r.asList()})
	}
	return mergesort.Inconclusive
}

// Comparator returns Compare as a mergesort.Comparator.
func Comparator() mergesort.Comparator[Value] {
	return Compare
}

// InOrder reports whether a correctly precedes b. Two values the rules
// cannot tell apart are reported as ErrIndistinguishable rather than being
// silently resolved either way.
func InOrder(a, b Value) (bool, error) {
	switch Compare(a, b) {
	case mergesort.Before:
		return true, nil
	case mergesort.After:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s vs %s", ErrIndistinguishable, a, b)
	}
}

// Equal reports whether a and b are structurally identical. Unlike Compare,
// an integer never equals a list: Equal(Int(1), Ints(1)) is false.
func Equal(a, b Value) bool {
	type pair struct{ a, b Value }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a.list != p.b.list || len(p.a.items) != len(p.b.items) {
			return false
		}
		if !p.a.list {
			if p.a.n != p.b.n {
				return false
			}
			continue
		}
		for i := range p.a.items {
			stack = append(stack, pair{p.a.items[i], p.b.items[i]})
		}
	}
	return true
}
