package mergesort

import (
	"golang.org/x/exp/constraints"
)

// Sort returns a new slice holding items in the order defined by cmp.
// The input is left untouched. Sort panics with ErrNilComparator if cmp is nil.
//
// Algorithm:
//  1. Split at the midpoint and sort each half recursively.
//  2. Merge: emit the right head only if it is provably earlier, that is
//     cmp(left, right) == After, or the answer is Inconclusive and
//     cmp(right, left) == Before. Otherwise emit the left head, so mutually
//     Inconclusive elements keep their input order. When one side runs out,
//     append the rest of the other.
//
// Complexity: O(n log n) time, O(n log n) transient allocations.
func Sort[T any](items []T, cmp Comparator[T]) []T {
	if cmp == nil {
		panic(ErrNilComparator.Error())
	}
	out := make([]T, len(items))
	copy(out, items)
	if len(out) < 2 {
		return out
	}
	return sortRange(out, cmp)
}

func sortRange[T any](items []T, cmp Comparator[T]) []T {
	if len(items) < 2 {
		return items
	}
	mid := len(items) / 2
	return merge(sortRange(items[:mid], cmp), sortRange(items[mid:], cmp), cmp)
}

// merge combines two sorted runs into a fresh slice.
func merge[T any](left, right []T, cmp Comparator[T]) []T {
	out := make([]T, 0, len(left)+len(right))
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if rightFirst(left[l], right[r], cmp) {
			out = append(out, right[r])
			r++
			continue
		}
		out = append(out, left[l])
		l++
	}
	out = append(out, left[l:]...)
	return append(out, right[r:]...)
}

// rightFirst reports whether b is provably earlier than a. A comparator that
// only ever answers Before or Inconclusive (a bare "less than") is asked the
// reverse question.
func rightFirst[T any](a, b T, cmp Comparator[T]) bool {
	switch cmp(a, b) {
	case After:
		return true
	case Inconclusive:
		return cmp(b, a) == Before
	default:
		return false
	}
}

// Natural orders values by <: smaller values come Before, equal ones are
// Inconclusive.
func Natural[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) Order {
		switch {
		case a < b:
			return Before
		case a > b:
			return After
		default:
			return Inconclusive
		}
	}
}

// Reverse flips Before and After of cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) Order {
		return cmp(a, b).Invert()
	}
}

// IsSorted reports whether no element is ranked Before its predecessor.
func IsSorted[T any](items []T, cmp Comparator[T]) bool {
	for i := 1; i < len(items); i++ {
		if cmp(items[i], items[i-1]) == Before {
			return false
		}
	}
	return true
}
