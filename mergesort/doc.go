// Package mergesort sorts sequences with a three-valued comparator.
//
// What:
//
//   - A Comparator answers Before, After or Inconclusive for a pair of
//     elements instead of a strict weak ordering. Inconclusive lets a
//     recursive comparison of nested data defer the decision to the caller.
//   - Sort is a classic top-down merge sort. The merge step is the single
//     place the comparator is consulted: the right head is emitted only when
//     it is provably earlier (cmp(left, right) == After, or Inconclusive with
//     cmp(right, left) == Before); otherwise the left head wins.
//   - Sort is stable: elements the comparator deems mutually Inconclusive
//     keep their input order.
//   - The nested subpackage provides the comparator for recursively nested
//     integer lists.
//
// Complexity:
//
//   - Time:  O(n log n) comparator calls.
//   - Space: O(n) for the output plus O(log n) recursion depth.
//
// Errors:
//
//   - ErrNilComparator: Sort was called with a nil comparator (panics).
package mergesort
