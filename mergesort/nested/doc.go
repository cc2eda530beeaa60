// Package nested compares recursively nested integer lists such as
// [1,[2,[3,4]],5], the "packets" of the distress-signal puzzle.
//
// Ordering rules, applied element by element:
//
//   - int vs int: the smaller value comes Before; equal values continue.
//   - list vs list: compare their elements pairwise; the side that runs out
//     first comes Before. If both run out together the sublist is
//     Inconclusive and comparison continues in the parent list.
//   - int vs list: the int is promoted to a one-element list.
//
// Compare walks the structure with an explicit work-stack, so nesting depth
// is bounded by memory rather than by the goroutine stack.
//
// At the top level an Inconclusive result means the two values are
// indistinguishable. Sorting tolerates that (equal packets stay in input
// order), but InOrder, which asks whether one pair is correctly ordered,
// reports it as ErrIndistinguishable.
//
// Parse reads the bracket literal syntax. It is a YAML flow sequence, so
// the reader is built on gopkg.in/yaml.v3 and only accepts integer scalars
// and sequences.
package nested
