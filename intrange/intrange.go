// Package intrange provides an inclusive integer interval with containment
// and overlap queries.
//
// Range{Start, End} covers every integer x with Start <= x <= End.
// Start <= End is assumed, not validated.
package intrange

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ErrMalformed indicates text that is not of the form "start-end".
var ErrMalformed = errors.New("intrange: malformed range")

// Range is an inclusive integer interval.
type Range struct {
	Start, End int
}

// New returns the range [start, end].
func New(start, end int) Range {
	return Range{Start: start, End: end}
}

// Parse reads "start-end", e.g. "2-4". Either bound may be negative ("-3--1").
func Parse(s string) (Range, error) {
	// Skip a leading sign so the separator search finds the middle dash.
	i := strings.IndexByte(s[min(1, len(s)):], '-')
	if i < 0 {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	i += min(1, len(s))
	start, err := strconv.Atoi(s[:i])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}
	end, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}
	return New(start, end), nil
}

// Contains reports whether x lies within r.
func (r Range) Contains(x int) bool {
	return r.Start <= x && x <= r.End
}

// ContainsRange reports whether o lies entirely within r.
func (r Range) ContainsRange(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Overlaps reports whether r and o share at least one integer.
// It is symmetric: r.Overlaps(o) == o.Overlaps(r).
func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Len returns the number of integers in r, or 0 if End < Start.
func (r Range) Len() int {
	return max(0, r.End-r.Start+1)
}

// Values yields Start, Start+1, …, End.
func (r Range) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for x := r.Start; x <= r.End; x++ {
			if !yield(x) {
				return
			}
		}
	}
}

// String renders r as "start-end".
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}
