//go:build property
// +build property

package intrange_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/puzzlekit/puzzlekit/intrange"
)

func TestRangeProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	span := func(start, length int) intrange.Range { return intrange.New(start, start+length) }

	properties.Property("overlap is symmetric", prop.ForAll(
		func(a, la, b, lb int) bool {
			r, o := span(a, la), span(b, lb)
			return r.Overlaps(o) == o.Overlaps(r)
		},
		gen.IntRange(-50, 50), gen.IntRange(0, 20),
		gen.IntRange(-50, 50), gen.IntRange(0, 20),
	))

	properties.Property("overlap means a shared value", prop.ForAll(
		func(a, la, b, lb int) bool {
			r, o := span(a, la), span(b, lb)
			shared := false
			for x := range r.Values() {
				if o.Contains(x) {
					shared = true
					break
				}
			}
			return r.Overlaps(o) == shared
		},
		gen.IntRange(-50, 50), gen.IntRange(0, 20),
		gen.IntRange(-50, 50), gen.IntRange(0, 20),
	))

	properties.Property("containment implies overlap", prop.ForAll(
		func(a, la, b, lb int) bool {
			r, o := span(a, la), span(b, lb)
			return !r.ContainsRange(o) || r.Overlaps(o)
		},
		gen.IntRange(-50, 50), gen.IntRange(0, 20),
		gen.IntRange(-50, 50), gen.IntRange(0, 20),
	))

	properties.Property("parse reverses string", prop.ForAll(
		func(a, la int) bool {
			r := span(a, la)
			got, err := intrange.Parse(r.String())
			return err == nil && got == r
		},
		gen.IntRange(-1000, 1000), gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
