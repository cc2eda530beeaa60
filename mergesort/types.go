package mergesort

import "errors"

// ErrNilComparator indicates Sort was called with a nil comparator.
var ErrNilComparator = errors.New("mergesort: comparator is nil")

// Order is the three-valued result of a Comparator.
type Order int

const (
	// Inconclusive means the comparator cannot tell the elements apart.
	Inconclusive Order = iota
	// Before means a must precede b.
	Before
	// After means a must follow b.
	After
)

// String returns the name of the order.
func (o Order) String() string {
	switch o {
	case Before:
		return "Before"
	case After:
		return "After"
	case Inconclusive:
		return "Inconclusive"
	default:
		return "Order(?)"
	}
}

// Invert swaps Before and After; Inconclusive stays.
func (o Order) Invert() Order {
	switch o {
	case Before:
		return After
	case After:
		return Before
	default:
		return o
	}
}

// Comparator ranks a against b. It must be pure.
type Comparator[T any] func(a, b T) Order
