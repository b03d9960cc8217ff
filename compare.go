package bstset

import (
	"cmp"
)

// Element is implemented by types that carry their own ordering.
//
// Less must be a strict weak ordering and must agree with Equal: if
// a.Equal(b) then neither a.Less(b) nor b.Less(a).
type Element[T any] interface {
	Less(T) bool
	Equal(T) bool
}

// LessFunc reports whether a sorts strictly before b.
type LessFunc[T any] func(a, b T) bool

// EqualFunc reports whether a and b are the same set member.
type EqualFunc[T any] func(a, b T) bool

func orderedLess[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// orderedEqual treats NaN as equal to NaN so that a float set can hold at
// most one NaN, consistent with cmp.Less ordering it first.
func orderedEqual[T cmp.Ordered](a, b T) bool {
	return cmp.Compare(a, b) == 0
}

func elementLess[T Element[T]](a, b T) bool {
	return a.Less(b)
}

func elementEqual[T Element[T]](a, b T) bool {
	return a.Equal(b)
}
