package setops

import (
	"github.com/denismitr/setops/set"
)

// Equal reports whether a and b contain exactly the same items,
// regardless of insertion order.
func Equal[T comparable](a, b set.Set[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	return containsAll(b, a)
}

// Disjoint reports whether a and b have no items in common. The empty
// set is disjoint with every set, including itself.
func Disjoint[T comparable](a, b set.Set[T]) bool {
	small, large := a, b
	if large.Len() < small.Len() {
		small, large = large, small
	}

	for _, item := range small.Items() {
		if large.Has(item) {
			return false
		}
	}

	return true
}

// Intersecting reports whether a and b share at least one item. It is
// the exact negation of Disjoint.
func Intersecting[T comparable](a, b set.Set[T]) bool {
	return !Disjoint(a, b)
}

// Subset reports whether every item of a is also in b. The empty set
// is a subset of every set, including itself.
func Subset[T comparable](a, b set.Set[T]) bool {
	if a.Len() > b.Len() {
		return false
	}

	return containsAll(b, a)
}

// Superset reports whether every item of b is also in a.
func Superset[T comparable](a, b set.Set[T]) bool {
	if a.Len() < b.Len() {
		return false
	}

	return containsAll(a, b)
}

// StrictSubset reports whether a is a subset of b and b holds at least
// one item that a does not.
func StrictSubset[T comparable](a, b set.Set[T]) bool {
	if a.Len() >= b.Len() {
		return false
	}

	return containsAll(b, a)
}

// StrictSuperset reports whether a is a superset of b and a holds at
// least one item that b does not.
func StrictSuperset[T comparable](a, b set.Set[T]) bool {
	if a.Len() <= b.Len() {
		return false
	}

	return containsAll(a, b)
}

func containsAll[T comparable](container, items set.Set[T]) bool {
	for _, item := range items.Items() {
		if !container.Has(item) {
			return false
		}
	}

	return true
}
