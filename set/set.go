package set

// Set is a collection of unique comparable items. Implementations
// guarantee there are no duplicates; whether iteration order is
// defined depends on the concrete implementation.
type Set[T comparable] interface {
	Insert(item T) (modified bool)
	InsertSet(sourceSet Set[T]) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Len() int
	IsEmpty() bool
	Items() []T
	Intersect(other Set[T]) Set[T]
	Union(other Set[T]) Set[T]
	Diff(other Set[T]) Set[T]
	Clone() Set[T]
}
