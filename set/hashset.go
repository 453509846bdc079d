package set

// HashSet - is an unordered set
type HashSet[T comparable] struct {
	m map[T]struct{}
}

var _ Set[int] = (*HashSet[int])(nil)

func New[T comparable](items ...T) *HashSet[T] {
	s := &HashSet[T]{
		m: make(map[T]struct{}, len(items)),
	}

	for _, item := range items {
		s.m[item] = struct{}{}
	}

	return s
}

func (s *HashSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = struct{}{}
		modified = true
	}

	return modified
}

func (s *HashSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) Remove(item T) bool {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		return true
	}

	return false
}

func (s *HashSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]struct{})
}

func (s *HashSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *HashSet[T]) Len() int {
	return len(s.m)
}

func (s *HashSet[T]) IsEmpty() bool {
	return len(s.m) == 0
}

// Items returns all items of the set in no particular order.
func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

// Intersect returns a new set with the items present in both s and
// other. It iterates the smaller of the two operands.
func (s *HashSet[T]) Intersect(other Set[T]) Set[T] {
	small, large := Set[T](s), other
	if large.Len() < small.Len() {
		small, large = large, small
	}

	result := New[T]()
	for _, item := range small.Items() {
		if large.Has(item) {
			result.Insert(item)
		}
	}

	return result
}

// Union returns a new set with all items of s and other.
func (s *HashSet[T]) Union(other Set[T]) Set[T] {
	result := New(s.Items()...)
	result.InsertSet(other)
	return result
}

// Diff returns a new set with the items of s that are not in other.
func (s *HashSet[T]) Diff(other Set[T]) Set[T] {
	result := New[T]()
	for item := range s.m {
		if !other.Has(item) {
			result.Insert(item)
		}
	}
	return result
}

func (s *HashSet[T]) Clone() Set[T] {
	return New(s.Items()...)
}
