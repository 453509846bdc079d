package set

import (
	"github.com/denismitr/dll"
)

// OrderedSet - is a set that iterates its items in insertion order.
type OrderedSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrdered[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T], len(items)),
		list: dll.New[T](),
	}

	for _, item := range items {
		s.Insert(item)
	}

	return s
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		newEl := dll.NewElement(item)
		s.m[item] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) Remove(item T) bool {
	if el, found := s.m[item]; found {
		delete(s.m, item)
		s.list.Remove(el)
		return true
	}

	return false
}

func (s *OrderedSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]*dll.Element[T])
	s.list = nil
	s.list = dll.New[T]()
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.m)
}

func (s *OrderedSet[T]) IsEmpty() bool {
	return len(s.m) == 0
}

// Items returns all items of the set in insertion order.
func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

// Intersect returns a new ordered set with the items present in both
// s and other, in the iteration order of s.
func (s *OrderedSet[T]) Intersect(other Set[T]) Set[T] {
	result := NewOrdered[T]()
	curr := s.list.Head()
	for curr != nil {
		if other.Has(curr.Value()) {
			result.Insert(curr.Value())
		}
		curr = curr.Next()
	}
	return result
}

// Union returns a new ordered set with all items of s followed by the
// items of other that s does not already contain.
func (s *OrderedSet[T]) Union(other Set[T]) Set[T] {
	result := NewOrdered(s.Items()...)
	result.InsertSet(other)
	return result
}

// Diff returns a new ordered set with the items of s that are not in
// other, in the iteration order of s.
func (s *OrderedSet[T]) Diff(other Set[T]) Set[T] {
	result := NewOrdered[T]()
	curr := s.list.Head()
	for curr != nil {
		if !other.Has(curr.Value()) {
			result.Insert(curr.Value())
		}
		curr = curr.Next()
	}
	return result
}

func (s *OrderedSet[T]) Clone() Set[T] {
	return NewOrdered(s.Items()...)
}
