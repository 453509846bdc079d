package setops

import (
	"github.com/denismitr/setops/keyvalue"
	"github.com/denismitr/setops/set"
)

// ClassifierFn derives a grouping key from an item.
type ClassifierFn[T comparable, K comparable] func(item T) K

// Classify partitions s into groups keyed by the classifier result.
// Every item of s lands in exactly one group; s itself is not
// modified. Group map keys appear in order of the first item seen for
// each key, and each group keeps the order in which its items were
// encountered.
func Classify[T comparable, K comparable](
	s set.Set[T],
	classifier ClassifierFn[T, K],
) *keyvalue.OrderedMap[K, set.Set[T]] {
	groups := keyvalue.NewOrderedMap[K, set.Set[T]]()

	for _, item := range s.Items() {
		key := classifier(item)
		group, found := groups.Get(key)
		if !found {
			group = set.NewOrdered[T]()
			groups.Put(key, group)
		}
		group.Insert(item)
	}

	return groups
}
