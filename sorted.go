package setops

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/denismitr/setops/set"
)

// SortedItems returns the items of s in ascending order, giving a
// deterministic view of an unordered set.
func SortedItems[T constraints.Ordered](s set.Set[T]) []T {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i] < items[j]
	})
	return items
}
