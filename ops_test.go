package setops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denismitr/setops"
	"github.com/denismitr/setops/set"
)

func TestEqual(t *testing.T) {
	t.Run("insertion order is irrelevant", func(t *testing.T) {
		a := set.New("foo", "bar", "baz")
		b := set.New("baz", "foo", "bar")

		assert.True(t, setops.Equal[string](a, b))
		assert.True(t, setops.Equal[string](b, a))
	})

	t.Run("a set equals itself", func(t *testing.T) {
		a := set.New(1, 2, 3)

		assert.True(t, setops.Equal[int](a, a))
	})

	t.Run("empty sets are equal", func(t *testing.T) {
		assert.True(t, setops.Equal[int](set.New[int](), set.New[int]()))
	})

	t.Run("different cardinality", func(t *testing.T) {
		a := set.New(1, 2)
		b := set.New(1, 2, 3)

		assert.False(t, setops.Equal[int](a, b))
		assert.False(t, setops.Equal[int](b, a))
	})

	t.Run("same cardinality different items", func(t *testing.T) {
		a := set.New(1, 2)
		b := set.New(1, 3)

		assert.False(t, setops.Equal[int](a, b))
	})

	t.Run("container kinds can be mixed", func(t *testing.T) {
		a := set.New("foo", "bar")
		b := set.NewOrdered("bar", "foo")

		assert.True(t, setops.Equal[string](a, b))
	})
}

func TestDisjointIntersecting(t *testing.T) {
	t.Run("no common items", func(t *testing.T) {
		a := set.New(1, 2)
		b := set.New(3, 4)

		assert.True(t, setops.Disjoint[int](a, b))
		assert.False(t, setops.Intersecting[int](a, b))
	})

	t.Run("one common item", func(t *testing.T) {
		a := set.New(1, 2)
		b := set.New(2, 3)

		assert.False(t, setops.Disjoint[int](a, b))
		assert.True(t, setops.Intersecting[int](a, b))
	})

	t.Run("empty set is disjoint with everything including itself", func(t *testing.T) {
		empty := set.New[int]()

		assert.True(t, setops.Disjoint[int](empty, set.New(1, 2)))
		assert.True(t, setops.Disjoint[int](set.New(1, 2), empty))
		assert.True(t, setops.Disjoint[int](empty, empty))
	})

	t.Run("intersecting is the exact negation of disjoint", func(t *testing.T) {
		pairs := [][2]set.Set[int]{
			{set.New[int](), set.New[int]()},
			{set.New(1), set.New[int]()},
			{set.New(1), set.New(1)},
			{set.New(1, 2, 3), set.New(3, 4)},
			{set.New(1, 2), set.New(3, 4)},
		}

		for _, pair := range pairs {
			a, b := pair[0], pair[1]
			assert.Equal(t, setops.Disjoint[int](a, b), !setops.Intersecting[int](a, b))
			assert.Equal(t, setops.Disjoint[int](b, a), !setops.Intersecting[int](b, a))
		}
	})
}

func TestSubsetSuperset(t *testing.T) {
	t.Run("empty set is a subset of every set", func(t *testing.T) {
		empty := set.New[string]()

		assert.True(t, setops.Subset[string](empty, set.New("foo")))
		assert.True(t, setops.Subset[string](empty, empty))
		assert.True(t, setops.Superset[string](set.New("foo"), empty))
	})

	t.Run("proper containment", func(t *testing.T) {
		a := set.New(1, 2)
		b := set.New(1, 2, 3)

		assert.True(t, setops.Subset[int](a, b))
		assert.False(t, setops.Subset[int](b, a))
		assert.True(t, setops.Superset[int](b, a))
		assert.False(t, setops.Superset[int](a, b))
	})

	t.Run("equal sets contain each other", func(t *testing.T) {
		a := set.New(1, 2)
		b := set.New(2, 1)

		assert.True(t, setops.Subset[int](a, b))
		assert.True(t, setops.Superset[int](a, b))
	})

	t.Run("same cardinality different items", func(t *testing.T) {
		a := set.New(1, 2)
		b := set.New(2, 3)

		assert.False(t, setops.Subset[int](a, b))
		assert.False(t, setops.Superset[int](a, b))
	})

	t.Run("subset and superset together mean equality", func(t *testing.T) {
		pairs := [][2]set.Set[int]{
			{set.New[int](), set.New[int]()},
			{set.New(1), set.New(1)},
			{set.New(1, 2), set.New(1, 2, 3)},
			{set.New(1, 2), set.New(3, 4)},
		}

		for _, pair := range pairs {
			a, b := pair[0], pair[1]
			both := setops.Subset[int](a, b) && setops.Superset[int](a, b)
			assert.Equal(t, setops.Equal[int](a, b), both)
		}
	})
}

func TestStrictSubsetSuperset(t *testing.T) {
	t.Run("proper containment is strict", func(t *testing.T) {
		a := set.New(1, 2)
		b := set.New(1, 2, 3)

		assert.True(t, setops.StrictSubset[int](a, b))
		assert.True(t, setops.StrictSuperset[int](b, a))
	})

	t.Run("a set is not a strict subset of itself", func(t *testing.T) {
		a := set.New(1, 2)

		assert.False(t, setops.StrictSubset[int](a, a))
		assert.False(t, setops.StrictSuperset[int](a, a))
		assert.False(t, setops.StrictSubset[int](a, set.New(2, 1)))
	})

	t.Run("empty set is a strict subset of any non-empty set", func(t *testing.T) {
		empty := set.New[int]()

		assert.True(t, setops.StrictSubset[int](empty, set.New(1)))
		assert.False(t, setops.StrictSubset[int](empty, empty))
	})

	t.Run("strict subset implies subset and inequality", func(t *testing.T) {
		pairs := [][2]set.Set[int]{
			{set.New[int](), set.New(1)},
			{set.New(1), set.New(1, 2)},
			{set.New(1, 2), set.New(1, 2)},
			{set.New(1, 4), set.New(1, 2, 3)},
		}

		for _, pair := range pairs {
			a, b := pair[0], pair[1]
			if setops.StrictSubset[int](a, b) {
				assert.True(t, setops.Subset[int](a, b))
				assert.False(t, setops.Equal[int](a, b))
			}
		}
	})
}

func TestSortedItems(t *testing.T) {
	s := set.New(3, 1, 2)

	assert.Equal(t, []int{1, 2, 3}, setops.SortedItems[int](s))
	assert.Empty(t, setops.SortedItems[int](set.New[int]()))
}
