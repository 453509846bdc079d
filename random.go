package setops

import (
	"math/rand"
	"time"

	"github.com/denismitr/setops/set"
	"github.com/denismitr/setops/utils"
)

type (
	randomControl struct {
		rand *rand.Rand
	}

	RandomOption func(rc *randomControl)
)

// WithSeed makes TakeRandom pick from a generator seeded with seed.
// Two calls with the same seed on sets with identical contents and
// iteration order pick the same item.
func WithSeed(seed int64) RandomOption {
	return func(rc *randomControl) {
		rc.rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes TakeRandom pick from r instead of constructing a
// generator of its own.
func WithRand(r *rand.Rand) RandomOption {
	return func(rc *randomControl) {
		rc.rand = r
	}
}

// TakeRandom removes a uniformly selected item from s and returns it.
// On an empty set it returns the zero value and false and leaves s
// untouched. The generator is scoped to the call unless WithRand
// injects one.
func TakeRandom[T comparable](s set.Set[T], options ...RandomOption) (T, bool) {
	if s.IsEmpty() {
		return utils.Zero[T](), false
	}

	var rc randomControl
	for _, o := range options {
		o(&rc)
	}

	if rc.rand == nil {
		rc.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	items := s.Items()
	item := items[rc.rand.Intn(len(items))]
	s.Remove(item)

	return item, true
}
