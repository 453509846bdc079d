package keyvalue

import (
	"github.com/denismitr/dll"

	"github.com/denismitr/setops/utils"
)

type (
	// OrderedMap is a map that iterates its pairs in insertion order.
	OrderedMap[K comparable, V any] struct {
		m    map[K]*dll.Element[Pair[K, V]]
		list *dll.DoublyLinkedList[Pair[K, V]]
	}

	ForEachFn[K comparable, V any] func(key K, value V, order int)
)

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m:    make(map[K]*dll.Element[Pair[K, V]]),
		list: dll.New[Pair[K, V]](),
	}
}

// Put is idempotent. Overwriting an existing key keeps its
// original position.
func (om *OrderedMap[K, V]) Put(key K, value V) {
	existingEl, found := om.m[key]
	if !found {
		p := Pair[K, V]{Key: key, Value: value}
		newEl := dll.NewElement(p)
		om.m[key] = newEl
		om.list.PushTail(newEl)
		return
	}

	existingEl.ReplaceValue(Pair[K, V]{Key: key, Value: value})
}

func (om *OrderedMap[K, V]) PutNX(key K, value V) (added bool) {
	if _, found := om.m[key]; found {
		return false
	}

	p := Pair[K, V]{Key: key, Value: value}
	newEl := dll.NewElement(p)
	om.m[key] = newEl
	om.list.PushTail(newEl)
	return true
}

func (om *OrderedMap[K, V]) Get(key K) (V, bool) {
	el, found := om.m[key]
	if !found {
		return utils.Zero[V](), false
	}

	return el.Value().Value, true
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, found := om.m[key]
	return found
}

func (om *OrderedMap[K, V]) Remove(key K) (V, bool) {
	el, exists := om.m[key]
	if !exists {
		return utils.Zero[V](), false
	}

	v := el.Value().Value
	delete(om.m, key)
	om.list.Remove(el)

	return v, true
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.m)
}

// Keys returns all keys in insertion order.
func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(om.m))
	curr := om.list.Head()
	for curr != nil {
		keys = append(keys, curr.Value().Key)
		curr = curr.Next()
	}
	return keys
}

// Values returns all values in key insertion order.
func (om *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(om.m))
	curr := om.list.Head()
	for curr != nil {
		values = append(values, curr.Value().Value)
		curr = curr.Next()
	}
	return values
}

func (om *OrderedMap[K, V]) ForEach(fn ForEachFn[K, V]) {
	curr := om.list.Head()
	order := 0
	for curr != nil {
		p := curr.Value()
		fn(p.Key, p.Value, order)
		order++
		curr = curr.Next()
	}
}
