package Maps

import (
	"iter"

	"github.com/cornelk/hashmap"
)

// Dict is a hash map with the usual dictionary surface. Iteration order is
// unspecified.
type Dict[K Hashable, V any] struct {
	m *hashmap.Map[K, V]
}

func NewDict[K Hashable, V any]() *Dict[K, V] {
	return &Dict[K, V]{m: hashmap.New[K, V]()}
}

// Put sets key to val, replacing any earlier value.
func (u *Dict[K, V]) Put(key K, val V) {
	u.m.Set(key, val)
}

func (u *Dict[K, V]) Get(key K) (V, bool) {
	return u.m.Get(key)
}

// GetOr returns def when key is absent.
func (u *Dict[K, V]) GetOr(key K, def V) V {
	if v, ok := u.m.Get(key); ok {
		return v
	}
	return def
}

func (u *Dict[K, V]) Has(key K) bool {
	_, ok := u.m.Get(key)
	return ok
}

// Remove returns false if key wasn't present.
func (u *Dict[K, V]) Remove(key K) bool {
	return u.m.Del(key)
}

func (u *Dict[K, V]) Len() int {
	return u.m.Len()
}

func (u *Dict[K, V]) Keys() []K {
	ks := make([]K, 0, u.m.Len())
	u.m.Range(func(k K, _ V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

// Range calls f for each pair until f returns false.
func (u *Dict[K, V]) Range(f func(K, V) bool) {
	u.m.Range(f)
}

func (u *Dict[K, V]) All() iter.Seq2[K, V] {
	return u.m.Range
}

// Merge copies every pair of other into u. Values from other win.
func (u *Dict[K, V]) Merge(other *Dict[K, V]) {
	if other == nil || other == u {
		return
	}
	other.m.Range(func(k K, v V) bool {
		u.m.Set(k, v)
		return true
	})
}
