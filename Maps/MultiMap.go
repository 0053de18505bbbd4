package Maps

import (
	"slices"

	"github.com/cornelk/hashmap"
)

// MultiMap keeps every value put under a key, in insertion order.
type MultiMap[K Hashable, V any] struct {
	m *hashmap.Map[K, []V]
	n int
}

func NewMultiMap[K Hashable, V any]() *MultiMap[K, V] {
	return &MultiMap[K, V]{m: hashmap.New[K, []V]()}
}

// Put appends val to the values of key.
func (u *MultiMap[K, V]) Put(key K, vals ...V) {
	if len(vals) == 0 {
		return
	}
	old, _ := u.m.Get(key)
	// never append in place, Merge walks the stored slices
	u.m.Set(key, append(slices.Clip(old), vals...))
	u.n += len(vals)
}

// Get returns a copy of the values of key, nil if absent.
func (u *MultiMap[K, V]) Get(key K) []V {
	vs, _ := u.m.Get(key)
	return slices.Clone(vs)
}

func (u *MultiMap[K, V]) Has(key K) bool {
	_, ok := u.m.Get(key)
	return ok
}

// Remove drops key and all its values.
func (u *MultiMap[K, V]) Remove(key K) bool {
	vs, ok := u.m.Get(key)
	if !ok {
		return false
	}
	u.m.Del(key)
	u.n -= len(vs)
	return true
}

// Len is the number of distinct keys.
func (u *MultiMap[K, V]) Len() int {
	return u.m.Len()
}

// Count is the number of values across all keys.
func (u *MultiMap[K, V]) Count() int {
	return u.n
}

func (u *MultiMap[K, V]) Keys() []K {
	ks := make([]K, 0, u.m.Len())
	u.m.Range(func(k K, _ []V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

func (u *MultiMap[K, V]) Range(f func(K, []V) bool) {
	u.m.Range(func(k K, vs []V) bool {
		return f(k, slices.Clone(vs))
	})
}

// Merge appends the values of other to u, key by key.
func (u *MultiMap[K, V]) Merge(other *MultiMap[K, V]) {
	if other == nil {
		return
	}
	type entry struct {
		k  K
		vs []V
	}
	var es []entry
	other.m.Range(func(k K, vs []V) bool {
		es = append(es, entry{k, vs})
		return true
	})
	for _, e := range es {
		u.Put(e.k, e.vs...)
	}
}

// MergeDict appends each value of d under its key.
func (u *MultiMap[K, V]) MergeDict(d *Dict[K, V]) {
	if d == nil {
		return
	}
	d.Range(func(k K, v V) bool {
		u.Put(k, v)
		return true
	})
}
