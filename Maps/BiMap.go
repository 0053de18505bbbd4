package Maps

import (
	"github.com/alphadose/haxmap"
)

// BiMap is a one-to-one map that can be looked up from either side. Putting a
// pair evicts whatever pairs shared its key or its value.
type BiMap[K, V Hashable] struct {
	fwd *haxmap.Map[K, V]
	inv *haxmap.Map[V, K]
}

func NewBiMap[K, V Hashable]() *BiMap[K, V] {
	return &BiMap[K, V]{fwd: haxmap.New[K, V](), inv: haxmap.New[V, K]()}
}

func (u *BiMap[K, V]) Put(key K, val V) {
	if old, ok := u.fwd.Get(key); ok {
		u.inv.Del(old)
	}
	if old, ok := u.inv.Get(val); ok {
		u.fwd.Del(old)
	}
	u.fwd.Set(key, val)
	u.inv.Set(val, key)
}

func (u *BiMap[K, V]) Get(key K) (V, bool) {
	return u.fwd.Get(key)
}

// GetKey is the reverse lookup.
func (u *BiMap[K, V]) GetKey(val V) (K, bool) {
	return u.inv.Get(val)
}

func (u *BiMap[K, V]) Has(key K) bool {
	_, ok := u.fwd.Get(key)
	return ok
}

func (u *BiMap[K, V]) HasValue(val V) bool {
	_, ok := u.inv.Get(val)
	return ok
}

func (u *BiMap[K, V]) Remove(key K) bool {
	v, ok := u.fwd.Get(key)
	if !ok {
		return false
	}
	u.fwd.Del(key)
	u.inv.Del(v)
	return true
}

func (u *BiMap[K, V]) RemoveValue(val V) bool {
	return u.Inverse().Remove(val)
}

func (u *BiMap[K, V]) Len() int {
	return int(u.fwd.Len())
}

func (u *BiMap[K, V]) Keys() []K {
	ks := make([]K, 0, u.fwd.Len())
	u.fwd.ForEach(func(k K, _ V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

func (u *BiMap[K, V]) Range(f func(K, V) bool) {
	u.fwd.ForEach(f)
}

// Inverse returns a view with the sides swapped. It shares storage with u.
func (u *BiMap[K, V]) Inverse() *BiMap[V, K] {
	return &BiMap[V, K]{fwd: u.inv, inv: u.fwd}
}
