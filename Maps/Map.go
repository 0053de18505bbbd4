package Maps

import "golang.org/x/exp/constraints"

// Hashable is the key set accepted by the underlying lock-free maps.
type Hashable interface {
	constraints.Integer | constraints.Float | ~string
}

// Map is implemented by Dict and MultiMap.
type Map[K Hashable, V any] interface {
	Has(K) bool
	Remove(K) bool
	Keys() []K
	Len() int
}
