package Lists

import "iter"

// CircularArray is a BaseList whose iteration never ends: walking past either
// end wraps around to the other one. Only an empty CircularArray stops.
// Loops over a CircularArray need an explicit break or return.
type CircularArray[T any] struct {
	BaseList[T]
}

func NewCircularArray[T any](values ...T) *CircularArray[T] {
	return &CircularArray[T]{*NewBaseList(values...)}
}

// Iterator returns a wrapping iterator positioned before the first element.
func (u *CircularArray[T]) Iterator() *CircularIterator[T] {
	return &CircularIterator[T]{list: &u.BaseList, index: -1}
}

// Cycle yields the values front to back forever.
func (u *CircularArray[T]) Cycle() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := u.Iterator(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// CircularIterator walks a CircularArray in both directions, wrapping around
// at the ends. Next and Prev only return false when the list is empty.
type CircularIterator[T any] struct {
	list  *BaseList[T]
	index int // -1 before the first move
}

func (u *CircularIterator[T]) Next() bool {
	n := u.list.Size()
	if n == 0 {
		return false
	}
	if u.index < 0 {
		u.index = 0
	} else {
		u.index = (u.index + 1) % n
	}
	return true
}

func (u *CircularIterator[T]) Prev() bool {
	n := u.list.Size()
	if n == 0 {
		return false
	}
	if u.index < 0 {
		u.index = n - 1
	} else {
		u.index = (u.index%n - 1 + n) % n
	}
	return true
}

// Value at the current position. Only valid after Next or Prev returned true.
func (u *CircularIterator[T]) Value() T {
	v, _ := u.list.Get(u.index % u.list.Size())
	return v
}

func (u *CircularIterator[T]) Index() int {
	return u.index
}

// Begin resets the iterator to its initial state.
func (u *CircularIterator[T]) Begin() {
	u.index = -1
}
