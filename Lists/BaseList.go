package Lists

import (
	"iter"

	"github.com/emirpasic/gods/lists/arraylist"
)

// BaseList is a list that can be walked in both directions, either through an
// Iterator or through the All and Backward sequences.
// Values are kept boxed in a gods arraylist.
type BaseList[T any] struct {
	list *arraylist.List
}

func NewBaseList[T any](values ...T) *BaseList[T] {
	return &BaseList[T]{arraylist.New(boxed(values)...)}
}

func boxed[T any](vs []T) []interface{} {
	b := make([]interface{}, len(vs))
	for i, v := range vs {
		b[i] = v
	}
	return b
}

func unbox[T any](v interface{}, ok bool) (T, bool) {
	if !ok {
		return *new(T), false
	}
	return v.(T), true
}

// Add values at the end of the list.
func (u *BaseList[T]) Add(values ...T) {
	u.list.Add(boxed(values)...)
}

// Get the value at i. ok is false if i is out of range.
func (u *BaseList[T]) Get(i int) (v T, ok bool) {
	return unbox[T](u.list.Get(i))
}

// Set the value at i. Setting at Size() appends; other out of range indexes
// are ignored.
func (u *BaseList[T]) Set(i int, v T) {
	u.list.Set(i, v)
}

// Insert values before index i, shifting the rest to the right.
func (u *BaseList[T]) Insert(i int, values ...T) {
	u.list.Insert(i, boxed(values)...)
}

func (u *BaseList[T]) Remove(i int) {
	u.list.Remove(i)
}

func (u *BaseList[T]) Size() int {
	return u.list.Size()
}

func (u *BaseList[T]) Empty() bool {
	return u.list.Empty()
}

func (u *BaseList[T]) Clear() {
	u.list.Clear()
}

// Values returns a copy of the list content.
func (u *BaseList[T]) Values() []T {
	r := make([]T, 0, u.list.Size())
	for _, v := range u.list.Values() {
		r = append(r, v.(T))
	}
	return r
}

// All yields index/value pairs front to back.
func (u *BaseList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := u.list.Iterator()
		for it.Next() {
			if !yield(it.Index(), it.Value().(T)) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (u *BaseList[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := u.list.Iterator()
		for it.End(); it.Prev(); {
			if !yield(it.Index(), it.Value().(T)) {
				return
			}
		}
	}
}

// Iterator returns a stateful Iterator positioned before the first element.
func (u *BaseList[T]) Iterator() *Iterator[T] {
	it := u.list.Iterator()
	return &Iterator[T]{it: &it}
}

// Iterator walks a list in both directions. The list mustn't be modified
// while iterating.
type Iterator[T any] struct {
	it *arraylist.Iterator
}

// Next moves to the next element and reports whether there is one.
func (u *Iterator[T]) Next() bool {
	return u.it.Next()
}

// Prev moves to the previous element and reports whether there is one.
func (u *Iterator[T]) Prev() bool {
	return u.it.Prev()
}

// Value at the current position. Only valid after Next or Prev returned true.
func (u *Iterator[T]) Value() T {
	return u.it.Value().(T)
}

func (u *Iterator[T]) Index() int {
	return u.it.Index()
}

// Begin resets the iterator to its initial state, before the first element.
func (u *Iterator[T]) Begin() {
	u.it.Begin()
}

// End moves the iterator past the last element, so that Prev yields it.
func (u *Iterator[T]) End() {
	u.it.End()
}
