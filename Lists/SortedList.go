package Lists

import (
	"cmp"
	"iter"

	"github.com/emirpasic/gods/lists/arraylist"
	"golang.org/x/exp/constraints"
)

// SortedList keeps its values ordered by a comparison function. cmp(a, b)
// returns a negative number when a goes before b, zero when they're equal and
// a positive number otherwise. Equal values keep their insertion order.
type SortedList[T any] struct {
	list    *arraylist.List
	cmp     func(a, b T) int
	reverse bool
}

// NewSortedList returns a SortedList ordered by cmp, or by the reverse of cmp
// if reverse is true, holding values.
func NewSortedList[T any](cmp func(a, b T) int, reverse bool, values ...T) *SortedList[T] {
	u := &SortedList[T]{arraylist.New(), cmp, reverse}
	u.Extend(values...)
	return u
}

// NewOrderedList is NewSortedList in the natural ascending order of T.
func NewOrderedList[T constraints.Ordered](values ...T) *SortedList[T] {
	return NewSortedList(cmp.Compare[T], false, values...)
}

func (u *SortedList[T]) compare(a, b T) int {
	if u.reverse {
		return u.cmp(b, a)
	}
	return u.cmp(a, b)
}

func (u *SortedList[T]) at(i int) T {
	v, _ := u.list.Get(i)
	return v.(T)
}

// search returns the first index whose value goes after v (right==true), or
// the first index whose value doesn't go before v (right==false).
// Time: O(log n)
func (u *SortedList[T]) search(v T, right bool) int {
	lo, hi := 0, u.list.Size()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := u.compare(v, u.at(mid))
		if c > 0 || (right && c == 0) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Add v after every value that doesn't go after it, and returns its index.
func (u *SortedList[T]) Add(v T) int {
	i := u.search(v, true)
	u.list.Insert(i, v)
	return i
}

func (u *SortedList[T]) Extend(values ...T) {
	for _, v := range values {
		u.Add(v)
	}
}

// Merge adds all the values of o into u, using u's ordering.
func (u *SortedList[T]) Merge(o *SortedList[T]) {
	u.Extend(o.Values()...)
}

func (u *SortedList[T]) Get(i int) (T, bool) {
	return unbox[T](u.list.Get(i))
}

// Remove the value at i and returns it.
func (u *SortedList[T]) Remove(i int) (T, bool) {
	v, ok := u.Get(i)
	if ok {
		u.list.Remove(i)
	}
	return v, ok
}

// IndexOf returns the index of the first value equal to v according to the
// ordering, or -1.
func (u *SortedList[T]) IndexOf(v T) int {
	if i := u.search(v, false); i < u.list.Size() && u.compare(v, u.at(i)) == 0 {
		return i
	}
	return -1
}

func (u *SortedList[T]) Size() int {
	return u.list.Size()
}

func (u *SortedList[T]) Clear() {
	u.list.Clear()
}

func (u *SortedList[T]) Values() []T {
	r := make([]T, 0, u.list.Size())
	for _, v := range u.list.Values() {
		r = append(r, v.(T))
	}
	return r
}

// All yields index/value pairs in order.
func (u *SortedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := u.list.Iterator()
		for it.Next() {
			if !yield(it.Index(), it.Value().(T)) {
				return
			}
		}
	}
}

// Iterator returns a bidirectional Iterator positioned before the first value.
func (u *SortedList[T]) Iterator() *Iterator[T] {
	it := u.list.Iterator()
	return &Iterator[T]{it: &it}
}
