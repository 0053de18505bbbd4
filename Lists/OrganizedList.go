package Lists

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

type counted[T any] struct {
	data  T
	count uint
}

func (c *counted[T]) String() string {
	return fmt.Sprintf("%v:%d", c.data, c.count)
}

// OrganizedList is a self-organizing list ordered by access frequency. Every
// Get counts an access and moves the value in front of all the values that
// have been accessed as many times or fewer, so frequently read values drift
// to the front and the most recently read value wins ties.
// New values start with no accesses and go to the back.
type OrganizedList[T any] struct {
	list *arraylist.List // of *counted[T], counts never increase front to back
}

func NewOrganizedList[T any](values ...T) *OrganizedList[T] {
	u := &OrganizedList[T]{arraylist.New()}
	u.Add(values...)
	return u
}

func (u *OrganizedList[T]) at(i int) *counted[T] {
	v, _ := u.list.Get(i)
	return v.(*counted[T])
}

func (u *OrganizedList[T]) Add(values ...T) {
	for _, v := range values {
		u.list.Add(&counted[T]{data: v})
	}
}

// Get the value at i and promote it. ok is false if i is out of range.
// Time: O(n)
func (u *OrganizedList[T]) Get(i int) (v T, ok bool) {
	if i < 0 || i >= u.list.Size() {
		return v, false
	}
	c := u.at(i)
	c.count++
	for ; i > 0 && u.at(i-1).count <= c.count; i-- {
		u.list.Swap(i-1, i)
	}
	return c.data, true
}

// Peek at the value at i without counting an access.
func (u *OrganizedList[T]) Peek(i int) (v T, ok bool) {
	if i < 0 || i >= u.list.Size() {
		return v, false
	}
	return u.at(i).data, true
}

// Count returns how many times the value at i has been read through Get.
func (u *OrganizedList[T]) Count(i int) uint {
	if i < 0 || i >= u.list.Size() {
		return 0
	}
	return u.at(i).count
}

// Pop removes the value at i and returns it.
func (u *OrganizedList[T]) Pop(i int) (v T, ok bool) {
	if i < 0 || i >= u.list.Size() {
		return v, false
	}
	v = u.at(i).data
	u.list.Remove(i)
	return v, true
}

func (u *OrganizedList[T]) Size() int {
	return u.list.Size()
}

// Values in their current order. Reading them doesn't count as an access.
func (u *OrganizedList[T]) Values() []T {
	r := make([]T, 0, u.list.Size())
	for _, v := range u.list.Values() {
		r = append(r, v.(*counted[T]).data)
	}
	return r
}

// String lists value:count pairs in order.
func (u *OrganizedList[T]) String() string {
	return fmt.Sprint(u.list.Values())
}
