package Queues

// ArrayQueue is a Queue backed by a circular array. The array grows by half
// of its length whenever a Push finds it full, and never shrinks unless Shrink
// is called. The zero value is an empty queue ready to use.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

var _ Queue[int] = (*ArrayQueue[int])(nil)

func NewArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

// resize moves the live items to the front of a new array of length newLen.
// newLen must be at least u.sz.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content = nc
	u.head = 0
	u.tail = u.sz % max(newLen, 1)
}

// Shrink the underlying array to fit the current items.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz | 1)
}

// Clear the queue, zeroing the slots so the items can be collected.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// Cap is the length of the underlying array.
func (u *ArrayQueue[T]) Cap() uint {
	return uint(len(u.content))
}

func (u *ArrayQueue[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(max(l*3/2, l+1))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

// Peek the item at the head of the queue without removing it.
func (u *ArrayQueue[T]) Peek() (item T, ok bool) {
	if u.Empty() {
		return
	}
	return u.content[u.head], true
}
