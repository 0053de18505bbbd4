package Trees

import (
	"iter"

	"github.com/moogar0880/structs/Queues"
	"golang.org/x/exp/constraints"
)

// The depth first walks are written once over Node.Children. Children whose
// key is less than their parent's form the "less" group and are visited as
// the left side of the walk; the rest, ties included, form the "greater"
// group. For a BinarySearchTree this is the usual left/right order; for a
// BinaryTree the visiting order is decided by the keys, not by the slots.
// All walks are recursive. The returned sequences are lazy and start a fresh
// walk every time they're ranged over; the tree mustn't be modified while one
// is in progress.

type walkFunc[K constraints.Ordered, V any] func(*Node[K, V], func(*Node[K, V]) bool) bool

// group walks the children of n that belong to the less group (less==true) or
// the greater group, in slot order.
func group[K constraints.Ordered, V any](n *Node[K, V], less bool, walk walkFunc[K, V], yield func(*Node[K, V]) bool) bool {
	for _, c := range n.Children() {
		if c != nil && c.Less(n) == less && !walk(c, yield) {
			return false
		}
	}
	return true
}

func preOrder[K constraints.Ordered, V any](n *Node[K, V], yield func(*Node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return yield(n) && group(n, true, preOrder[K, V], yield) && group(n, false, preOrder[K, V], yield)
}

func inOrder[K constraints.Ordered, V any](n *Node[K, V], yield func(*Node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return group(n, true, inOrder[K, V], yield) && yield(n) && group(n, false, inOrder[K, V], yield)
}

func postOrder[K constraints.Ordered, V any](n *Node[K, V], yield func(*Node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return group(n, true, postOrder[K, V], yield) && group(n, false, postOrder[K, V], yield) && yield(n)
}

// PreOrder walks each node before its less group, then its greater group.
func (u *Tree[K, V]) PreOrder() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		preOrder(u.root, yield)
	}
}

// InOrder walks the less group, then the node, then the greater group. This is
// the default order of a tree.
func (u *Tree[K, V]) InOrder() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		inOrder(u.root, yield)
	}
}

// PostOrder walks both groups before the node.
func (u *Tree[K, V]) PostOrder() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		postOrder(u.root, yield)
	}
}

// LevelOrder walks the tree breadth first, children in slot order.
// Iterative; the frontier is an ArrayQueue.
func (u *Tree[K, V]) LevelOrder() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		if u.root == nil {
			return
		}
		q := Queues.NewArrayQueue[*Node[K, V]](4)
		q.Push(u.root)
		for !q.Empty() {
			n, _ := q.Pop()
			if !yield(n) {
				return
			}
			for _, c := range n.Children() {
				if c != nil {
					q.Push(c)
				}
			}
		}
	}
}

// All yields the key/value pairs in in-order.
func (u *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range u.InOrder() {
			if !yield(n.Key, n.Data) {
				return
			}
		}
	}
}

// Keys yields the keys in in-order.
func (u *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range u.InOrder() {
			if !yield(n.Key) {
				return
			}
		}
	}
}

// Values yields the data in in-order.
func (u *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := range u.InOrder() {
			if !yield(n.Data) {
				return
			}
		}
	}
}
