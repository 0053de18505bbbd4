package Trees

import (
	"github.com/moogar0880/structs/Queues"
	"golang.org/x/exp/constraints"
)

// BinaryTree is an unsorted Tree: nodes fill the first open child slot found
// breadth first from the root, so the tree stays complete as long as nothing
// is deleted. Lookups scan the whole tree.
type BinaryTree[K constraints.Ordered, V any] struct {
	Tree[K, V]
}

func NewBinaryTree[K constraints.Ordered, V any](opts ...Option) *BinaryTree[K, V] {
	t := new(BinaryTree[K, V])
	t.init(unsorted[K, V]{}, opts)
	return t
}

type unsorted[K constraints.Ordered, V any] struct{}

// put probes the subtree at cur level by level and attaches n to the first
// empty slot, left before right.
// Time: O(n)
func (unsorted[K, V]) put(_ *Tree[K, V], n, cur *Node[K, V]) {
	q := Queues.NewArrayQueue[*Node[K, V]](4)
	q.Push(cur)
	for {
		c, err := q.Pop()
		if err != nil {
			return // unreachable: a finite tree always has an empty slot
		}
		if c.left == nil {
			c.left, n.parent = n, c
			return
		} else if c.right == nil {
			c.right, n.parent = n, c
			return
		}
		q.Push(c.left)
		q.Push(c.right)
	}
}

// get is a linear scan of the in-order walk.
// Time: O(n)
func (unsorted[K, V]) get(t *Tree[K, V], key K, _ *Node[K, V]) *Node[K, V] {
	for n := range t.InOrder() {
		if n.Key == key {
			return n
		}
	}
	return nil
}

// remove splices n out. A node with two children takes over the key and data
// of its in-order successor, which is spliced out instead.
func (unsorted[K, V]) remove(t *Tree[K, V], n *Node[K, V]) {
	t.removeNode(n)
}

func (unsorted[K, V]) valid(*Tree[K, V]) bool {
	return true
}
