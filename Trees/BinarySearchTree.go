package Trees

import "golang.org/x/exp/constraints"

// BinarySearchTree is an unbalanced binary search tree. For every node, keys
// in its left subtree are less than its key and keys in its right subtree are
// greater or equal: equal keys are placed to the right.
// Let D be the depth of the tree; D is O(log n) for random insertion orders
// and O(n) for sorted ones.
type BinarySearchTree[K constraints.Ordered, V any] struct {
	Tree[K, V]
}

func NewBinarySearchTree[K constraints.Ordered, V any](opts ...Option) *BinarySearchTree[K, V] {
	t := new(BinarySearchTree[K, V])
	t.init(ordered[K, V]{}, opts)
	return t
}

// ordered reuses the removal of unsorted: removal only rewires links, which
// keeps the in-order sequence minus the removed key.
type ordered[K constraints.Ordered, V any] struct {
	unsorted[K, V]
}

// Time: O(D); Space: O(1)
func (ordered[K, V]) put(_ *Tree[K, V], n, cur *Node[K, V]) {
	for {
		if n.Key < cur.Key {
			if cur.left == nil {
				cur.left, n.parent = n, cur
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right, n.parent = n, cur
				return
			}
			cur = cur.right
		}
	}
}

// Time: O(D); Space: O(1)
func (ordered[K, V]) get(_ *Tree[K, V], key K, cur *Node[K, V]) *Node[K, V] {
	for cur != nil {
		if key == cur.Key {
			return cur
		} else if key < cur.Key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}

// valid checks every node against the bounds inherited from its ancestors:
// lo is inclusive, hi exclusive.
func (ordered[K, V]) valid(t *Tree[K, V]) bool {
	type frame struct {
		n      *Node[K, V]
		lo, hi *K
	}
	st := []frame{{n: t.root}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.n == nil {
			continue
		}
		if (f.lo != nil && f.n.Key < *f.lo) || (f.hi != nil && f.n.Key >= *f.hi) {
			return false
		}
		k := &f.n.Key
		st = append(st, frame{f.n.left, f.lo, k}, frame{f.n.right, k, f.hi})
	}
	return true
}

// Minimum returns the node with the smallest key, nil if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[K, V]) Minimum() *Node[K, V] {
	if u.root == nil {
		return nil
	}
	return u.root.FindMin()
}

// Maximum returns the node with the greatest key, nil if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[K, V]) Maximum() *Node[K, V] {
	if u.root == nil {
		return nil
	}
	return u.root.FindMax()
}

// Successor returns the node following the one holding key in in-order. It
// returns nil if key isn't in the tree or holds the greatest key.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[K, V]) Successor(key K) *Node[K, V] {
	if n := u.Find(key); n != nil {
		return n.FindSuccessor()
	}
	return nil
}
