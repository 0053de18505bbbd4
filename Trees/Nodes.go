package Trees

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Node is a key/value slot in a Tree. A Node owns its two child slots; parent
// is a back pointer used only for navigation.
// Nodes are created by the Tree they live in. The zero value is a detached
// leaf.
type Node[K constraints.Ordered, V any] struct {
	Key         K
	Data        V
	parent      *Node[K, V]
	left, right *Node[K, V]
}

func (u *Node[K, V]) Parent() *Node[K, V] {
	return u.parent
}

func (u *Node[K, V]) Left() *Node[K, V] {
	return u.left
}

func (u *Node[K, V]) Right() *Node[K, V] {
	return u.right
}

// Children returns the left and right slots, either of which may be nil.
func (u *Node[K, V]) Children() [2]*Node[K, V] {
	return [2]*Node[K, V]{u.left, u.right}
}

func (u *Node[K, V]) IsRoot() bool {
	return u.parent == nil
}

func (u *Node[K, V]) IsLeaf() bool {
	return u.left == nil && u.right == nil
}

func (u *Node[K, V]) HasChildren() bool {
	return u.left != nil || u.right != nil
}

func (u *Node[K, V]) HasLeft() bool {
	return u.left != nil
}

func (u *Node[K, V]) HasRight() bool {
	return u.right != nil
}

func (u *Node[K, V]) HasBothChildren() bool {
	return u.left != nil && u.right != nil
}

func (u *Node[K, V]) IsLeftChild() bool {
	return u.parent != nil && u.parent.left == u
}

func (u *Node[K, V]) IsRightChild() bool {
	return u.parent != nil && u.parent.right == u
}

// Equal reports whether both nodes hold deeply equal Data. Keys and positions
// are ignored.
func (u *Node[K, V]) Equal(o *Node[K, V]) bool {
	if u == nil || o == nil {
		return u == o
	}
	return reflect.DeepEqual(u.Data, o.Data)
}

// Less and the other comparisons order nodes by Key only.
func (u *Node[K, V]) Less(o *Node[K, V]) bool {
	return u.Key < o.Key
}

func (u *Node[K, V]) LessEq(o *Node[K, V]) bool {
	return u.Key <= o.Key
}

func (u *Node[K, V]) Greater(o *Node[K, V]) bool {
	return u.Key > o.Key
}

func (u *Node[K, V]) GreaterEq(o *Node[K, V]) bool {
	return u.Key >= o.Key
}

// Update overwrites key and data. A non nil left or right replaces the
// corresponding child and is re-parented to u; nil keeps the existing child.
// Update does not check ordering, so calling it on a node of a
// BinarySearchTree with a different key may corrupt that tree.
func (u *Node[K, V]) Update(key K, data V, left, right *Node[K, V]) {
	u.Key, u.Data = key, data
	if left != nil {
		u.left = left
	}
	if right != nil {
		u.right = right
	}
	if u.left != nil {
		u.left.parent = u
	}
	if u.right != nil {
		u.right.parent = u
	}
}

// FindMin returns the leftmost node of the subtree rooted at u.
func (u *Node[K, V]) FindMin() *Node[K, V] {
	cur := u
	for cur.left != nil {
		cur = cur.left
	}
	return cur
}

// FindMax returns the rightmost node of the subtree rooted at u.
func (u *Node[K, V]) FindMax() *Node[K, V] {
	cur := u
	for cur.right != nil {
		cur = cur.right
	}
	return cur
}

// FindSuccessor returns the node that follows u in in-order, or nil if u is
// the last one.
// Time: O(D); Space: O(1)
func (u *Node[K, V]) FindSuccessor() *Node[K, V] {
	if u.right != nil {
		return u.right.FindMin()
	}
	cur := u
	for cur.parent != nil && cur.parent.right == cur {
		cur = cur.parent
	}
	return cur.parent
}

func (u *Node[K, V]) String() string {
	return fmt.Sprint(u.Data)
}

// detach removes the link between u and its parent. u keeps its children.
func (u *Node[K, V]) detach() {
	if p := u.parent; p != nil {
		if p.left == u {
			p.left = nil
		} else if p.right == u {
			p.right = nil
		}
		u.parent = nil
	}
}
