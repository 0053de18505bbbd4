package Trees

import (
	"iter"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// policy is the placement, search and removal strategy plugged into a Tree.
// Tree handles the root and size bookkeeping and calls into the policy only
// once the tree is non empty.
type policy[K constraints.Ordered, V any] interface {
	// put attaches the detached leaf n somewhere below cur.
	put(t *Tree[K, V], n, cur *Node[K, V])
	// get returns the node holding key in the subtree rooted at cur, or nil.
	get(t *Tree[K, V], key K, cur *Node[K, V]) *Node[K, V]
	// remove unlinks n from t. t.size is adjusted by the caller.
	remove(t *Tree[K, V], n *Node[K, V])
	// valid reports whether the ordering invariant of the policy holds.
	valid(t *Tree[K, V]) bool
}

// Walker is anything that can walk its entries in in-order. Both BinaryTree
// and BinarySearchTree are Walkers.
type Walker[K constraints.Ordered, V any] interface {
	InOrder() iter.Seq[*Node[K, V]]
}

// Tree is a key ordered container made of Nodes with at most two children.
// Duplicate keys are allowed: every Put adds a node.
// Tree holds the logic shared by all variants; how nodes are placed, found
// and removed is decided by the variant's policy. A Tree must be created
// through NewBinaryTree or NewBinarySearchTree, the zero value is unusable.
// Trees are not safe for concurrent use.
type Tree[K constraints.Ordered, V any] struct {
	root   *Node[K, V]
	size   uint
	policy policy[K, V]
	log    zerolog.Logger
}

func (u *Tree[K, V]) init(p policy[K, V], opts []Option) {
	o := buildOptions(opts)
	u.policy, u.log = p, o.log
}

// Put stores value at key. The first Put creates the root, later ones are
// placed by the variant's policy.
func (u *Tree[K, V]) Put(key K, value V) {
	n := &Node[K, V]{Key: key, Data: value}
	if u.root == nil {
		u.root = n
	} else {
		u.policy.put(u, n, u.root)
	}
	u.size++
}

// Find returns the node holding key, or nil if there is none. With duplicate
// keys, which of them is returned depends on the variant.
func (u *Tree[K, V]) Find(key K) *Node[K, V] {
	if u.root == nil {
		return nil
	}
	return u.policy.get(u, key, u.root)
}

// Get returns the value stored at key, or def if key isn't in the tree.
func (u *Tree[K, V]) Get(key K, def V) V {
	if n := u.Find(key); n != nil {
		return n.Data
	}
	return def
}

// Has reports whether a node holds key.
func (u *Tree[K, V]) Has(key K) bool {
	return u.Find(key) != nil
}

// Delete removes the node holding key. It returns a *KeyNotFoundError and
// leaves the tree untouched if there is no such node.
// When the removed node has two children, its in-order successor is spliced
// out and its key and data are moved into the removed node, so a *Node
// obtained earlier may change content.
func (u *Tree[K, V]) Delete(key K) error {
	if u.size > 1 {
		if n := u.policy.get(u, key, u.root); n != nil {
			u.policy.remove(u, n)
			u.size--
			return nil
		}
	} else if u.size == 1 && u.root.Key == key {
		u.root = nil
		u.size = 0
		return nil
	}
	return &KeyNotFoundError{Key: key}
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *Tree[K, V]) Size() uint {
	return u.size
}

func (u *Tree[K, V]) Empty() bool {
	return u.size == 0
}

// Root node of the tree, nil when empty.
func (u *Tree[K, V]) Root() *Node[K, V] {
	return u.root
}

// Clear drops every node.
func (u *Tree[K, V]) Clear() {
	u.root, u.size = nil, 0
}

// Merge puts every entry of other, taken in other's in-order, into u. The
// entries are collected before any Put, so merging a tree into itself doubles
// it. A nil other is reported as a *TypeMismatchError.
func (u *Tree[K, V]) Merge(other Walker[K, V]) error {
	if other == nil {
		return &TypeMismatchError{Operand: other}
	}
	var pending []Node[K, V]
	for n := range other.InOrder() {
		pending = append(pending, Node[K, V]{Key: n.Key, Data: n.Data})
	}
	for i := range pending {
		u.Put(pending[i].Key, pending[i].Data)
	}
	return nil
}

// Corrupt returns whether the tree has corrupt structures: a child whose
// parent pointer doesn't point back, a size that doesn't match the number of
// reachable nodes, or a violation of the variant's ordering.
func (u *Tree[K, V]) Corrupt() bool {
	if u.root == nil {
		return u.size != 0
	}
	if u.root.parent != nil {
		return true
	}
	var count uint
	st := []*Node[K, V]{u.root}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		count++
		for _, c := range cur.Children() {
			if c != nil {
				if c.parent != cur {
					return true
				}
				st = append(st, c)
			}
		}
	}
	return count != u.size || !u.policy.valid(u)
}

// splice unlinks n, which must have at most one child, and moves that child
// into n's slot. Splicing the root promotes its child to be the new root.
func (u *Tree[K, V]) splice(n *Node[K, V]) {
	child := n.left
	if child == nil {
		child = n.right
	}
	p := n.parent
	if child != nil {
		child.parent = p
	}
	switch {
	case p == nil:
		u.root = child
	case p.left == n:
		p.left = child
	default:
		p.right = child
	}
	n.parent, n.left, n.right = nil, nil, nil
}

// removeNode unlinks n according to how many children it has.
func (u *Tree[K, V]) removeNode(n *Node[K, V]) {
	switch {
	case n.IsLeaf():
		u.log.Debug().Interface("key", n.Key).Bool("root", n.IsRoot()).Msg("splice leaf")
		u.splice(n)
	case n.HasBothChildren():
		succ := n.FindSuccessor()
		u.log.Debug().Interface("key", n.Key).Interface("successor", succ.Key).Msg("replace with successor")
		u.splice(succ)
		n.Key, n.Data = succ.Key, succ.Data
	default:
		u.log.Debug().Interface("key", n.Key).Bool("root", n.IsRoot()).Msg("promote only child")
		u.splice(n)
	}
}
