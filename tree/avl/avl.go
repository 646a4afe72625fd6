// Package avl implements an ordered set of unique keys on top of
// an AVL tree: a binary search tree that restores
// |height(left) - height(right)| <= 1 at every node after each
// insertion and removal, keeping the height O(log n).
package avl

import (
	"go.lepak.sg/avlset/tree"
	"golang.org/x/exp/constraints"
)

// Tree is an ordered set backed by an AVL tree. It is not safe for
// concurrent use; wrap it in a Locked (or your own mutex) if several
// goroutines need it.
//
// The zero Tree is empty and may be used immediately. Tree holds
// its nodes through a pointer, so copying a Tree value makes two
// trees share nodes: use Clone to copy and Move to transfer.
//
// Invariants, restored before any method returns:
//  - At any node N, all keys in the subtree rooted at N.Left
//    are less than N.Key, and all keys under N.Right are greater
//  - No key appears more than once
//  - N.Height == 1 + max(height(N.Left), height(N.Right)),
//    where an absent child has height 0
//  - |height(N.Left) - height(N.Right)| <= 1
type Tree[T constraints.Ordered] struct {
	// don't return nodes directly - client could mutate keys or children!
	root  *tree.Node[T]
	count int
}

// New returns an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Height returns the height of the tree: 0 when empty, 1 for a single key.
func (t *Tree[T]) Height() int {
	return tree.Height(t.root)
}

// Find searches for k and returns the stored key equal to it.
// If there is no such key, found is false and key is the zero T.
func (t *Tree[T]) Find(k T) (key T, found bool) {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return n.Key, true
		default:
			panic("unreachable")
		}
	}

	// fell off the tree
	return
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	_, ok := t.Find(k)
	return ok
}

// Min returns the smallest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Min() (k T, ok bool) {
	if t.root == nil {
		return
	}
	return t.root.Min().Key, true
}

// Max returns the largest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Max() (k T, ok bool) {
	if t.root == nil {
		return
	}
	return t.root.Max().Key, true
}

// Clear removes every key from the tree.
// Nodes are released in post-order: both children are detached
// before their parent, and each node is visited exactly once.
func (t *Tree[T]) Clear() {
	release(t.root)
	t.root = nil
	t.count = 0
}

func release[T constraints.Ordered](n *tree.Node[T]) {
	if n == nil {
		return
	}
	release(n.Left)
	release(n.Right)
	n.Left, n.Right = nil, nil
}

// Clone returns a deep copy of t.
// Keys are re-inserted in pre-order, so the copy holds the same keys
// but may be shaped differently. No node is shared with t.
func (t *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{}
	c.insertPreOrder(t.root)
	return c
}

// CopyFrom replaces the contents of t with a deep copy of src.
// Copying a tree onto itself does nothing.
func (t *Tree[T]) CopyFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.Clear()
	t.insertPreOrder(src.root)
}

func (t *Tree[T]) insertPreOrder(n *tree.Node[T]) {
	if n == nil {
		return
	}
	t.Insert(n.Key)
	t.insertPreOrder(n.Left)
	t.insertPreOrder(n.Right)
}

// Move returns a new tree that takes over all of t's nodes.
// t is left empty. No keys are copied.
func (t *Tree[T]) Move() *Tree[T] {
	m := &Tree[T]{
		root:  t.root,
		count: t.count,
	}
	t.root, t.count = nil, 0
	return m
}

// MoveFrom clears t, then takes over all of src's nodes,
// leaving src empty. Moving a tree onto itself does nothing.
func (t *Tree[T]) MoveFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.Clear()
	t.root, t.count = src.root, src.count
	src.root, src.count = nil, 0
}

// String returns a diagram of the tree. See tree.Sprint.
func (t *Tree[T]) String() string {
	return tree.Sprint(t.root, false)
}
