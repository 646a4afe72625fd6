package iterator

import (
	"go.lepak.sg/avlset/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree.
// The usage should be pretty familiar:
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T constraints.Ordered] struct {
	root    *tree.Node[T]
	stack   []*tree.Node[T]
	started bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Item is equivalent to f(n), where
// n is the top of the stack.
// The next call to Next continues from (2): pop n off and
// push the left spine of n.Right.

// NewInOrder returns a new in-order iterator over the tree rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T constraints.Ordered](root *tree.Node[T], heightHint int) *InOrder[T] {
	return &InOrder[T]{
		root:  root,
		stack: make([]*tree.Node[T], 0, heightHint),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.pushLeft(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(pop.Right)

	return len(i.stack) > 0
}

func (i *InOrder[T]) pushLeft(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.stack[len(i.stack)-1].Key
}

// Reset rewinds the iterator so that the next call to Next
// yields the smallest key again.
func (i *InOrder[T]) Reset() {
	i.stack = i.stack[:0]
	i.started = false
}
