// Package iterator provides tree iterators for use
// by tree implementations.
//
// Nodes carry no parent pointer, so every iterator keeps
// an explicit stack of the nodes it still has to come back to.
// The stack never grows beyond the height of the tree.
package iterator

import (
	"fmt"

	"go.lepak.sg/avlset/chops"
	"go.lepak.sg/avlset/tree"
	"golang.org/x/exp/constraints"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Once Next has returned false it keeps returning false
// until Reset is called.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//	i := someTree.Iterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T constraints.Ordered] interface {
	Next() bool
	Item() T
	// Reset rewinds the iterator to before the first item.
	Reset()
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)

// Traversal selects the visiting order of an iterator.
type Traversal int

const (
	// InOrderTraversal visits left subtree, node, right subtree.
	// Keys of a search tree come out ascending.
	InOrderTraversal Traversal = iota
	// PreOrderTraversal visits node, left subtree, right subtree.
	PreOrderTraversal
	// PostOrderTraversal visits left subtree, right subtree, node.
	PostOrderTraversal
	// InOrderReverseTraversal visits right subtree, node, left subtree.
	InOrderReverseTraversal
)

func (tr Traversal) String() string {
	switch tr {
	case InOrderTraversal:
		return "in-order"
	case PreOrderTraversal:
		return "pre-order"
	case PostOrderTraversal:
		return "post-order"
	case InOrderReverseTraversal:
		return "reverse in-order"
	default:
		return fmt.Sprintf("<invalid iterator.Traversal %d>", int(tr))
	}
}

// New returns an iterator of the given traversal over the tree
// rooted at root. heightHint sizes the internal stack; pass 0
// if the height is unknown.
// New panics if tr is not one of the Traversal constants.
func New[T constraints.Ordered](root *tree.Node[T], tr Traversal, heightHint int) Iterator[T] {
	switch tr {
	case InOrderTraversal:
		return NewInOrder(root, heightHint)
	case PreOrderTraversal:
		return NewPreOrder(root, heightHint)
	case PostOrderTraversal:
		return NewPostOrder(root, heightHint)
	case InOrderReverseTraversal:
		return NewInOrderReverse(root, heightHint)
	default:
		panic("unknown traversal " + tr.String())
	}
}
