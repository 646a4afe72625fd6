package iterator

import (
	"go.lepak.sg/avlset/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*PreOrder[int])(nil)

// PreOrder yields every node before either of its subtrees.
// Re-inserting keys in this order into an empty search tree
// rebuilds a tree with the same key set.
type PreOrder[T constraints.Ordered] struct {
	root    *tree.Node[T]
	at      *tree.Node[T]
	stack   []*tree.Node[T]
	started bool
}

// NewPreOrder returns a new pre-order iterator over the tree rooted at root.
func NewPreOrder[T constraints.Ordered](root *tree.Node[T], heightHint int) *PreOrder[T] {
	return &PreOrder[T]{
		root: root,
		// right children wait on the stack, at most one per level
		stack: make([]*tree.Node[T], 0, heightHint),
	}
}

func (i *PreOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		if i.root != nil {
			i.stack = append(i.stack, i.root)
		}
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	// left is pushed last so it is popped first
	if i.at.Right != nil {
		i.stack = append(i.stack, i.at.Right)
	}
	if i.at.Left != nil {
		i.stack = append(i.stack, i.at.Left)
	}

	return true
}

func (i *PreOrder[T]) Item() T {
	return i.at.Key
}

func (i *PreOrder[T]) Reset() {
	i.stack = i.stack[:0]
	i.at = nil
	i.started = false
}
