package iterator

import (
	"go.lepak.sg/avlset/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*PostOrder[int])(nil)

// PostOrder yields every node after both of its subtrees,
// so a node is never yielded before any of its descendants.
type PostOrder[T constraints.Ordered] struct {
	root    *tree.Node[T]
	stack   []*tree.Node[T]
	cur     *tree.Node[T] // next subtree to descend into
	last    *tree.Node[T] // last yielded node
	started bool
}

// NewPostOrder returns a new post-order iterator over the tree rooted at root.
func NewPostOrder[T constraints.Ordered](root *tree.Node[T], heightHint int) *PostOrder[T] {
	return &PostOrder[T]{
		root:  root,
		stack: make([]*tree.Node[T], 0, heightHint),
	}
}

func (i *PostOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.cur = i.root
	}

	for i.cur != nil || len(i.stack) > 0 {
		if i.cur != nil {
			i.stack = append(i.stack, i.cur)
			i.cur = i.cur.Left
			continue
		}

		top := i.stack[len(i.stack)-1]
		if top.Right != nil && i.last != top.Right {
			// right subtree not done yet
			i.cur = top.Right
			continue
		}

		i.stack = i.stack[:len(i.stack)-1]
		i.last = top
		return true
	}

	i.last = nil
	return false
}

func (i *PostOrder[T]) Item() T {
	return i.last.Key
}

func (i *PostOrder[T]) Reset() {
	i.stack = i.stack[:0]
	i.cur, i.last = nil, nil
	i.started = false
}
