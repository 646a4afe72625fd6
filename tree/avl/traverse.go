package avl

import (
	"context"

	"go.lepak.sg/avlset/chops"
	"go.lepak.sg/avlset/tree"
	"go.lepak.sg/avlset/tree/iterator"
	"golang.org/x/exp/constraints"
)

// InOrder applies f to each key in ascending order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	visitInOrder(t.root, f)
}

// PreOrder applies f to each key, visiting a node before its subtrees.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	visitPreOrder(t.root, f)
}

// PostOrder applies f to each key, visiting a node after its subtrees.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PostOrder(f func(k T) bool) {
	visitPostOrder(t.root, f)
}

// Classic recursive iteration. Recursion depth is bounded by the
// tree height. Compare these to the iterator package, which keeps
// its own stack instead.

func visitInOrder[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}
	return visitInOrder(n.Left, f) && f(n.Key) && visitInOrder(n.Right, f)
}

func visitPreOrder[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}
	return f(n.Key) && visitPreOrder(n.Left, f) && visitPreOrder(n.Right, f)
}

func visitPostOrder[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}
	return visitPostOrder(n.Left, f) && visitPostOrder(n.Right, f) && f(n.Key)
}

// Keys returns all keys in ascending order.
func (t *Tree[T]) Keys() []T {
	ks := make([]T, 0, t.count)
	t.InOrder(func(k T) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

// Iterator returns an iterator that yields keys from the tree
// in the given traversal order.
func (t *Tree[T]) Iterator(tr iterator.Traversal) iterator.Iterator[T] {
	return iterator.New(t.root, tr, t.Height())
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in ascending order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root, t.Height())
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in descending order.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root, t.Height())
}

// PreOrderIterator returns an iterator object that yields
// each key before the keys of its subtrees.
func (t *Tree[T]) PreOrderIterator() *iterator.PreOrder[T] {
	return iterator.NewPreOrder(t.root, t.Height())
}

// PostOrderIterator returns an iterator object that yields
// each key after the keys of its subtrees.
func (t *Tree[T]) PostOrderIterator() *iterator.PostOrder[T] {
	return iterator.NewPostOrder(t.root, t.Height())
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine(ctx)
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when
// Stop() is called, ctx is done, or the iteration is finished.
// The tree must not be modified until that goroutine exits.
func (t *Tree[T]) InOrderCoroutine(ctx context.Context) chops.CoIterator[T] {
	// ?? Why can't T be inferred for CoIterateContext ??
	return chops.CoIterateContext[T](ctx, t.InOrderIterator())
}
