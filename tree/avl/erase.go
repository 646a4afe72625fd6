package avl

import (
	"go.lepak.sg/avlset/tree"
	"golang.org/x/exp/constraints"
)

// Erase removes k from the tree.
// If k is not in the tree, the tree is unchanged and Erase
// returns false.
func (t *Tree[T]) Erase(k T) bool {
	var removed bool
	t.root, removed = erase(t.root, k)
	if removed {
		t.count--
	}
	return removed
}

// erase removes k from the subtree rooted at n and returns the new
// subtree root, which the caller must store in place of n.
func erase[T constraints.Ordered](n *tree.Node[T], k T) (*tree.Node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left, removed = erase(n.Left, k)
	case tree.Greater:
		n.Right, removed = erase(n.Right, k)
	case tree.Equal:
		if n.Left == nil || n.Right == nil {
			// Splice the only child (or nothing) into n's place.
			// The child is already balanced with a correct height.
			child := n.Left
			if child == nil {
				child = n.Right
			}
			n.Left, n.Right = nil, nil
			return child, true
		}

		// Two children: take over the successor's key, then remove
		// the successor, which has no left child.
		succ := n.Right.Min()
		n.Key = succ.Key
		n.Right, removed = erase(n.Right, succ.Key)
	default:
		panic("unreachable")
	}

	if !removed {
		return n, false
	}

	return rebalance(n), true
}

// rebalance restores the height and balance of n after one of its
// subtrees shrank by at most one level. No single key drives the
// decision here, so the taller child's own balance factor picks
// between a single and a double rotation.
func rebalance[T constraints.Ordered](n *tree.Node[T]) *tree.Node[T] {
	n.Fix()
	bf := tree.BalanceFactor(n)

	if bf > 1 {
		if tree.BalanceFactor(n.Left) < 0 {
			// left-right
			n.Left = n.Left.RotateLeft()
		}
		// left-left, or left-balanced
		return n.RotateRight()
	}

	if bf < -1 {
		if tree.BalanceFactor(n.Right) > 0 {
			// right-left
			n.Right = n.Right.RotateRight()
		}
		// right-right, or right-balanced
		return n.RotateLeft()
	}

	return n
}
