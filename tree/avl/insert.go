package avl

import (
	"go.lepak.sg/avlset/tree"
	"golang.org/x/exp/constraints"
)

// Insert inserts k into the tree.
// If k is already in the tree, the tree is unchanged and Insert
// returns false.
func (t *Tree[T]) Insert(k T) bool {
	var added bool
	t.root, added = insert(t.root, k)
	if added {
		t.count++
	}
	return added
}

// insert adds k to the subtree rooted at n and returns the new
// subtree root, which the caller must store in place of n.
func insert[T constraints.Ordered](n *tree.Node[T], k T) (*tree.Node[T], bool) {
	if n == nil {
		return tree.NodeOf(k), true
	}

	var added bool
	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left, added = insert(n.Left, k)
	case tree.Greater:
		n.Right, added = insert(n.Right, k)
	case tree.Equal:
		return n, false
	default:
		panic("unreachable")
	}

	if !added {
		// nothing below changed shape
		return n, false
	}

	n.Fix()
	bf := tree.BalanceFactor(n)

	// k went into the taller side. Which grandchild it landed
	// under decides between a single and a double rotation.
	if bf > 1 {
		switch tree.Compare(k, n.Left.Key) {
		case tree.Less:
			// left-left
			return n.RotateRight(), true
		case tree.Greater:
			// left-right
			n.Left = n.Left.RotateLeft()
			return n.RotateRight(), true
		}
	}

	if bf < -1 {
		switch tree.Compare(k, n.Right.Key) {
		case tree.Greater:
			// right-right
			return n.RotateLeft(), true
		case tree.Less:
			// right-left
			n.Right = n.Right.RotateRight()
			return n.RotateLeft(), true
		}
	}

	return n, true
}
