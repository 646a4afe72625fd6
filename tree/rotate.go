package tree

// RotateLeft rotates a Node to the left and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateLeft:
//	  -> n            p
//      / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
// The right child p is returned from n.RotateLeft.
// The ordering invariant m < n < o < p < q is always preserved.
// Heights of n and then p are recomputed; the caller must
// store the returned node where n used to be.
func (n *Node[T]) RotateLeft() *Node[T] {
	if n == nil {
		panic("cannot RotateLeft on nil")
	}

	if n.Right == nil {
		panic("cannot RotateLeft with nil right")
	}

	p, o := n.Right, n.Right.Left

	n.Right = o
	p.Left = n

	n.Fix()
	p.Fix()

	return p
}

// RotateRight rotates a Node to the right and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateRight:
//	  -> n            l
//      / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
// The left child l is returned from n.RotateRight.
// The ordering invariant k < l < m < n < o is always preserved.
// Heights of n and then l are recomputed; the caller must
// store the returned node where n used to be.
func (n *Node[T]) RotateRight() *Node[T] {
	if n == nil {
		panic("cannot RotateRight on nil")
	}

	if n.Left == nil {
		panic("cannot RotateRight with nil left")
	}

	l, m := n.Left, n.Left.Right

	n.Left = m
	l.Right = n

	n.Fix()
	l.Fix()

	return l
}
