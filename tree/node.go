package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a node of a height-tracked binary search tree.
// There is no parent pointer: every node is owned by exactly
// one parent (or by the tree, for the root), so rotations and
// removals only ever have to rewrite child links.
type Node[T constraints.Ordered] struct {
	Key         T
	Height      int
	Left, Right *Node[T]
}

// NodeOf returns a new leaf with height 1.
func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		Key:    k,
		Height: 1,
	}
}

// Height returns the stored height of n, or 0 if n is nil.
func Height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.Height
}

// BalanceFactor returns Height(n.Left) - Height(n.Right),
// or 0 if n is nil.
func BalanceFactor[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return Height(n.Left) - Height(n.Right)
}

// Fix recomputes the height of n from its children.
// The children's heights must already be correct.
func (n *Node[T]) Fix() {
	l, r := Height(n.Left), Height(n.Right)
	if l > r {
		n.Height = l + 1
	} else {
		n.Height = r + 1
	}
}

// Min returns the leftmost node of the subtree rooted at n.
func (n *Node[T]) Min() *Node[T] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n.
func (n *Node[T]) Max() *Node[T] {
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Should T be something like interface{ CompareTo(T) int }?
// That would allow T to mutate, for example if we defined:
//	type IntPtr *int
// and then implemented:
//	func (ip IntPtr) CompareTo(ip2 IntPtr) int {
//		return (*ip2)-(*ip)
//	}
// client code could mutate *IntPtr at any time, ruining our tree invariants.
// constraints.Ordered keys are plain values, so that can't happen.

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
