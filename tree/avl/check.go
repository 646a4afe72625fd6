package avl

import (
	"errors"
	"fmt"
	"math/bits"

	"go.lepak.sg/avlset/tree"
	"golang.org/x/exp/constraints"
)

var (
	ErrOrder      = errors.New("keys out of order")
	ErrHeight     = errors.New("stored height is wrong")
	ErrUnbalanced = errors.New("node is unbalanced")
	ErrCount      = errors.New("key count mismatch")
)

// Check walks the whole tree and verifies every invariant listed on
// Tree. It returns nil if the tree is consistent, or an error wrapping
// one of ErrOrder, ErrHeight, ErrUnbalanced or ErrCount that names the
// first offending key.
// Check is O(n); it is meant for tests and debugging.
func (t *Tree[T]) Check() error {
	count, _, err := check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: counted %d nodes, Len is %d", ErrCount, count, t.count)
	}
	return nil
}

// check verifies the subtree rooted at n, whose keys must lie strictly
// between *lo and *hi (a nil bound is open). It returns the node count
// and the actual height of the subtree.
func check[T constraints.Ordered](n *tree.Node[T], lo, hi *T) (count, height int, err error) {
	if n == nil {
		return 0, 0, nil
	}

	if lo != nil && tree.Compare(n.Key, *lo) != tree.Greater {
		return 0, 0, fmt.Errorf("%w: %v is not greater than %v", ErrOrder, n.Key, *lo)
	}
	if hi != nil && tree.Compare(n.Key, *hi) != tree.Less {
		return 0, 0, fmt.Errorf("%w: %v is not less than %v", ErrOrder, n.Key, *hi)
	}

	lc, lh, err := check(n.Left, lo, &n.Key)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := check(n.Right, &n.Key, hi)
	if err != nil {
		return 0, 0, err
	}

	height = lh + 1
	if rh > lh {
		height = rh + 1
	}
	if n.Height != height {
		return 0, 0, fmt.Errorf("%w: at %v stored %d, actual %d", ErrHeight, n.Key, n.Height, height)
	}

	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, 0, fmt.Errorf("%w: balance factor %d at %v", ErrUnbalanced, bf, n.Key)
	}

	return lc + rc + 1, height, nil
}

// IdealHeight returns the smallest possible height of a binary
// tree holding n keys, ie. ceil(log2(n+1)).
// An AVL tree is never more than about 1.44 times as tall.
func IdealHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}
