package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/avlset/tree"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node[int]
		tr     Traversal
		want   []int
	}{
		{
			name:   "empty pre-order",
			create: func() *tree.Node[int] { return nil },
			tr:     PreOrderTraversal,
		},
		{
			name:   "empty post-order",
			create: func() *tree.Node[int] { return nil },
			tr:     PostOrderTraversal,
		},
		{
			name:   "one post-order",
			create: func() *tree.Node[int] { return tree.NodeOf(1) },
			tr:     PostOrderTraversal,
			want:   []int{1},
		},
		{
			name:   "height=3 in-order",
			create: newCompleteTree_3Tall,
			tr:     InOrderTraversal,
			want:   []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:   "height=3 pre-order",
			create: newCompleteTree_3Tall,
			tr:     PreOrderTraversal,
			want:   []int{4, 2, 1, 3, 6, 5, 7},
		},
		{
			name:   "height=3 post-order",
			create: newCompleteTree_3Tall,
			tr:     PostOrderTraversal,
			want:   []int{1, 3, 2, 5, 7, 6, 4},
		},
		{
			name:   "height=3 reverse",
			create: newCompleteTree_3Tall,
			tr:     InOrderReverseTraversal,
			want:   []int{7, 6, 5, 4, 3, 2, 1},
		},
		{
			name:   "dogleg pre-order",
			create: newDogleg,
			tr:     PreOrderTraversal,
			want:   []int{8, 5, 1, 7, 6, 9},
		},
		{
			name:   "dogleg post-order",
			create: newDogleg,
			tr:     PostOrderTraversal,
			want:   []int{1, 6, 7, 5, 9, 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := New(tt.create(), tt.tr, 0)
			assert.Equal(t, tt.want, drain(i))
			assert.False(t, i.Next(), "stays exhausted")

			// restartable
			i.Reset()
			assert.Equal(t, tt.want, drain(i))
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	assert.Panics(t, func() {
		New[int](nil, Traversal(42), 0)
	})
	assert.Equal(t, "<invalid iterator.Traversal 42>", Traversal(42).String())
	assert.Equal(t, "post-order", PostOrderTraversal.String())
}
