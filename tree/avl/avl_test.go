package avl

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/avlset/tree"
	"golang.org/x/exp/slices"
)

// shape renders the tree in pre-order with explicit nils,
// eg. "2(1,3)" or "3(2,4(,5))". Leaves are just their key.
func shape(n *tree.Node[int]) string {
	if n == nil {
		return ""
	}
	s := strconv.Itoa(n.Key)
	if n.Left == nil && n.Right == nil {
		return s
	}
	return s + "(" + shape(n.Left) + "," + shape(n.Right) + ")"
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		inserts []int
		added   []bool
		shape   string
		height  int
	}{
		{
			name:  "empty",
			shape: "",
		},
		{
			name:    "one",
			inserts: []int{1},
			added:   []bool{true},
			shape:   "1",
			height:  1,
		},
		{
			name:    "one duplicate",
			inserts: []int{1, 1},
			added:   []bool{true, false},
			shape:   "1",
			height:  1,
		},
		{
			name:    "left-left",
			inserts: []int{3, 2, 1},
			added:   []bool{true, true, true},
			shape:   "2(1,3)",
			height:  2,
		},
		{
			name:    "left-right",
			inserts: []int{3, 1, 2},
			added:   []bool{true, true, true},
			shape:   "2(1,3)",
			height:  2,
		},
		{
			name:    "right-right",
			inserts: []int{1, 2, 3},
			added:   []bool{true, true, true},
			shape:   "2(1,3)",
			height:  2,
		},
		{
			name:    "right-left",
			inserts: []int{1, 3, 2},
			added:   []bool{true, true, true},
			shape:   "2(1,3)",
			height:  2,
		},
		{
			name:    "ascending run",
			inserts: []int{1, 2, 3, 4, 5, 6, 7},
			added:   []bool{true, true, true, true, true, true, true},
			shape:   "4(2(1,3),6(5,7))",
			height:  3,
		},
		{
			name:    "descending run",
			inserts: []int{7, 6, 5, 4, 3, 2, 1},
			added:   []bool{true, true, true, true, true, true, true},
			shape:   "4(2(1,3),6(5,7))",
			height:  3,
		},
		{
			name:    "rotation below root",
			inserts: []int{2, 1, 3, 4, 5},
			added:   []bool{true, true, true, true, true},
			shape:   "2(1,4(3,5))",
			height:  3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Tree[int]{}

			for i, k := range tt.inserts {
				assert.Equal(t, tt.added[i], tr.Insert(k), "insert %d", k)
				require.NoError(t, tr.Check())
			}

			assert.Equal(t, tt.shape, shape(tr.root))
			assert.Equal(t, tt.height, tr.Height())
		})
	}
}

func TestErase(t *testing.T) {
	tests := []struct {
		name    string
		inserts []int
		erase   int
		removed bool
		shape   string
	}{
		{
			name:  "empty",
			erase: 1,
			shape: "",
		},
		{
			name:    "absent",
			inserts: []int{2, 1, 3},
			erase:   4,
			shape:   "2(1,3)",
		},
		{
			name:    "only key",
			inserts: []int{1},
			erase:   1,
			removed: true,
			shape:   "",
		},
		{
			name:    "leaf",
			inserts: []int{2, 1, 3},
			erase:   3,
			removed: true,
			shape:   "2(1,)",
		},
		{
			name:    "one child",
			inserts: []int{2, 1, 3, 4},
			erase:   3,
			removed: true,
			shape:   "2(1,4)",
		},
		{
			name:    "two children takes successor",
			inserts: []int{10, 20, 30},
			erase:   20,
			removed: true,
			shape:   "30(10,)",
		},
		{
			name:    "right-right",
			inserts: []int{2, 1, 3, 4},
			erase:   1,
			removed: true,
			shape:   "3(2,4)",
		},
		{
			name:    "right-left",
			inserts: []int{2, 1, 4, 3},
			erase:   1,
			removed: true,
			shape:   "3(2,4)",
		},
		{
			name:    "right-balanced",
			inserts: []int{2, 1, 4, 3, 5},
			erase:   1,
			removed: true,
			shape:   "4(2(,3),5)",
		},
		{
			name:    "left-left",
			inserts: []int{3, 2, 4, 1},
			erase:   4,
			removed: true,
			shape:   "2(1,3)",
		},
		{
			name:    "left-right",
			inserts: []int{3, 1, 4, 2},
			erase:   4,
			removed: true,
			shape:   "2(1,3)",
		},
		{
			name:    "left-balanced",
			inserts: []int{4, 2, 5, 1, 3},
			erase:   5,
			removed: true,
			shape:   "2(1,4(3,))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := FromKeys(tt.inserts...)
			before := tr.Len()

			assert.Equal(t, tt.removed, tr.Erase(tt.erase))
			require.NoError(t, tr.Check())
			assert.Equal(t, tt.shape, shape(tr.root))
			assert.False(t, tr.Contains(tt.erase))

			if tt.removed {
				assert.Equal(t, before-1, tr.Len())
			} else {
				assert.Equal(t, before, tr.Len())
			}
		})
	}
}

func TestScenarios(t *testing.T) {
	t.Run("ascending 1..7 stays short", func(t *testing.T) {
		tr := FromKeys(1, 2, 3, 4, 5, 6, 7)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tr.Keys())
		assert.Equal(t, 3, tr.Height())
	})

	t.Run("erase middle", func(t *testing.T) {
		tr := FromKeys(10, 20, 30)
		tr.Erase(20)
		_, found := tr.Find(20)
		assert.False(t, found)
		assert.Equal(t, []int{10, 30}, tr.Keys())
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		tr := FromKeys(5, 5, 5)
		assert.Equal(t, []int{5}, tr.Keys())
		assert.Equal(t, 1, tr.Len())
	})
}

func TestFind(t *testing.T) {
	tr := FromKeys(4, 2, 6, 1, 3, 5, 7)

	for k := 1; k <= 7; k++ {
		got, ok := tr.Find(k)
		assert.True(t, ok, "find %d", k)
		assert.Equal(t, k, got)
	}

	// must not fall back to the root key
	for _, k := range []int{0, 8, -100, 100} {
		got, ok := tr.Find(k)
		assert.False(t, ok, "find %d", k)
		assert.Equal(t, 0, got)
	}

	var empty Tree[string]
	s, ok := empty.Find("x")
	assert.False(t, ok)
	assert.Equal(t, "", s)
}

func TestMinMax(t *testing.T) {
	var tr Tree[string]
	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)

	for _, s := range []string{"pear", "apple", "zucchini", "fig"} {
		tr.Insert(s)
	}

	lo, ok := tr.Min()
	assert.True(t, ok)
	assert.Equal(t, "apple", lo)
	hi, ok := tr.Max()
	assert.True(t, ok)
	assert.Equal(t, "zucchini", hi)
}

func TestIdempotentInsert(t *testing.T) {
	keys := RandomKeys(50, 7)
	once := FromKeys(keys...)

	twice := FromKeys(keys...)
	for _, k := range keys {
		assert.False(t, twice.Insert(k))
	}

	assert.Equal(t, once.Keys(), twice.Keys())
	assert.Equal(t, once.Len(), twice.Len())
	assert.Equal(t, once.String(), twice.String())
}

func nodeSet(n *tree.Node[int], set map[*tree.Node[int]]bool) {
	if n == nil {
		return
	}
	set[n] = true
	nodeSet(n.Left, set)
	nodeSet(n.Right, set)
}

func TestClone(t *testing.T) {
	a := BuildRandom(100, 42)
	b := a.Clone()

	require.NoError(t, b.Check())
	assert.Equal(t, a.Keys(), b.Keys())

	an, bn := map[*tree.Node[int]]bool{}, map[*tree.Node[int]]bool{}
	nodeSet(a.root, an)
	nodeSet(b.root, bn)
	for n := range bn {
		assert.False(t, an[n], "node %d is shared", n.Key)
	}

	before := a.Keys()
	b.Erase(10)
	b.Insert(1000)
	assert.Equal(t, before, a.Keys(), "mutating the copy changed the source")

	a.Erase(20)
	assert.True(t, b.Contains(20), "mutating the source changed the copy")
}

func TestCopyFrom(t *testing.T) {
	a := FromKeys(1, 2, 3)
	b := FromKeys(9, 8)

	b.CopyFrom(a)
	assert.Equal(t, []int{1, 2, 3}, b.Keys())
	assert.Equal(t, 3, b.Len())

	b.Insert(4)
	assert.Equal(t, []int{1, 2, 3}, a.Keys())

	// self-assignment keeps the contents
	b.CopyFrom(b)
	assert.Equal(t, []int{1, 2, 3, 4}, b.Keys())
}

func TestMove(t *testing.T) {
	a := FromKeys(3, 1, 2)
	want := a.Keys()

	b := a.Move()
	assert.Equal(t, want, b.Keys())
	assert.Equal(t, 3, b.Len())
	require.NoError(t, b.Check())

	assert.Equal(t, 0, a.Len())
	assert.Nil(t, a.root)
	for _, k := range want {
		assert.False(t, a.Contains(k))
	}

	// the moved-from tree is still usable
	a.Insert(7)
	assert.Equal(t, []int{7}, a.Keys())
	assert.Equal(t, want, b.Keys())
}

func TestMoveFrom(t *testing.T) {
	a := FromKeys(1, 2, 3)
	b := FromKeys(10, 20)

	b.MoveFrom(a)
	assert.Equal(t, []int{1, 2, 3}, b.Keys())
	assert.Empty(t, a.Keys())
	assert.Equal(t, 0, a.Len())

	b.MoveFrom(b)
	assert.Equal(t, []int{1, 2, 3}, b.Keys())
}

func TestClear(t *testing.T) {
	tr := BuildRandom(64, 1)
	root := tr.root

	tr.Clear()
	assert.Nil(t, tr.root)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Height())
	assert.Empty(t, tr.Keys())
	assert.NoError(t, tr.Check())

	// released nodes don't hold on to each other
	assert.Nil(t, root.Left)
	assert.Nil(t, root.Right)

	tr.Insert(1)
	assert.Equal(t, []int{1}, tr.Keys())
}

func TestRandomOps(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 20
	const ops = 2000
	const keyspace = 300

	for i := 0; i < rounds; i++ {
		rd := rand.New(rand.NewSource(int64(seedrd.Uint64())))
		tr := &Tree[int]{}
		model := map[int]bool{}

		for j := 0; j < ops; j++ {
			k := rd.Intn(keyspace)
			if rd.Intn(3) == 0 {
				assert.Equal(t, model[k], tr.Erase(k), "round %d op %d: erase %d", i, j, k)
				delete(model, k)
			} else {
				assert.Equal(t, !model[k], tr.Insert(k), "round %d op %d: insert %d", i, j, k)
				model[k] = true
			}
			require.NoError(t, tr.Check(), "round %d op %d", i, j)
		}

		want := make([]int, 0, len(model))
		for k := range model {
			want = append(want, k)
		}
		slices.Sort(want)
		assert.Equal(t, want, tr.Keys())
		assert.Equal(t, len(want), tr.Len())

		for k := 0; k < keyspace; k++ {
			assert.Equal(t, model[k], tr.Contains(k), "round %d: contains %d", i, k)
		}
	}
}

func TestHeightBound(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100, 1023, 5000} {
		for _, tr := range []*Tree[int]{
			BuildRandom(n, int64(n)),
			FromKeys(RandomKeys(n, 0)...),
		} {
			// AVL height is below 1.4405 log2(n+2) - 0.3277
			bound := 1.4405*math.Log2(float64(n+2)) - 0.3277
			assert.LessOrEqual(t, float64(tr.Height()), bound, "n=%d", n)
			assert.GreaterOrEqual(t, tr.Height(), IdealHeight(n), "n=%d", n)
		}
	}

	seq := &Tree[int]{}
	for i := 0; i < 1023; i++ {
		seq.Insert(i)
	}
	assert.Equal(t, 10, seq.Height())
}

func TestString(t *testing.T) {
	assert.Equal(t, "", (&Tree[int]{}).String())
	assert.Equal(t, "2\n├─L─1\n└─R─3\n", FromKeys(1, 2, 3).String())
}

var trForBench *Tree[int]

func BenchmarkInsert(b *testing.B) {
	for _, size := range []int{10, 1000, 100000} {
		keys := RandomKeys(size, int64(size))
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				trForBench = FromKeys(keys...)
			}
		})
	}
}

func BenchmarkFind(b *testing.B) {
	tr := BuildRandom(100000, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Find(i % 100000)
	}
}
