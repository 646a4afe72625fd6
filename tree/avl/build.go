package avl

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// FromKeys builds a tree by inserting keys in the given order.
// Duplicate keys are dropped.
func FromKeys[T constraints.Ordered](keys ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// BuildRandom builds a tree with num keys.
// Keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	return FromKeys(RandomKeys(num, seed)...)
}

// RandomKeys returns the keys [0, num) shuffled by a source
// seeded with seed.
func RandomKeys(num int, seed int64) []int {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := 0; i < num; i++ {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return keys
}
