package avl

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Locked is a Tree guarded by a sync.RWMutex. It is safe for
// concurrent use. Lookups share the read lock; mutations take
// the write lock.
//
// The zero Locked is empty and ready to use. A Locked must not
// be copied after first use.
type Locked[T constraints.Ordered] struct {
	mu sync.RWMutex
	t  Tree[T]
}

// NewLocked returns a Locked that takes over the nodes of t,
// leaving t empty. Pass nil to start empty.
func NewLocked[T constraints.Ordered](t *Tree[T]) *Locked[T] {
	l := &Locked[T]{}
	if t != nil {
		l.t.MoveFrom(t)
	}
	return l
}

// Insert inserts k and reports whether it was added.
func (l *Locked[T]) Insert(k T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.t.Insert(k)
}

// Erase removes k and reports whether it was present.
func (l *Locked[T]) Erase(k T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.t.Erase(k)
}

// Clear removes every key.
func (l *Locked[T]) Clear() {
	l.mu.Lock()
	l.t.Clear()
	l.mu.Unlock()
}

// Find returns the stored key equal to k, if any.
func (l *Locked[T]) Find(k T) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Find(k)
}

// Contains reports whether k is in the set.
func (l *Locked[T]) Contains(k T) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Contains(k)
}

// Len returns the number of keys.
func (l *Locked[_]) Len() int {
	l.mu.RLock()
	n := l.t.Len()
	l.mu.RUnlock()
	return n
}

// Keys returns the keys in ascending order.
func (l *Locked[T]) Keys() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Keys()
}

// Snapshot returns a deep copy of the current contents, which the
// caller may then iterate or modify without holding any lock.
func (l *Locked[T]) Snapshot() *Tree[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Clone()
}
