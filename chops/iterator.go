// Package chops provides coroutine-style iteration over
// pull iterators, so that tree contents can be consumed
// with a plain for-range over a channel.
package chops

import (
	"context"
)

// Iterator describes some iterator over a data structure.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns a channel on which the items from the iterator
// will be sent.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
//
// If you need to stop from multiple goroutines, use a sync.Once:
//
//	var once sync.Once
//	co := CoIterate[T](...)
//	for i := 0; i < 10; i++ {
//		go func() {
//			for item := range co.Items() {
//				if item meets some stopping condition {
//					once.Do(co.Stop)
//				}
//			}
//		}()
//	}
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	co := CoIterate[T](someTree.InOrderIterator())
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// If you might pass a typed nil pointer into CoIterate,
// make sure your underlying type's methods can handle
// being called with a nil receiver.
//
// Note: CoIterate starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func CoIterate[T any](iterator Iterator[T]) CoIterator[T] {
	return CoIterateContext[T](context.Background(), iterator)
}

// CoIterateContext is like CoIterate, but the iterating goroutine
// also exits (closing Items) once ctx is done. Stop may still
// be called, at most once, after ctx is done.
//
// An abandoned range loop can then be cleaned up by canceling ctx
// instead of calling Stop:
//
//	ctx, cancel := context.WithCancel(ctx)
//	defer cancel()
//	for k := range CoIterateContext[T](ctx, it).Items() {
//		if k meets some stopping condition {
//			break
//		}
//	}
func CoIterateContext[T any](ctx context.Context, iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}(out, stop, iterator)

	return co
}
