// Lock-free data structures
package lockfree

import (
	"iter"
	"sync/atomic"
)

// YiQueue is a lock-free Yielding Queue.
//
// Producers never block. Instead of making consumers spin on an empty
// queue, the queue signals Notify when it goes from empty to non-empty.
// Backed by a Queue, so several consumers may pop concurrently.
type YiQueue[T any] struct {
	Notify chan struct{}
	queue  *Queue[T]
	size   atomic.Int32
}

func NewYiQueue[T any]() *YiQueue[T] {
	return &YiQueue[T]{
		Notify: make(chan struct{}, 1),
		queue:  NewQueue[T](),
	}
}

func (yq *YiQueue[T]) Push(v T) {
	sizenow := yq.size.Add(1)
	yq.queue.Offer(v)
	yq.notify(sizenow)
}

// Requeue returns v to the head of the queue, e.g. when a consumer
// could not process it yet.
func (yq *YiQueue[T]) Requeue(v T) {
	sizenow := yq.size.Add(1)
	yq.queue.Requeue(v)
	yq.notify(sizenow)
}

func (yq *YiQueue[T]) notify(sizenow int32) {
	if sizenow == 1 && yq.size.Load() > 0 {
		// first element in the queue: wake the consumer without blocking
		select {
		case yq.Notify <- struct{}{}:
		default:
		}
	}
}

func (yq *YiQueue[T]) Pop() (val T, ok bool) {
	for {
		size := yq.size.Load()
		if size <= 0 {
			return val, false
		}
		// reserve one element before polling so two consumers
		// never both wait on the last promised value
		if !yq.size.CompareAndSwap(size, size-1) {
			continue
		}
		for {
			if val, ok = yq.queue.Poll(); ok {
				return val, true
			}
			// spin: a producer counted the value but is still
			// inside Offer.
		}
	}
}

// Len returns the number of values pushed and not yet reserved by a consumer.
func (yq *YiQueue[T]) Len() int {
	return max(int(yq.size.Load()), 0)
}

func (yq *YiQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := yq.Pop()
			if !ok || !yield(val) {
				return
			}
		}
	}
}
