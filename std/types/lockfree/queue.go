package lockfree

import "iter"

// Queue is a lock-free FIFO queue for any number of producers and consumers.
// Producers append at the right of a Deque and consumers take from the left.
type Queue[T any] struct {
	deque *Deque[T]
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{deque: NewDeque[T]()}
}

// Offer appends v at the tail of the queue.
func (q *Queue[T]) Offer(v T) {
	q.deque.PushRight(v)
}

// Poll removes and returns the head of the queue, yielding `ok=false` if the queue is empty.
func (q *Queue[T]) Poll() (val T, ok bool) {
	return q.deque.TryPopLeft()
}

// Peek returns the head of the queue without removing it.
func (q *Queue[T]) Peek() (val T, ok bool) {
	return q.deque.TryPeekLeft()
}

// Requeue puts v back at the head, ahead of everything already queued.
func (q *Queue[T]) Requeue(v T) {
	q.deque.PushLeft(v)
}

func (q *Queue[T]) IsEmpty() bool {
	return q.deque.IsEmpty()
}

// Len walks the queue; prefer IsEmpty where possible.
func (q *Queue[T]) Len() int {
	return q.deque.Count()
}

// Snapshot returns the queued values, head first.
func (q *Queue[T]) Snapshot() []T {
	return q.deque.ToSlice()
}

// Drain polls until the queue is empty.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := q.Poll()
			if !ok || !yield(val) {
				return
			}
		}
	}
}
