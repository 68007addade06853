package lockfree

import (
	"iter"
	"sync/atomic"

	"github.com/dcastro/dequenet/std/types/sync_pool"
)

// Deque is a lock-free double-ended queue.
//
// All shared state is a single atomically swapped anchor; pushes and pops
// at either end linearize at the CAS that replaces it. A push links the new
// node in two steps and any goroutine that sees the half-linked state helps
// finish it, so no goroutine can stall the others.
//
// A Deque must be created with NewDeque or NewDequeFrom.
type Deque[T any] struct {
	anchor  atomic.Pointer[anchor[T]]
	scratch *sync_pool.SlicePool[*node[T]]
}

// NewDeque creates an empty deque.
func NewDeque[T any]() *Deque[T] {
	d := &Deque[T]{
		scratch: sync_pool.NewSlice[*node[T]](32, 4096),
	}
	d.anchor.Store(&anchor[T]{})
	return d
}

// NewDequeFrom creates a deque holding the values of seq, in order.
// The list is built privately and published with a single store,
// so no goroutine can observe a partially filled deque.
func NewDequeFrom[T any](seq iter.Seq[T]) (*Deque[T], error) {
	if seq == nil {
		return nil, ErrNilSequence
	}

	var first, last *node[T]
	for v := range seq {
		n := &node[T]{val: v}
		if last == nil {
			first = n
		} else {
			n.left.Store(last)
			last.right.Store(n)
		}
		last = n
	}

	d := NewDeque[T]()
	if first != nil {
		d.anchor.Store(&anchor[T]{left: first, right: last, status: stable})
	}
	return d, nil
}

// NewDequeFromSlice creates a deque holding the items, left to right.
func NewDequeFromSlice[T any](items []T) *Deque[T] {
	d, _ := NewDequeFrom(func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	})
	return d
}

// PushRight adds v at the right end.
func (d *Deque[T]) PushRight(v T) {
	n := &node[T]{val: v}
	for {
		a := d.anchor.Load()
		if a.empty() {
			next := &anchor[T]{left: n, right: n, status: a.status}
			if d.anchor.CompareAndSwap(a, next) {
				return
			}
		} else if a.status == stable {
			// n is still private, a plain store is enough
			n.left.Store(a.right)
			next := &anchor[T]{left: a.left, right: n, status: rightPush}
			if d.anchor.CompareAndSwap(a, next) {
				d.stabilizeRight(next)
				return
			}
		} else {
			d.stabilize(a)
		}
	}
}

// PushLeft adds v at the left end.
func (d *Deque[T]) PushLeft(v T) {
	n := &node[T]{val: v}
	for {
		a := d.anchor.Load()
		if a.empty() {
			next := &anchor[T]{left: n, right: n, status: a.status}
			if d.anchor.CompareAndSwap(a, next) {
				return
			}
		} else if a.status == stable {
			n.right.Store(a.left)
			next := &anchor[T]{left: n, right: a.right, status: leftPush}
			if d.anchor.CompareAndSwap(a, next) {
				d.stabilizeLeft(next)
				return
			}
		} else {
			d.stabilize(a)
		}
	}
}

// TryPopRight removes and returns the rightmost value.
// ok is false if the deque was empty.
func (d *Deque[T]) TryPopRight() (val T, ok bool) {
	var a *anchor[T]
	var prev *node[T]
	for {
		a = d.anchor.Load()
		if a.empty() {
			return val, false
		}

		if a.single() {
			if d.anchor.CompareAndSwap(a, &anchor[T]{}) {
				break
			}
		} else if a.status == stable {
			prev = a.right.left.Load()
			if prev == nil {
				d.checkLink(a, "TryPopRight", "rightmost node has no left neighbor")
				continue
			}
			if d.anchor.CompareAndSwap(a, &anchor[T]{left: a.left, right: prev, status: stable}) {
				break
			}
		} else {
			d.stabilize(a)
		}
	}

	// Unlink the popped node from its neighbor. Tried once: a push may
	// already have relinked prev, and nothing relies on this.
	if prev != nil {
		prev.right.CompareAndSwap(a.right, nil)
	}
	return a.right.val, true
}

// TryPopLeft removes and returns the leftmost value.
// ok is false if the deque was empty.
func (d *Deque[T]) TryPopLeft() (val T, ok bool) {
	var a *anchor[T]
	var next *node[T]
	for {
		a = d.anchor.Load()
		if a.empty() {
			return val, false
		}

		if a.single() {
			if d.anchor.CompareAndSwap(a, &anchor[T]{}) {
				break
			}
		} else if a.status == stable {
			next = a.left.right.Load()
			if next == nil {
				d.checkLink(a, "TryPopLeft", "leftmost node has no right neighbor")
				continue
			}
			if d.anchor.CompareAndSwap(a, &anchor[T]{left: next, right: a.right, status: stable}) {
				break
			}
		} else {
			d.stabilize(a)
		}
	}

	if next != nil {
		next.left.CompareAndSwap(a.left, nil)
	}
	return a.left.val, true
}

// TryPeekRight returns the rightmost value without removing it.
func (d *Deque[T]) TryPeekRight() (val T, ok bool) {
	a := d.anchor.Load()
	if a.empty() {
		return val, false
	}
	return a.right.val, true
}

// TryPeekLeft returns the leftmost value without removing it.
func (d *Deque[T]) TryPeekLeft() (val T, ok bool) {
	a := d.anchor.Load()
	if a.empty() {
		return val, false
	}
	return a.left.val, true
}

// IsEmpty reports whether the deque held no values when called.
func (d *Deque[T]) IsEmpty() bool {
	return d.anchor.Load().empty()
}

// Clear removes all values.
// It linearizes at the anchor store: pushes that completed their CAS
// before it are dropped, later ones are kept.
func (d *Deque[T]) Clear() {
	d.anchor.Store(&anchor[T]{})
}

// checkLink is called when an inner link of a stable anchor read as nil.
// That is only legal if the anchor has been replaced since it was loaded.
func (d *Deque[T]) checkLink(a *anchor[T], op string, detail string) {
	if d.anchor.Load() == a {
		panic(&ErrInvariant{Op: op, Detail: detail})
	}
}
