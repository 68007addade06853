package lockfree

import (
	"iter"
	"runtime"
)

// stableAnchor waits for a stable anchor and returns it.
// Waiting helps: a push whose link CAS lost to a pop cleanup leaves the
// anchor unstable until some goroutine stabilizes it.
func (d *Deque[T]) stableAnchor() *anchor[T] {
	a := d.anchor.Load()
	for a.status != stable {
		d.stabilize(a)
		runtime.Gosched()
		a = d.anchor.Load()
	}
	return a
}

// walk lists the values between the ends of the stable anchor a.
//
// Nodes are only ever added or removed at the ends and never relinked, so
// the forward path from a.left and the backward path from a.right meet at
// a common node even if the deque changed after a was loaded.
func (d *Deque[T]) walk(a *anchor[T]) []T {
	x, y := a.left, a.right
	if x == nil {
		return []T{}
	}
	if x == y {
		return []T{x.val}
	}

	fwd := d.scratch.Get()
	defer d.scratch.Put(fwd)

	cur := x
	for cur != nil && cur != y {
		*fwd = append(*fwd, cur)
		cur = cur.right.Load()
	}

	if cur == y {
		vals := make([]T, 0, len(*fwd)+1)
		for _, n := range *fwd {
			vals = append(vals, n.val)
		}
		return append(vals, y.val)
	}

	// The forward walk fell off the end: y was popped while walking.
	// Walk back from y until reaching a node still linked from its left
	// neighbor, the last node seen going forward, or the left boundary.
	last := (*fwd)[len(*fwd)-1]
	back := d.scratch.Get()
	defer d.scratch.Put(back)

	cur = y
	for cur != last {
		prev := cur.left.Load()
		if prev == nil || prev.right.Load() == cur {
			break
		}
		*back = append(*back, cur)
		cur = prev
	}
	common := cur

	vals := make([]T, 0, len(*fwd)+len(*back)+1)
	for _, n := range *fwd {
		if n == common {
			break
		}
		vals = append(vals, n.val)
	}
	vals = append(vals, common.val)
	for i := len(*back) - 1; i >= 0; i-- {
		vals = append(vals, (*back)[i].val)
	}
	return vals
}

// snapshot returns the values of the deque at some instant during the call.
func (d *Deque[T]) snapshot() []T {
	return d.walk(d.stableAnchor())
}

// ToSlice returns the values of the deque, left to right, as they were
// at some instant during the call.
func (d *Deque[T]) ToSlice() []T {
	return d.snapshot()
}

// Count returns the number of values. It walks the deque.
func (d *Deque[T]) Count() int {
	return len(d.snapshot())
}

// CopyTo copies a snapshot of the deque into dst starting at offset and
// returns the number of values copied.
func (d *Deque[T]) CopyTo(dst []T, offset int) (int, error) {
	if offset < 0 || offset > len(dst) {
		return 0, &ErrCopy{Offset: offset, Have: len(dst), Err: ErrOffsetRange}
	}

	vals := d.snapshot()
	if have := len(dst) - offset; have < len(vals) {
		return 0, &ErrCopy{Offset: offset, Need: len(vals), Have: have, Err: ErrShortBuffer}
	}
	return copy(dst[offset:], vals), nil
}

// All iterates left to right over a snapshot taken when iteration starts.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.snapshot() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward iterates right to left over a snapshot taken when iteration starts.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		vals := d.snapshot()
		for i := len(vals) - 1; i >= 0; i-- {
			if !yield(vals[i]) {
				return
			}
		}
	}
}
