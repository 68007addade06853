package lockfree

// stabilize finishes the half-linked push recorded in a.
// It is safe to call any number of times, from any goroutine, with a stale
// anchor: every step gives up as soon as the deque has moved past a.
func (d *Deque[T]) stabilize(a *anchor[T]) {
	switch a.status {
	case rightPush:
		d.stabilizeRight(a)
	case leftPush:
		d.stabilizeLeft(a)
	}
}

// stabilizeRight links the previous rightmost node forward to the new one,
// then marks the anchor stable.
func (d *Deque[T]) stabilizeRight(a *anchor[T]) {
	if d.anchor.Load() != a {
		return
	}

	n := a.right
	prev := n.left.Load()
	if prev == nil {
		return
	}

	if prevNext := prev.right.Load(); prevNext != n {
		// If the anchor moved, prev may already belong to a newer push
		// and must not be touched.
		if d.anchor.Load() != a {
			return
		}
		// Losing this CAS means another helper already linked prev.
		if !prev.right.CompareAndSwap(prevNext, n) {
			return
		}
	}

	// Runs even when the link was already in place: the helper that linked
	// it may not have reached this step yet.
	d.anchor.CompareAndSwap(a, &anchor[T]{left: a.left, right: a.right, status: stable})
}

// stabilizeLeft mirrors stabilizeRight.
func (d *Deque[T]) stabilizeLeft(a *anchor[T]) {
	if d.anchor.Load() != a {
		return
	}

	n := a.left
	next := n.right.Load()
	if next == nil {
		return
	}

	if nextPrev := next.left.Load(); nextPrev != n {
		if d.anchor.Load() != a {
			return
		}
		if !next.left.CompareAndSwap(nextPrev, n) {
			return
		}
	}

	d.anchor.CompareAndSwap(a, &anchor[T]{left: a.left, right: a.right, status: stable})
}
