package lockfree

// Test hooks into the anchor and stabilizer.

type Status = status

const (
	StatusStable    = stable
	StatusLeftPush  = leftPush
	StatusRightPush = rightPush
)

// Ends returns the current anchor of d.
func Ends[T any](d *Deque[T]) (left, right *node[T], s Status) {
	a := d.anchor.Load()
	return a.left, a.right, a.status
}

// SnapshotWith captures a stable anchor, runs mutate, then walks from the
// captured anchor.
func SnapshotWith[T any](d *Deque[T], mutate func()) []T {
	a := d.stableAnchor()
	mutate()
	return d.walk(a)
}

// BeginPushRight performs only the first step of PushRight on a stable,
// non-empty deque and returns the stabilizer for the resulting anchor.
func BeginPushRight[T any](d *Deque[T], v T) (stabilize func()) {
	n := &node[T]{val: v}
	for {
		a := d.anchor.Load()
		if a.empty() || a.status != stable {
			panic("BeginPushRight needs a stable non-empty deque")
		}
		n.left.Store(a.right)
		next := &anchor[T]{left: a.left, right: n, status: rightPush}
		if d.anchor.CompareAndSwap(a, next) {
			return func() { d.stabilize(next) }
		}
	}
}

// BeginPushLeft mirrors BeginPushRight.
func BeginPushLeft[T any](d *Deque[T], v T) (stabilize func()) {
	n := &node[T]{val: v}
	for {
		a := d.anchor.Load()
		if a.empty() || a.status != stable {
			panic("BeginPushLeft needs a stable non-empty deque")
		}
		n.right.Store(a.left)
		next := &anchor[T]{left: n, right: a.right, status: leftPush}
		if d.anchor.CompareAndSwap(a, next) {
			return func() { d.stabilize(next) }
		}
	}
}

// TraverseLeftRight follows right links from the current left end to the
// current right end. Only meaningful while no goroutine mutates d.
func TraverseLeftRight[T any](d *Deque[T]) []T {
	a := d.anchor.Load()
	vals := []T{}
	if a.empty() {
		return vals
	}
	cur := a.left
	for cur != a.right {
		vals = append(vals, cur.val)
		cur = cur.right.Load()
	}
	return append(vals, a.right.val)
}

// TraverseRightLeft follows left links from the current right end.
func TraverseRightLeft[T any](d *Deque[T]) []T {
	a := d.anchor.Load()
	vals := []T{}
	if a.empty() {
		return vals
	}
	cur := a.right
	for cur != a.left {
		vals = append(vals, cur.val)
		cur = cur.left.Load()
	}
	return append(vals, a.left.val)
}

// RightLink and LeftLink expose a node's neighbors.
func RightLink[T any](n *node[T]) *node[T] { return n.right.Load() }
func LeftLink[T any](n *node[T]) *node[T]  { return n.left.Load() }
