package lockfree

import "sync/atomic"

// node is a cell of the deque's doubly linked list.
// val never changes after construction; the links are only changed with CAS
// once the node is reachable from an anchor.
type node[T any] struct {
	val   T
	left  atomic.Pointer[node[T]]
	right atomic.Pointer[node[T]]
}

// status tells whether one end of the deque is half-linked.
type status uint8

const (
	stable status = iota
	leftPush
	rightPush
)

func (s status) String() string {
	switch s {
	case stable:
		return "Stable"
	case leftPush:
		return "LeftPush"
	case rightPush:
		return "RightPush"
	default:
		return "Unknown"
	}
}

// anchor is an immutable view of both ends of the deque.
// left is nil iff right is nil. When status is not stable, the node at the
// named end links back into the list but its neighbor does not link to it yet.
type anchor[T any] struct {
	left   *node[T]
	right  *node[T]
	status status
}

func (a *anchor[T]) empty() bool {
	return a.right == nil
}

func (a *anchor[T]) single() bool {
	return a.right != nil && a.left == a.right
}
