// sync_pool is a generic sync.Pool wrapper
package sync_pool

import "sync"

type SyncPool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

// New creates a new Pool[T]. reset is applied to every value handed out by Get.
func New[T any](init func() T, reset func(T)) SyncPool[T] {
	return SyncPool[T]{
		pool: sync.Pool{
			New: func() any { return init() },
		},
		reset: reset,
	}
}

// Get returns a T from the pool, or a new one.
func (p *SyncPool[T]) Get() T {
	val := p.pool.Get().(T)
	if p.reset != nil {
		p.reset(val)
	}
	return val
}

// Put returns a T to the pool.
func (p *SyncPool[T]) Put(val T) {
	p.pool.Put(val)
}

// SlicePool hands out reusable slice buffers of length zero.
// Buffers that grew beyond the retention limit are dropped on Put
// so a single huge walk does not pin its memory forever.
type SlicePool[T any] struct {
	SyncPool[*[]T]
	retain int
}

// NewSlice creates a SlicePool whose fresh buffers have capacity size,
// and which keeps returned buffers of capacity up to retain.
func NewSlice[T any](size int, retain int) *SlicePool[T] {
	return &SlicePool[T]{
		SyncPool: New(
			func() *[]T {
				buf := make([]T, 0, size)
				return &buf
			},
			func(buf *[]T) { *buf = (*buf)[:0] }),
		retain: retain,
	}
}

// Put zeroes the buffer contents and returns it to the pool.
func (p *SlicePool[T]) Put(buf *[]T) {
	if buf == nil || cap(*buf) > p.retain {
		return
	}
	clear(*buf)
	p.SyncPool.Put(buf)
}
