package sync_pool_test

import (
	"testing"

	"github.com/dcastro/dequenet/std/types/sync_pool"
	tu "github.com/dcastro/dequenet/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestSyncPoolReset(t *testing.T) {
	tu.SetT(t)

	pool := sync_pool.New(
		func() *int { return new(int) },
		func(v *int) { *v = 42 })

	v := pool.Get()
	require.Equal(t, 42, *v)
	*v = 7
	pool.Put(v)

	// whether or not the value was reused, reset runs on Get
	require.Equal(t, 42, *pool.Get())
}

func TestSlicePool(t *testing.T) {
	tu.SetT(t)

	pool := sync_pool.NewSlice[*int](4, 8)

	buf := pool.Get()
	require.Len(t, *buf, 0)
	require.Equal(t, 4, cap(*buf))

	x := 1
	*buf = append(*buf, &x, &x)
	backing := (*buf)[:2]
	pool.Put(buf)

	// contents are cleared before the buffer goes back
	require.Nil(t, backing[0])
	require.Nil(t, backing[1])

	buf = pool.Get()
	require.Len(t, *buf, 0)

	// oversized buffers are not retained, and nil is ignored
	big := make([]*int, 0, 64)
	big = append(big, &x)
	pool.Put(&big)
	require.Equal(t, &x, big[0])
	pool.Put(nil)
}
