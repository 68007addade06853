package utils

import (
	"context"
	"sync"
	"testing"
	"time"
)

// RunParallel runs fn on n goroutines. The context passed to fn is
// cancelled after d; RunParallel returns once every goroutine has returned.
func RunParallel(n int, d time.Duration, fn func(ctx context.Context, id int)) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	RunParallelCtx(ctx, n, fn)
}

// RunParallelCtx is RunParallel with caller-controlled cancellation.
func RunParallelCtx(ctx context.Context, n int, fn func(ctx context.Context, id int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer wg.Done()
			fn(ctx, id)
		}(i)
	}
	wg.Wait()
}

// StressDuration picks how long a stress test runs: long unless -short.
func StressDuration(long time.Duration) time.Duration {
	if testing.Short() {
		return long / 10
	}
	return long
}
