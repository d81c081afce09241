// File: strand/strand_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package strand

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/reactorcore/pool"
)

func newPool(t *testing.T) *pool.WorkerPool {
	t.Helper()
	p := pool.New(pool.WithWorkers(8))
	p.Run()
	t.Cleanup(p.Stop)
	return p
}

func TestStrand_PreservesPostOrder(t *testing.T) {
	p := newPool(t)
	s := New(p)

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup

	const n = 200
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		require.NoError(t, s.Post(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		}))
	}

	waitWithTimeout(t, &wg, 5*time.Second)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, order, n)
	for i := 0; i < n; i++ {
		require.Equal(t, i, order[i], "strand must preserve submission order")
	}
}

func TestStrand_NeverRunsTwoJobsConcurrently(t *testing.T) {
	p := newPool(t)
	s := New(p)

	var running atomic.Int32
	var maxObserved atomic.Int32
	var wg sync.WaitGroup

	const n = 500
	wg.Add(n)
	for i := 0; i < n; i++ {
		require.NoError(t, s.Post(func() {
			defer wg.Done()
			cur := running.Add(1)
			if cur > maxObserved.Load() {
				maxObserved.Store(cur)
			}
			running.Add(-1)
		}))
	}

	waitWithTimeout(t, &wg, 5*time.Second)
	require.LessOrEqual(t, maxObserved.Load(), int32(1))
}

func waitWithTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("timed out waiting for strand jobs to finish")
	}
}
