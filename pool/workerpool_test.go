// File: pool/workerpool_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWorkerPool_DrainsAllJobsBeforeStopReturns(t *testing.T) {
	p := New(WithWorkers(4))
	p.Run()

	var count int64
	const n = 1000
	for i := 0; i < n; i++ {
		require.NoError(t, p.Submit(func() { atomic.AddInt64(&count, 1) }))
	}
	p.Stop()

	require.Equal(t, int64(n), atomic.LoadInt64(&count))
	require.Equal(t, 0, p.Pending())
}

func TestWorkerPool_SubmitAfterStopFails(t *testing.T) {
	p := New(WithWorkers(2))
	p.Run()
	p.Stop()
	require.ErrorIs(t, p.Submit(func() {}), ErrClosed)
}

func TestWorkerPool_PanicIsCaughtAndWorkerContinues(t *testing.T) {
	p := New(WithWorkers(1))
	p.Run()

	done := make(chan struct{})
	require.NoError(t, p.Submit(func() { panic("boom") }))
	require.NoError(t, p.Submit(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not continue after a panicking job")
	}
	p.Stop()
}

func TestWorkerPool_ReentrantSubmit(t *testing.T) {
	p := New(WithWorkers(2))
	p.Run()

	done := make(chan struct{})
	require.NoError(t, p.Submit(func() {
		_ = p.Submit(func() { close(done) })
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reentrant submission never ran")
	}
	p.Stop()
}

func TestWorkerPool_RunIsIdempotent(t *testing.T) {
	p := New(WithWorkers(2))
	p.Run()
	p.Run() // must not panic or spawn extra workers
	p.Stop()
}
