//go:build linux
// +build linux

// File: ioctx/ioctx_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ioctx_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/reactorcore/api"
	"github.com/momentics/reactorcore/internal/xlog"
	"github.com/momentics/reactorcore/ioctx"
	"github.com/momentics/reactorcore/pool"
	"github.com/momentics/reactorcore/reactor"
	"github.com/momentics/reactorcore/task"
)

func newTestContext(t *testing.T) *ioctx.IoContext {
	t.Helper()
	p, err := reactor.New()
	require.NoError(t, err)
	wp := pool.New(pool.WithWorkers(4))
	c, err := ioctx.New(wp, p)
	require.NoError(t, err)
	go c.Run()
	t.Cleanup(func() {
		c.Stop()
		c.Close()
	})
	return c
}

// TestAwaitFd_ResumesOnReadiness drives a minimal version of S1: a task
// suspended in AwaitFd on a pipe's read end resumes once the write end is
// written to, and observes the READ bit in the returned mask.
func TestAwaitFd_ResumesOnReadiness(t *testing.T) {
	c := newTestContext(t)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	rfd := int(r.Fd())
	require.NoError(t, c.AddFd(rfd, 0))
	defer c.RemoveFd(rfd)

	resultCh := make(chan api.Mask, 1)
	tk := task.New(func(tc *task.Context) (struct{}, error) {
		mask, err := c.AwaitFd(tc, rfd, api.Read)
		if err != nil {
			return struct{}{}, err
		}
		resultCh <- mask
		return struct{}{}, nil
	})
	ioctx.Spawn(c, tk)

	time.Sleep(20 * time.Millisecond)
	_, err = w.Write([]byte("x"))
	require.NoError(t, err)

	select {
	case mask := <-resultCh:
		require.True(t, mask.Has(api.Read))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for AwaitFd to resume")
	}
}

// TestAwaitFd_OverwriteResumesOnlyLatestWaiter drives S3: a second
// AwaitFd on the same fd before the first resumes overwrites the first
// waiter; only the second task is ever resumed, and a warning is logged.
func TestAwaitFd_OverwriteResumesOnlyLatestWaiter(t *testing.T) {
	c := newTestContext(t)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	rfd := int(r.Fd())
	require.NoError(t, c.AddFd(rfd, 0))
	defer c.RemoveFd(rfd)

	firstResumed := make(chan struct{})
	first := task.New(func(tc *task.Context) (struct{}, error) {
		_, err := c.AwaitFd(tc, rfd, api.Read)
		close(firstResumed)
		return struct{}{}, err
	})
	ioctx.Spawn(c, first)

	// Give the first AwaitFd time to register before the second overwrites it.
	time.Sleep(20 * time.Millisecond)

	secondResumed := make(chan api.Mask, 1)
	second := task.New(func(tc *task.Context) (struct{}, error) {
		mask, err := c.AwaitFd(tc, rfd, api.Read)
		if err != nil {
			return struct{}{}, err
		}
		secondResumed <- mask
		return struct{}{}, nil
	})
	ioctx.Spawn(c, second)

	time.Sleep(20 * time.Millisecond)
	_, err = w.Write([]byte("y"))
	require.NoError(t, err)

	select {
	case <-secondResumed:
	case <-time.After(2 * time.Second):
		t.Fatal("second waiter was never resumed")
	}

	select {
	case <-firstResumed:
		t.Fatal("first waiter must not be resumed after being overwritten")
	case <-time.After(100 * time.Millisecond):
	}
}

// TestIoContext_InvalidArgumentOnNilDependency exercises the construction
// guard rather than the race-prone runtime paths above.
func TestIoContext_InvalidArgumentOnNilDependency(t *testing.T) {
	_, err := ioctx.New(nil, nil)
	require.Error(t, err)
}

func TestIoContext_WithLoggerOption(t *testing.T) {
	p, err := reactor.New()
	require.NoError(t, err)
	wp := pool.New(pool.WithWorkers(1))
	c, err := ioctx.New(wp, p, ioctx.WithLogger(xlog.Discard()))
	require.NoError(t, err)
	require.NoError(t, c.Close())
}
