// File: ioctx/ioctx.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ioctx

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/momentics/reactorcore/api"
	"github.com/momentics/reactorcore/internal/xlog"
	"github.com/momentics/reactorcore/pool"
	"github.com/momentics/reactorcore/reactor"
	"github.com/momentics/reactorcore/rterr"
	"github.com/momentics/reactorcore/task"
)

// Config configures an IoContext at construction.
type Config struct {
	// EventBufferSize is K, the maximum number of ready events drained
	// per Wait call.
	EventBufferSize int
	Logger          api.Logger
}

// Option mutates a Config.
type Option func(*Config)

// WithEventBufferSize sets K.
func WithEventBufferSize(n int) Option { return func(c *Config) { c.EventBufferSize = n } }

// WithLogger injects a logging façade.
func WithLogger(l api.Logger) Option { return func(c *Config) { c.Logger = l } }

// IoContext is the reactor proper: it owns a reactor.EventPoller and a
// reference to a pool.WorkerPool, and maintains the WaiterTable.
type IoContext struct {
	poller reactor.EventPoller
	exec   *pool.WorkerPool

	mu      sync.Mutex
	waiters map[int]*waiter

	running atomic.Bool
	log     api.Logger
	evBuf   int

	wakeR  *os.File
	wakeW  *os.File
	wakeFd int
}

// New binds exec and poller into an IoContext. Both must be non-nil.
func New(exec *pool.WorkerPool, poller reactor.EventPoller, opts ...Option) (*IoContext, error) {
	if exec == nil || poller == nil {
		return nil, rterr.Wrap(rterr.InvalidArgument, "ioctx.New", fmt.Errorf("executor and poller must be non-nil"))
	}
	cfg := Config{EventBufferSize: 128, Logger: xlog.Discard()}
	for _, o := range opts {
		o(&cfg)
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("ioctx: wake pipe: %w", err)
	}

	c := &IoContext{
		poller:  poller,
		exec:    exec,
		waiters: make(map[int]*waiter),
		log:     cfg.Logger,
		evBuf:   cfg.EventBufferSize,
		wakeR:   r,
		wakeW:   w,
		wakeFd:  int(r.Fd()),
	}
	if err := poller.Add(c.wakeFd, api.Read); err != nil {
		r.Close()
		w.Close()
		return nil, fmt.Errorf("ioctx: register wake fd: %w", err)
	}
	return c, nil
}

// AddFd registers fd with the poller at the given interest mask.
func (c *IoContext) AddFd(fd int, mask api.Mask) error {
	c.log.Infof("ioctx: add_fd(%d, %s)", fd, mask)
	return c.poller.Add(fd, mask)
}

// ModifyFd changes fd's interest mask.
func (c *IoContext) ModifyFd(fd int, mask api.Mask) error {
	c.log.Infof("ioctx: modify_fd(%d, %s)", fd, mask)
	return c.poller.Modify(fd, mask)
}

// RemoveFd deregisters fd and erases any pending Waiter for it. A pending
// task awaiting fd is thereby orphaned permanently — see spec.md §9's
// Open Question, resolved in SPEC_FULL.md as "orphan silently".
func (c *IoContext) RemoveFd(fd int) error {
	c.log.Infof("ioctx: remove_fd(%d)", fd)
	c.mu.Lock()
	delete(c.waiters, fd)
	c.mu.Unlock()
	return c.poller.Remove(fd)
}

// GetEvents returns the interest mask currently requested by the pending
// Waiter on fd, or 0 if none. Used by netio.Socket to OR-in a new
// interest without clobbering an existing one.
func (c *IoContext) GetEvents(fd int) api.Mask {
	c.mu.Lock()
	defer c.mu.Unlock()
	if w, ok := c.waiters[fd]; ok {
		return w.mask
	}
	return 0
}

// AwaitFd is the primitive suspension point: it suspends the calling task
// until fd reports readiness matching (or overlapping) mask, then returns
// the raw ready-events mask the poller observed.
//
// A pre-existing Waiter on fd is overwritten (logged as a warning) —
// spec.md's documented programming error, tolerated rather than treated
// as undefined behavior.
func (c *IoContext) AwaitFd(ctx *task.Context, fd int, mask api.Mask) (api.Mask, error) {
	var ready api.Mask
	var modifyErr error

	ctx.Suspend(func(resume func()) {
		c.mu.Lock()
		if old, exists := c.waiters[fd]; exists {
			c.log.Warnf("ioctx: await_fd(%d, %s) overwrites a pending waiter (mask=%s); the prior awaiter is never resumed", fd, mask, old.mask)
		}
		c.waiters[fd] = &waiter{
			mask: mask,
			resume: func(ev api.Mask) {
				ready = ev
				resume()
			},
		}
		c.mu.Unlock()

		if err := c.poller.Modify(fd, mask); err != nil {
			c.mu.Lock()
			delete(c.waiters, fd)
			c.mu.Unlock()
			modifyErr = err
			c.log.Errorf("ioctx: await_fd(%d, %s): modify failed: %v — caller registered fd with add_fd? suspension left unresumable", fd, mask, err)
			// Per spec.md §4.4/§7: suspension must not throw, and a
			// poller ctl failure here is a programming error (the
			// caller should have add_fd'd first). We deliberately do
			// not call resume(): the caller is left suspended, matching
			// the source's documented behavior, rather than silently
			// inventing a recovery path.
		}
	})
	if modifyErr != nil {
		return 0, rterr.Wrap(rterr.PollerError, fmt.Sprintf("ioctx.AwaitFd(fd=%d)", fd), modifyErr)
	}
	return ready, nil
}

// Spawn takes ownership of a top-level task.Task, injects exec as its
// executor, and starts its body on the task's own goroutine (see
// task.Spawn); the body does not run as a pool job. The task's result is
// only observable through its own Done()/Result(): a returned error, or a
// panic recovered as a CoroutineFailure, is stored there and is not
// logged.
func Spawn[T any](c *IoContext, t *task.Task[T]) {
	task.Spawn[T](c.exec, t)
}

// Run starts the WorkerPool (idempotent) and drives the event loop on the
// calling goroutine until Stop is called.
func (c *IoContext) Run() {
	c.exec.Run()
	c.running.Store(true)

	events := make([]reactor.ReadyEvent, c.evBuf)
	for c.running.Load() {
		n, err := c.poller.Wait(events, -1)
		if err != nil {
			if rterr.Is(err, rterr.Interrupted) {
				continue
			}
			c.log.Errorf("ioctx: poller wait: %v", err)
			continue
		}
		if n < 0 {
			continue
		}
		for i := 0; i < n; i++ {
			ev := events[i]
			if ev.Fd == c.wakeFd {
				c.drainWake()
				continue
			}
			c.dispatch(ev)
		}
	}
}

func (c *IoContext) dispatch(ev reactor.ReadyEvent) {
	c.mu.Lock()
	w, ok := c.waiters[ev.Fd]
	if ok {
		delete(c.waiters, ev.Fd)
	}
	c.mu.Unlock()
	if !ok {
		// Stale or racing removal (spec.md §4.4 race case): correct,
		// nothing to do.
		return
	}
	readyEv := ev
	wCopy := w
	if err := c.exec.Submit(func() { wCopy.resume(readyEv.Events) }); err != nil {
		c.log.Errorf("ioctx: submit resume for fd=%d failed: %v", ev.Fd, err)
	}
}

// drainWake consumes the byte Stop wrote to the wake pipe. It reads once:
// wakeR is in blocking mode (os.File.Fd switched it in New), so a second
// read on the emptied pipe would block the event loop.
func (c *IoContext) drainWake() {
	var buf [64]byte
	_, _ = c.wakeR.Read(buf[:])
}

// Stop clears running and unblocks the event loop via the internal wake
// fd, then stops the WorkerPool (draining it). The loop exits after the
// next Wait returns.
func (c *IoContext) Stop() {
	c.running.Store(false)
	_, _ = c.wakeW.Write([]byte{0})
	c.exec.Stop()
}

// Close releases the poller and the internal wake pipe. Call after Run
// has returned.
func (c *IoContext) Close() error {
	c.wakeR.Close()
	c.wakeW.Close()
	return c.poller.Close()
}
