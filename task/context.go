// File: task/context.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package task

import "sync"

// Executor is the minimal contract a SuspendingTask needs from a worker
// pool: submit a closure for execution. *pool.WorkerPool satisfies this
// by duck typing; task does not import pool, to keep the suspending-
// function machinery independent of any one executor implementation.
type Executor interface {
	Submit(job func()) error
}

// Context is threaded through a task body. It carries the executor the
// task was spawned/awaited onto (composition rule: when task A awaits
// task B, B inherits A's executor — see Await) and exposes Suspend, the
// single low-level suspension primitive every higher-level awaiter (task-
// on-task, fd-readiness) is built from.
type Context struct {
	executor Executor
}

// Executor returns the executor this task's body is running under.
func (c *Context) Executor() Executor { return c.executor }

// Suspend blocks the calling goroutine — the task's own dedicated
// goroutine (see Task.ensureStarted), never a bounded WorkerPool worker —
// until resume is invoked. register is called synchronously, before
// blocking, and must arrange — directly or indirectly — for resume to be
// invoked exactly once, normally by submitting a closure to c.Executor()
// so the continuation is dispatched onto a worker rather than run inline
// on whatever goroutine discovered readiness (spec.md §4.4: "Resume is
// never performed on the event-loop thread"). That submitted closure is
// expected to be short (it only unblocks this call); the work it
// unblocks continues running on the task's own goroutine, not the
// worker that ran the closure.
//
// register is given a resume func that is safe to call more than once;
// only the first call has an effect, matching "a task is resumed at most
// once per suspension".
func (c *Context) Suspend(register func(resume func())) {
	done := make(chan struct{})
	var once sync.Once
	register(func() {
		once.Do(func() { close(done) })
	})
	<-done
}
