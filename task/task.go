// File: task/task.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package task

import (
	"fmt"
	"sync"

	"github.com/momentics/reactorcore/api"
	"github.com/momentics/reactorcore/internal/xlog"
	"github.com/momentics/reactorcore/rterr"
)

// result is the tagged-variant result slot described in spec.md §9's
// design note on erased suspending-function machinery: Pending (the
// zero value, ok == false) | Value(T) | Failure(err).
type result[T any] struct {
	val T
	err error
}

// Body is the shape of a suspending function: it runs until it either
// returns a value, returns an error (propagated as a failure), or panics
// (caught and re-raised as a rterr.CoroutineFailure on the await side).
type Body[T any] func(ctx *Context) (T, error)

// Task is the Go realization of SuspendingTask[T]: a one-shot producer of
// a T, created in the suspended-at-start state, moved-only by convention
// (callers should treat a *Task as uniquely owned until it has been
// spawned or awaited, per spec.md's "moved-only (unique ownership of the
// frame)" — Go has no move semantics to enforce this, so it is a
// documented usage constraint, not a compiler-checked one).
type Task[T any] struct {
	mu    sync.Mutex
	state State

	executor Executor
	caller   func()
	started  bool

	res result[T]
	ok  bool // true once res holds a completed value/failure

	done chan struct{} // closed exactly once, at completion
	body Body[T]
	log  api.Logger
}

// Option mutates a Task at construction; currently only WithLogger.
type Option[T any] func(*Task[T])

// WithLogger injects a logging façade; defaults to a discarding logger,
// matching the pool/ioctx Config option style.
func WithLogger[T any](l api.Logger) Option[T] {
	return func(t *Task[T]) { t.log = l }
}

// New creates a Task in the SUSPENDED_AT_START state. It does not run
// until it is spawned (see ioctx.Spawn) or awaited from inside another
// running task (see Await).
func New[T any](body Body[T], opts ...Option[T]) *Task[T] {
	t := &Task[T]{
		state: SuspendedAtStart,
		done:  make(chan struct{}),
		body:  body,
		log:   xlog.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the task's current position in the state machine. Safe
// to call concurrently. A task whose body is blocked in Context.Suspend
// still reports Running: SuspendedAtAwait is declared but never entered.
func (t *Task[T]) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Done returns a channel closed exactly once, when the task reaches
// COMPLETED. Useful for an owner that is not itself a SuspendingTask
// (e.g. a top-level spawn or a test) to wait for the result without going
// through Await.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Result returns the stored value/failure. Only meaningful after Done()
// is closed; calling it earlier returns the zero value and a nil error,
// which is indistinguishable from "completed with the zero value and no
// error" — callers that haven't observed Done() closing must not call
// this.
func (t *Task[T]) Result() (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.res.val, t.res.err
}

// bind injects the executor this task will run on. Per spec.md §4.3, the
// executor handle must be non-null before the first resumption. Spawn
// (top-level) and Await (inherited from the awaiting task) both call
// bind; only the first call sets the executor, later calls leave it as is.
func (t *Task[T]) bind(ex Executor) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.executor == nil {
		t.executor = ex
	}
}

// ensureStarted launches the task's body exactly once. The executor must
// already be bound.
//
// The body runs on a dedicated goroutine rather than being submitted as a
// job to the bounded WorkerPool: a SuspendingTask's body calls Suspend and
// blocks the goroutine running it for an unbounded time (an fd readiness
// wait has no deadline), whereas spec.md §4.2 requires that submitting to
// the pool never itself suspend a worker. If task bodies ran as pool jobs,
// a pool of N workers could only ever have N tasks suspended at once —
// past that, every worker is parked inside some task's Suspend and none
// remain to dequeue the very resume closures (ioctx's dispatch, Await's
// caller handle) that would unblock them, deadlocking the whole reactor.
// The pool is reserved for what it was sized for: the short resume/
// dispatch closures submitted via Executor.Submit elsewhere in this
// package and in ioctx.
func (t *Task[T]) ensureStarted() {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return
	}
	t.started = true
	ex := t.executor
	t.mu.Unlock()

	if ex == nil {
		panic("task: ensureStarted called with a nil executor — a Task must be bound via Spawn or Await before it can run")
	}
	go t.run()
}

// run executes the task body to completion. It is always invoked from its
// own dedicated goroutine (spawned by ensureStarted), never from a pool
// worker and never directly by the event loop.
func (t *Task[T]) run() {
	t.mu.Lock()
	t.state = Running
	ex := t.executor
	t.mu.Unlock()

	ctx := &Context{executor: ex}

	val, err := t.runBody(ctx)

	t.mu.Lock()
	t.res = result[T]{val: val, err: err}
	t.ok = true
	t.state = Completed
	caller := t.caller
	t.mu.Unlock()

	close(t.done)

	// Completion rule: resume the caller handle, if set, exactly once;
	// if no caller is set, completion is a no-op.
	if caller != nil {
		if submitErr := ex.Submit(caller); submitErr != nil {
			// The executor is shutting down; the caller (itself a
			// suspended task on the same executor) will never resume.
			// This mirrors spec.md's acknowledged orphan hazard on
			// executor teardown — there is no recovery path, but the
			// condition must be observable rather than silent.
			t.log.Errorf("task: submit caller resumption failed, caller orphaned: %v", submitErr)
		}
	}
}

func (t *Task[T]) runBody(ctx *Context) (val T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = rterr.Wrap(rterr.CoroutineFailure, "task.run", fmt.Errorf("panic: %v", r))
		}
	}()
	return t.body(ctx)
}

// Await suspends the calling task (ctx must belong to the currently
// running task body) until inner completes, then returns inner's result.
// inner inherits ctx's executor if it does not already have one bound —
// the composition rule from spec.md §4.3.
func Await[T any](ctx *Context, inner *Task[T]) (T, error) {
	inner.bind(ctx.executor)

	inner.mu.Lock()
	if inner.ok {
		res := inner.res
		inner.mu.Unlock()
		return res.val, res.err
	}
	inner.mu.Unlock()

	ctx.Suspend(func(resume func()) {
		inner.mu.Lock()
		if inner.ok {
			inner.mu.Unlock()
			_ = ctx.executor.Submit(resume)
			return
		}
		inner.caller = resume
		inner.mu.Unlock()
		inner.ensureStarted()
	})

	inner.mu.Lock()
	defer inner.mu.Unlock()
	return inner.res.val, inner.res.err
}

// Spawn binds inner to ex and starts its body on a dedicated goroutine
// (see ensureStarted); the first resumption is not submitted to ex. It is
// used by ioctx.Spawn for top-level tasks: the caller handle is left
// nil (the result is observed via Done()/Result(), never via a
// resuming caller), and a failure is only ever surfaced through Result().
func Spawn[T any](ex Executor, inner *Task[T]) {
	inner.bind(ex)
	inner.ensureStarted()
}
