// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package task implements SuspendingTask[T]: a value type representing
// an in-flight computation that yields a single terminal result of type
// T, or a failure. Go has no first-class suspending functions, so the
// frame here is a goroutine blocked on a one-shot channel rather than a
// stackless coroutine; see the package comment on Context.Suspend for the
// exact mapping onto spec.md's state machine.
package task
