// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package ioctx implements IoContext, the reactor proper: it binds a
// reactor.EventPoller and a pool.WorkerPool into a working coroutine-
// over-readiness reactor. It owns the WaiterTable (fd -> pending Waiter)
// and offers AwaitFd as the primitive suspension point, Spawn to launch a
// top-level task.Task, and Run to drive the event loop.
package ioctx
