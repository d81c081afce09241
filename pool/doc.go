// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package pool implements WorkerPool: a fixed-size pool of goroutines
// consuming a single FIFO queue of opaque closures. It provides the
// parallelism IoContext dispatches task resumptions onto; task bodies
// never block the event-loop thread because every resumption is a
// Submit, never an inline call.
package pool
