// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package strand implements a FIFO serializer over a pool.WorkerPool: at
// most one of a Strand's queued closures runs at a time, in submission
// order, even though the pool itself runs many jobs concurrently.
// Grounded on core/concurrency/lock_free_queue.go and ring.go's MPMC
// sequence-numbered cell design (adapted here as the strand's backlog)
// and on the teacher's EventLoop single-flight drain shape.
package strand
