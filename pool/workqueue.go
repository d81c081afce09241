// File: pool/workqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// workQueue is the FIFO of pending Job closures: one mutex, one condition
// variable, backed by a ring-buffer queue instead of a growable slice so
// sustained submission never pays append's amortized copy cost.

package pool

import (
	"sync"

	"github.com/eapache/queue"
)

// Job is an opaque unit of work submitted to a WorkerPool. It is a type
// alias (not a defined type) so *WorkerPool satisfies any interface whose
// Submit method is declared as func(func()) error by structural typing —
// notably task.Executor, without task needing to import pool.
type Job = func()

type workQueue struct {
	mu     sync.Mutex
	notEmp *sync.Cond
	q      *queue.Queue
	closed bool
}

func newWorkQueue() *workQueue {
	wq := &workQueue{q: queue.New()}
	wq.notEmp = sync.NewCond(&wq.mu)
	return wq
}

// push enqueues job and wakes one waiting worker. Returns false if the
// queue has been closed.
func (wq *workQueue) push(job Job) bool {
	wq.mu.Lock()
	defer wq.mu.Unlock()
	if wq.closed {
		return false
	}
	wq.q.Add(job)
	wq.notEmp.Signal()
	return true
}

// pop blocks until a job is available or the queue is closed and drained,
// in which case ok is false.
func (wq *workQueue) pop() (job Job, ok bool) {
	wq.mu.Lock()
	defer wq.mu.Unlock()
	for wq.q.Length() == 0 {
		if wq.closed {
			return nil, false
		}
		wq.notEmp.Wait()
	}
	job = wq.q.Remove().(Job)
	return job, true
}

// close marks the queue closed and wakes every blocked worker; workers
// keep draining remaining jobs via pop until the queue is empty.
func (wq *workQueue) close() {
	wq.mu.Lock()
	wq.closed = true
	wq.mu.Unlock()
	wq.notEmp.Broadcast()
}

// closeHard marks the queue closed and discards anything still queued;
// a worker currently mid-Job finishes it, then pop reports empty
// immediately rather than draining the backlog.
func (wq *workQueue) closeHard() {
	wq.mu.Lock()
	wq.closed = true
	for wq.q.Length() > 0 {
		wq.q.Remove()
	}
	wq.mu.Unlock()
	wq.notEmp.Broadcast()
}

func (wq *workQueue) len() int {
	wq.mu.Lock()
	defer wq.mu.Unlock()
	return wq.q.Length()
}
