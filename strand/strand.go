// File: strand/strand.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package strand

import (
	"sync/atomic"

	"github.com/momentics/reactorcore/pool"
)

// Strand serializes execution of posted closures over a shared
// pool.WorkerPool: at most one closure is ever running at a time, in the
// order Post was called, even though other strands or direct pool
// submissions may run concurrently on the same pool.
type Strand struct {
	exec    *pool.WorkerPool
	backlog *backlog
	active  atomic.Bool
}

// New creates a Strand that dispatches through exec.
func New(exec *pool.WorkerPool) *Strand {
	return &Strand{exec: exec, backlog: newBacklog(16)}
}

// Post enqueues job. If no drain is currently in flight, Post kicks one
// off by submitting the strand's drain loop to the pool; otherwise job
// simply joins the backlog behind whatever the in-flight drain is already
// working through.
func (s *Strand) Post(job func()) error {
	s.backlog.push(job)
	if s.active.CompareAndSwap(false, true) {
		if err := s.exec.Submit(s.drain); err != nil {
			s.active.Store(false)
			return err
		}
	}
	return nil
}

// drain runs on a pool worker goroutine and executes queued jobs one at a
// time until the backlog is empty, then releases the active flag. A Post
// racing the release re-acquires it and resubmits, so no job is ever
// silently left behind.
func (s *Strand) drain() {
	for {
		job, ok := s.backlog.pop()
		if !ok {
			s.active.Store(false)
			// A Post may have pushed a job between pop's miss and the
			// flag release above and seen the flag still held. If the
			// backlog is no longer empty, take the flag back and keep
			// draining; if a racing Post already took it, that Post's
			// drain owns the backlog and this one exits.
			b := s.backlog
			b.mu.Lock()
			empty := atomic.LoadUint64(&b.r.head) == atomic.LoadUint64(&b.r.tail)
			b.mu.Unlock()
			if empty || !s.active.CompareAndSwap(false, true) {
				return
			}
			continue
		}
		s.safeRun(job)
	}
}

func (s *Strand) safeRun(job func()) {
	defer func() { recover() }()
	job()
}
