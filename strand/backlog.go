// File: strand/backlog.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// backlog is an MPMC ring buffer of pending closures, adapted from the
// teacher's lock_free_queue.go/ring.go sequence-numbered cell design.
// Unlike the teacher's fixed-capacity ring, a strand's backlog must never
// reject a Post — so a full ring is grown by swapping in a larger one
// under a short-lived mutex instead of returning false.

package strand

import (
	"sync"
	"sync/atomic"
)

const cacheLinePad = 64

type cell struct {
	sequence atomic.Uint64
	_        [cacheLinePad]byte
	job      func()
}

type ring struct {
	head uint64
	_    [cacheLinePad]byte
	tail uint64
	_    [cacheLinePad]byte
	mask uint64
	cells []cell
}

func newRing(capacity int) *ring {
	size := 2
	for size < capacity {
		size <<= 1
	}
	r := &ring{mask: uint64(size - 1), cells: make([]cell, size)}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

func (r *ring) enqueue(job func()) bool {
	for {
		tail := atomic.LoadUint64(&r.tail)
		idx := tail & r.mask
		c := &r.cells[idx]
		seq := c.sequence.Load()
		diff := int64(seq) - int64(tail)
		if diff == 0 {
			if atomic.CompareAndSwapUint64(&r.tail, tail, tail+1) {
				c.job = job
				c.sequence.Store(tail + 1)
				return true
			}
		} else if diff < 0 {
			return false
		}
	}
}

func (r *ring) dequeue() (func(), bool) {
	for {
		head := atomic.LoadUint64(&r.head)
		idx := head & r.mask
		c := &r.cells[idx]
		seq := c.sequence.Load()
		diff := int64(seq) - int64(head+1)
		if diff == 0 {
			if atomic.CompareAndSwapUint64(&r.head, head, head+1) {
				job := c.job
				c.job = nil
				c.sequence.Store(head + r.mask + 1)
				return job, true
			}
		} else if diff < 0 {
			return nil, false
		}
	}
}

// backlog wraps a *ring behind a mutex, growing it (doubling capacity)
// whenever a Post finds the current ring full.
type backlog struct {
	mu sync.Mutex
	r  *ring
}

func newBacklog(initialCapacity int) *backlog {
	return &backlog{r: newRing(initialCapacity)}
}

func (b *backlog) push(job func()) {
	b.mu.Lock()
	for !b.r.enqueue(job) {
		grown := newRing(len(b.r.cells) * 2)
		for {
			j, ok := b.r.dequeue()
			if !ok {
				break
			}
			grown.enqueue(j)
		}
		b.r = grown
	}
	b.mu.Unlock()
}

func (b *backlog) pop() (func(), bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.r.dequeue()
}
