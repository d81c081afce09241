// File: pool/workerpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/reactorcore/api"
	"github.com/momentics/reactorcore/internal/xlog"
)

// Config configures a WorkerPool at construction.
type Config struct {
	// Workers is the fixed number of goroutines draining the queue.
	// Defaults to 1 when not set; a value <= 0 is treated as 1.
	Workers int
	Logger  api.Logger
}

// Option mutates a Config; used by WithWorkers/WithLogger below.
type Option func(*Config)

// WithWorkers sets the fixed worker count.
func WithWorkers(n int) Option { return func(c *Config) { c.Workers = n } }

// WithLogger injects a logging façade; defaults to a discarding logger.
func WithLogger(l api.Logger) Option { return func(c *Config) { c.Logger = l } }

// WorkerPool is a fixed-size pool of goroutines consuming a single FIFO
// queue of Job closures. Submit never blocks; Run is idempotent; Stop
// drains the queue before returning; StopHard abandons queued work.
type WorkerPool struct {
	cfg     Config
	queue   *workQueue
	wg      sync.WaitGroup
	running atomic.Bool
	log     api.Logger
}

// New constructs a WorkerPool. Run must be called before Submit has any
// effect; jobs submitted before Run are simply queued.
func New(opts ...Option) *WorkerPool {
	cfg := Config{Workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = xlog.Discard()
	}
	return &WorkerPool{cfg: cfg, queue: newWorkQueue(), log: cfg.Logger}
}

// Submit enqueues job. Safe from any goroutine, including from inside a
// running Job (reentrant submission is routine — a task resuming its
// caller submits from a worker goroutine).
func (p *WorkerPool) Submit(job Job) error {
	if !p.queue.push(job) {
		return ErrClosed
	}
	return nil
}

// Run idempotently starts the configured number of worker goroutines. A
// second call while already running logs and returns.
func (p *WorkerPool) Run() {
	if !p.running.CompareAndSwap(false, true) {
		p.log.Infof("pool: Run called while already running")
		return
	}
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.workerLoop(i)
	}
}

func (p *WorkerPool) workerLoop(id int) {
	defer p.wg.Done()
	for {
		job, ok := p.queue.pop()
		if !ok {
			return
		}
		p.safeRun(id, job)
	}
}

func (p *WorkerPool) safeRun(id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Errorf("pool: worker %d job panicked: %v", id, r)
		}
	}()
	job()
}

// Stop signals drain and blocks until every worker has exited (which only
// happens once the queue is empty). After Stop returns, the queue and
// thread set are empty.
func (p *WorkerPool) Stop() {
	p.queue.close()
	p.wg.Wait()
	p.running.Store(false)
}

// StopHard signals drain, discards any jobs still queued, and returns
// immediately without waiting for workers to exit; used only for
// catastrophic shutdown paths where blocking on Stop is unacceptable.
func (p *WorkerPool) StopHard() {
	p.queue.closeHard()
	p.running.Store(false)
}

// Pending returns the approximate number of jobs waiting in the queue.
func (p *WorkerPool) Pending() int { return p.queue.len() }
