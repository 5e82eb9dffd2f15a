// Package parallel splits per-row pixel work across a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs submitted work on a fixed number of goroutines.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held shared while work is queued and exclusively by Close, so
	// nothing is queued once the workers start exiting.
	mu sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case work := <-p.queue:
			work()
		}
	}
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

// ExecuteAll runs every item and waits for all of them. After Close the
// items run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for _, fn := range work {
		p.queue <- func() {
			defer wg.Done()
			fn()
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Close stops the workers. It is safe to call more than once.
// Work queued before Close but not yet picked up runs on the caller.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()

	for {
		select {
		case work := <-p.queue:
			work()
		default:
			return
		}
	}
}

// Rows splits [0, height) into at most bands contiguous ranges of at least
// minRows rows and calls fn for each range on the pool. With a nil pool, a
// single band or a short height, fn runs once on the calling goroutine.
func Rows(p *WorkerPool, height, bands, minRows int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	minRows = max(minRows, 1)
	bands = min(bands, height/minRows)
	if p == nil || bands <= 1 {
		fn(0, height)
		return
	}

	work := make([]func(), 0, bands)
	for i := range bands {
		y0 := height * i / bands
		y1 := height * (i + 1) / bands
		work = append(work, func() { fn(y0, y1) })
	}
	p.ExecuteAll(work)
}
