// Package parallel runs independent analysis tasks on a bounded set of
// goroutines.
package parallel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

var (
	// ErrPoolClosed is returned by Submit after Close
	ErrPoolClosed = errors.New("worker pool is closed")
	// ErrTooManyWorkers is returned when a pool is sized above MaxWorkers
	ErrTooManyWorkers = errors.New("worker count exceeds maximum")
)

// MaxWorkers caps the goroutines in one pool
const MaxWorkers = 1024

// WorkerPool runs submitted tasks on a fixed number of goroutines
type WorkerPool struct {
	size  int
	tasks chan func()
	wg    sync.WaitGroup

	mu        sync.RWMutex // guards closed against a concurrent send
	closed    bool
	closeOnce sync.Once

	completed atomic.Int64
	onPanic   func(any)
}

// PoolOption configures a WorkerPool
type PoolOption func(*WorkerPool)

// WithPanicHandler receives values recovered from panicking tasks.
// Without a handler the panic is dropped and the worker keeps running.
func WithPanicHandler(fn func(any)) PoolOption {
	return func(wp *WorkerPool) {
		wp.onPanic = fn
	}
}

// NewWorkerPool starts a pool of workers goroutines. A count below one is
// raised to one.
func NewWorkerPool(workers int, opts ...PoolOption) (*WorkerPool, error) {
	if workers > MaxWorkers {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyWorkers, workers, MaxWorkers)
	}
	workers = max(workers, 1)

	wp := &WorkerPool{size: workers, tasks: make(chan func(), workers)}
	for _, opt := range opts {
		opt(wp)
	}

	wp.wg.Add(workers)
	for range workers {
		go func() {
			defer wp.wg.Done()
			for task := range wp.tasks {
				wp.run(task)
			}
		}()
	}
	return wp, nil
}

// Workers returns the number of worker goroutines
func (wp *WorkerPool) Workers() int {
	return wp.size
}

// Completed returns how many tasks have finished, panicked ones included
func (wp *WorkerPool) Completed() int64 {
	return wp.completed.Load()
}

func (wp *WorkerPool) run(task func()) {
	defer func() {
		wp.completed.Add(1)
		if r := recover(); r != nil && wp.onPanic != nil {
			wp.onPanic(r)
		}
	}()
	task()
}

// Submit queues a task, blocking while every worker is busy and the queue
// is full. It fails with ErrPoolClosed after Close, or with ctx.Err() when
// ctx ends before the task is queued.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return ErrPoolClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case wp.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
// It is safe to call more than once.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.tasks)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}
