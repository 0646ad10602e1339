package parallel

import (
	"context"
	"fmt"
)

// Task outcome labels reported to a TaskObserver
const (
	TaskOK       = "ok"
	TaskError    = "error"
	TaskPanicked = "panic"
)

// PanicError wraps a value recovered from a panicking task
type PanicError struct {
	Index int
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task %d panicked: %v", e.Index, e.Value)
}

// Option configures ForEach
type Option func(*forEachConfig)

type forEachConfig struct {
	observe func(status string)
}

// WithTaskObserver is called once per finished task with TaskOK, TaskError
// or TaskPanicked. It may be called from several goroutines at once.
func WithTaskObserver(fn func(status string)) Option {
	return func(c *forEachConfig) {
		c.observe = fn
	}
}

// ForEach calls fn for every index in [0, n) on a pool of workers and
// returns the error of the lowest failing index. Each fn writes only to
// its own slot, so callers collect results in index-addressed slices.
// When ctx ends, indices not yet queued are skipped and ctx.Err() is
// returned unless a queued task failed at a lower index.
func ForEach(ctx context.Context, workers, n int, fn func(i int) error, opts ...Option) error {
	if n <= 0 {
		return nil
	}
	cfg := forEachConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if workers > n {
		workers = n
	}

	pool, err := NewWorkerPool(workers)
	if err != nil {
		return err
	}

	errs := make([]error, n)
	var submitErr error
	for i := 0; i < n; i++ {
		err := pool.Submit(ctx, func() {
			errs[i] = call(i, fn)
			if cfg.observe != nil {
				cfg.observe(status(errs[i]))
			}
		})
		if err != nil {
			submitErr = err
			break
		}
	}
	pool.Close()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return submitErr
}

func call(i int, fn func(int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Index: i, Value: r}
		}
	}()
	return fn(i)
}

func status(err error) string {
	switch err.(type) {
	case nil:
		return TaskOK
	case *PanicError:
		return TaskPanicked
	default:
		return TaskError
	}
}
