// Package async provides a cancellable task that produces a single value.
package async

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrCancelled is returned by a task that was cancelled before its function
// produced a result.
var ErrCancelled = errors.New("task cancelled")

// ErrNotReady is returned by Result when the task has not resolved yet.
var ErrNotReady = errors.New("task not resolved")

// Task runs a function once in the background and holds its result. The
// result is set exactly once: either by the function returning or by Cancel,
// whichever happens first. A value produced after cancellation is dropped.
type Task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	value     T
	err       error
	cancelled bool
}

// Go starts fn on its own goroutine. fn receives a context that is cancelled
// when the task is cancelled, when ctx is cancelled, or once fn has returned.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		v, err := fn(ctx)
		t.resolve(v, err, false)
	}()
	return t
}

// Done is closed once the result is available.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Result returns the value and error of the task. It must only be called
// after Done is closed; before that it returns ErrNotReady.
func (t *Task[T]) Result() (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	default:
		var zero T
		return zero, ErrNotReady
	}
}

// Wait blocks until the task resolves or ctx is done. Giving up on the wait
// does not cancel the task.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel stops the task. If the task already resolved Cancel does nothing.
// It is safe to call more than once.
func (t *Task[T]) Cancel() {
	var zero T
	t.resolve(zero, fmt.Errorf("%w: %w", ErrCancelled, context.Canceled), true)
}

// Cancelled reports whether the task was resolved by Cancel.
func (t *Task[T]) Cancelled() bool {
	select {
	case <-t.done:
		return t.cancelled
	default:
		return false
	}
}

func (t *Task[T]) resolve(v T, err error, cancelled bool) {
	t.once.Do(func() {
		t.value, t.err, t.cancelled = v, err, cancelled
		close(t.done)
	})
	t.cancel()
}
