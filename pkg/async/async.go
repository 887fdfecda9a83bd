package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the eventual outcome of an operation started with Go.
// A Future completes exactly once; after completion its result and error
// never change.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}

	mu        sync.Mutex
	completed bool
	callbacks []func(U, error)
}

// Await blocks until the operation completes and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks until the operation completes or the timeout
// elapses. On timeout the zero value and ErrTimeout are returned; the
// underlying operation keeps running and may still be observed later via
// Await or Then.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the operation has completed, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Then registers a completion callback and returns the Future for chaining.
// Callbacks registered before completion run in the operation's goroutine,
// in registration order. If the Future is already complete, the callback
// runs synchronously in the caller's goroutine. Nil callbacks are ignored.
func (f *Future[U]) Then(cb func(U, error)) *Future[U] {
	if cb == nil {
		return f
	}

	f.mu.Lock()
	if f.completed {
		f.mu.Unlock()
		cb(f.result, f.err)
		return f
	}
	f.callbacks = append(f.callbacks, cb)
	f.mu.Unlock()

	return f
}

// complete stores the outcome, wakes waiters, and fires registered callbacks.
func (f *Future[U]) complete(result U, err error) {
	f.mu.Lock()
	f.result = result
	f.err = err
	f.completed = true
	callbacks := f.callbacks
	f.callbacks = nil
	f.mu.Unlock()

	close(f.done)

	for _, cb := range callbacks {
		cb(result, err)
	}
}

// Go starts fn in its own goroutine and returns a Future for its outcome.
// If ctx is already cancelled the Future completes immediately with the
// context error and fn is never invoked.
func Go[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		var zero U

		select {
		case <-ctx.Done():
			f.complete(zero, ctx.Err())
			return
		default:
		}

		res, err := fn(ctx, param)
		f.complete(res, err)
	}()

	return f
}

// WaitAll waits for every future to complete and returns their results in
// order, along with the first error encountered. Later futures are still
// awaited so no goroutine is left unobserved.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	var firstErr error
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}
