package async

import (
	"context"
	"fmt"
)

// Future represents the result of an asynchronous computation.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Go runs fn in its own goroutine and returns a Future for its result.
// A panic inside fn completes the future with ErrPanicked instead of crashing the process.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.result = zero
				f.err = fmt.Errorf("%w: %v", ErrPanicked, r)
			}
		}()

		// Pre-canceled context never starts the work
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Resolved returns an already completed future holding v.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{result: v, done: make(chan struct{})}
	close(f.done)
	return f
}

// Rejected returns an already completed future holding err.
func Rejected[T any](err error) *Future[T] {
	f := &Future[T]{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Await blocks until the computation completes.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext blocks until the computation completes or ctx is done,
// whichever happens first. The computation itself is not interrupted.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// IsComplete reports whether the computation has finished without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAll awaits futures in order and stops at the first error.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
