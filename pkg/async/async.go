package async

import (
	"context"
	"time"
)

// Future holds the eventual result of a computation started with Run.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Run executes fn in its own goroutine and returns a Future for its result.
// A pre-cancelled context fails fast without invoking fn.
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the computation finishes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitTimeout waits for completion up to the given duration. The underlying
// goroutine is not interrupted on timeout; cancel its context for that.
func (f *Future[T]) AwaitTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// Done reports whether the computation has finished without blocking.
func (f *Future[T]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
