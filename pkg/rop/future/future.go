package future

import (
	"context"
	"sync"
	"time"

	"github.com/ib-77/ropchain/pkg/rop"
)

// Future is a single-resolution handle over an eventual rop.Result[T].
// One producer settles it; any number of readers await it.
type Future[T any] struct {
	done chan struct{}
	res  rop.Result[T]
	once sync.Once
}

func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Of returns an already settled future.
func Of[T any](r rop.Result[T]) *Future[T] {
	f := New[T]()
	f.Settle(r)
	return f
}

// Go runs fn in its own goroutine and settles the returned future with
// fn's result.
func Go[T any](fn func() rop.Result[T]) *Future[T] {
	f := New[T]()
	go func() {
		f.Settle(fn())
	}()
	return f
}

// Settle resolves the future. Only the first call wins; Settle reports
// whether this call was the one that resolved it.
func (f *Future[T]) Settle(r rop.Result[T]) bool {
	settled := false
	f.once.Do(func() {
		f.res = r
		settled = true
		close(f.done)
	})
	return settled
}

// Await blocks until the future settles and returns its result.
func (f *Future[T]) Await() rop.Result[T] {
	<-f.done
	return f.res
}

// AwaitWithTimeout waits up to d; on timeout it returns a failure without
// settling the future.
func (f *Future[T]) AwaitWithTimeout(d time.Duration) rop.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-time.After(d):
		return rop.Fail[T](context.DeadlineExceeded)
	}
}

// Done exposes the settlement signal for select loops.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// TryResult is a non-blocking probe: it reports whether the future has
// settled and, if so, returns the result.
func (f *Future[T]) TryResult() (rop.Result[T], bool) {
	select {
	case <-f.done:
		return f.res, true
	default:
		var zero rop.Result[T]
		return zero, false
	}
}
