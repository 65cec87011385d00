package chain

import (
	"context"

	"github.com/ib-77/ropchain/pkg/rop"
	"github.com/ib-77/ropchain/pkg/rop/future"
	"github.com/ib-77/ropchain/pkg/rop/solo"
)

// Chain is an immutable fluent handle over either an immediate rop.Result[T]
// or a pending *future.Future[T]. Operations never mutate a chain; each one
// returns a freshly built Chain.
type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T]
	fut *future.Future[T]
}

// Start creates a chain from an existing result.
func Start[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return immediateChain(ctx, r)
}

// FromValue creates a successful chain wrapping v exactly as given.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Success(v))
}

// FromFunc invokes fn eagerly: a value becomes an immediate success, an error
// or panic an immediate failure.
func FromFunc[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Chain[T] {
	return Start(ctx, tryCall(ctx, fn))
}

// FromFuture creates a pending chain over f.
func FromFuture[T any](ctx context.Context, f *future.Future[T]) Chain[T] {
	return pendingChain(ctx, f)
}

// Go runs fn in its own goroutine and returns a pending chain; fn's error or
// panic surfaces later through Unwrap/IsOk, not here.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Chain[T] {
	return FromFuture(ctx, future.Go(func() rop.Result[T] {
		return tryCall(ctx, fn)
	}))
}

// Empty creates a successful chain holding no meaningful value.
func Empty(ctx context.Context) Chain[struct{}] {
	return FromValue(ctx, struct{}{})
}

func tryCall[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (out rop.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = rop.Fail[T](rop.Normalize(r))
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		return rop.Fail[T](err)
	}
	return rop.Success(v)
}

// Map transforms the successful value; a prior failure short-circuits and a
// panic in f fails the chain.
func (c Chain[T]) Map(f func(ctx context.Context, t T) T) Chain[T] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[T] {
		return immediateChain(ctx, solo.Map(ctx, in, f))
	})
}

// Then flat-maps f over the value: the chain f returns is folded in as is,
// pending or not.
func (c Chain[T]) Then(f func(ctx context.Context, t T) Chain[T]) Chain[T] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[T] {
		if in.IsFailure() {
			return immediateChain(ctx, in)
		}
		return f(ctx, in.Value())
	})
}

// To switches to the result f returns.
func (c Chain[T]) To(f func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[T] {
		return immediateChain(ctx, solo.Switch(ctx, in, f))
	})
}

// Try calls a (T, error) function, converting the error to failure.
func (c Chain[T]) Try(f func(ctx context.Context, t T) (T, error)) Chain[T] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[T] {
		return immediateChain(ctx, solo.Try(ctx, in, f))
	})
}

// Effect runs f for its side effect on success. The original value is kept
// whatever f does, but f's error or panic fails the chain. On a prior
// failure f is never invoked.
func (c Chain[T]) Effect(f func(ctx context.Context, t T) error) Chain[T] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[T] {
		return immediateChain(ctx, solo.FailOnError(ctx, in, f))
	})
}

// Watch hands the full result snapshot to consumer on both outcomes, purely
// for observation: panics inside consumer are discarded and the chain state
// is never altered.
func (c Chain[T]) Watch(consumer func(ctx context.Context, r rop.Result[T])) Chain[T] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[T] {
		return immediateChain(ctx, solo.Observe(ctx, in, consumer))
	})
}

// Catch recovers a failed chain through handler; on success the value passes
// through and handler is never invoked. A handler error or panic becomes the
// new failure, it is not retried.
func (c Chain[T]) Catch(handler func(ctx context.Context, err error) (T, error)) Chain[T] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[T] {
		return immediateChain(ctx, solo.Recover(ctx, in, handler))
	})
}

// Await blocks until the chain settles and returns the final result.
func (c Chain[T]) Await() rop.Result[T] {
	return c.await()
}

// IsOk reports whether the chain settled successfully. It never errors; for
// a pending chain it waits for resolution.
func (c Chain[T]) IsOk() bool {
	return c.await().IsSuccess()
}

// Unwrap returns the success value or the failure's error. This is the only
// accessor that surfaces the error.
func (c Chain[T]) Unwrap() (T, error) {
	r := c.await()
	if r.IsFailure() {
		var zero T
		return zero, r.Err()
	}
	return r.Value(), nil
}

// OrElse returns the value, or fallback when the chain failed. It never
// errors.
func (c Chain[T]) OrElse(fallback T) T {
	r := c.await()
	if r.IsFailure() {
		return fallback
	}
	return r.Value()
}

// Settled reports whether the result is already available without blocking.
func (c Chain[T]) Settled() bool {
	if c.fut == nil {
		return true
	}
	_, ok := c.fut.TryResult()
	return ok
}

// Future exposes the whole chain as a single-resolution future.
func (c Chain[T]) Future() *future.Future[T] {
	if c.fut != nil {
		return c.fut
	}
	return future.Of(c.res)
}

// Context returns the context the chain was started with.
func (c Chain[T]) Context() context.Context {
	return c.ctx
}
