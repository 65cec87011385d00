package chain

import (
	"context"

	"github.com/ib-77/ropchain/pkg/rop"
	"github.com/ib-77/ropchain/pkg/rop/future"
	"github.com/ib-77/ropchain/pkg/rop/solo"
)

// The functions here mirror the Chain methods for steps that change the
// value type, which Go methods cannot express.

// Map transforms the successful value to a new type.
func Map[T, U any](c Chain[T], f func(ctx context.Context, t T) U) Chain[U] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[U] {
		return immediateChain(ctx, solo.Map(ctx, in, f))
	})
}

// Then flat-maps a chain-returning function across the type change.
func Then[T, U any](c Chain[T], f func(ctx context.Context, t T) Chain[U]) Chain[U] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[U] {
		if in.IsFailure() {
			return immediateChain(ctx, rop.FailFrom[T, U](in))
		}
		return f(ctx, in.Value())
	})
}

// To switches to the result f returns.
func To[T, U any](c Chain[T], f func(ctx context.Context, t T) rop.Result[U]) Chain[U] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[U] {
		return immediateChain(ctx, solo.Switch(ctx, in, f))
	})
}

// Try calls a (U, error) function, converting the error to failure.
func Try[T, U any](c Chain[T], f func(ctx context.Context, t T) (U, error)) Chain[U] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[U] {
		return immediateChain(ctx, solo.Try(ctx, in, f))
	})
}

// EffectAsync runs a future-returning side effect on success. The chain waits
// for the effect to settle before resolving but still yields the original
// value; a rejected effect fails the chain like an immediate error would.
func EffectAsync[T, U any](c Chain[T], f func(ctx context.Context, t T) *future.Future[U]) Chain[T] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[T] {
		if in.IsFailure() {
			return immediateChain(ctx, in)
		}

		ef := f(ctx, in.Value())
		if ef == nil {
			return immediateChain(ctx, in)
		}

		return pendingChain(ctx, future.Go(func() rop.Result[T] {
			if res := ef.Await(); res.IsFailure() {
				return rop.FailFrom[U, T](res)
			}
			return in
		}))
	})
}

// Recover folds a chain-returning recovery handler over a failure, so the
// recovery value may itself be pending.
func Recover[T any](c Chain[T], handler func(ctx context.Context, err error) Chain[T]) Chain[T] {
	return update(c, func(ctx context.Context, in rop.Result[T]) Chain[T] {
		if in.IsSuccess() {
			return immediateChain(ctx, in)
		}
		return handler(ctx, in.Err())
	})
}

// Finally collapses the chain into a final value, waiting for a pending
// chain to settle first.
func Finally[T, U any](c Chain[T],
	onSuccess func(ctx context.Context, t T) U,
	onFailure func(ctx context.Context, err error) U) U {
	return solo.Finally(c.ctx, c.await(), onSuccess, onFailure)
}
