package retry

import (
	"context"
	"time"
)

// Wrap turns a fallible step into one that retries up to attempts times,
// sleeping delay between tries. The wrapped step still has the plain
// (U, error) shape, so it plugs into Chain.Try unchanged: the chain only
// ever sees the final value or the last error. A done context stops further
// attempts.
func Wrap[T, U any](attempts int, delay time.Duration,
	fn func(ctx context.Context, in T) (U, error)) func(ctx context.Context, in T) (U, error) {

	if attempts < 1 {
		attempts = 1
	}

	return func(ctx context.Context, in T) (U, error) {
		var (
			out     U
			lastErr error
		)

		for i := 0; i < attempts; i++ {
			out, lastErr = fn(ctx, in)
			if lastErr == nil {
				return out, nil
			}

			if i < attempts-1 {
				if ctx.Err() != nil {
					break
				}
				time.Sleep(delay)
			}
		}

		var zero U
		return zero, lastErr
	}
}

// WrapEffect is Wrap for effect-only steps, suitable for Chain.Effect.
func WrapEffect[T any](attempts int, delay time.Duration,
	fn func(ctx context.Context, in T) error) func(ctx context.Context, in T) error {

	wrapped := Wrap(attempts, delay, func(ctx context.Context, in T) (struct{}, error) {
		return struct{}{}, fn(ctx, in)
	})

	return func(ctx context.Context, in T) error {
		_, err := wrapped(ctx, in)
		return err
	}
}
