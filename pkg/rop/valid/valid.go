package valid

import (
	"context"
	"errors"

	"github.com/ib-77/ropchain/pkg/rop"
)

// Check turns a predicate into a (T, error) step for Chain.Try: the value
// passes through when valid, otherwise the message becomes the failure.
func Check[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) func(ctx context.Context, in T) (T, error) {
	return func(ctx context.Context, in T) (T, error) {
		if valid, errMsg := validate(ctx, in); !valid {
			var zero T
			return zero, errors.New(errMsg)
		}
		return in, nil
	}
}

// All folds several steps into one. With breakOnError set the first failure
// wins; otherwise every step runs and the errors are joined in step order.
func All[T any](breakOnError bool,
	steps ...func(ctx context.Context, in T) (T, error)) func(ctx context.Context, in T) (T, error) {

	return func(ctx context.Context, in T) (T, error) {
		var errs []error

		current := in
		for _, step := range steps {
			out, err := step(ctx, current)
			if err != nil {
				if breakOnError {
					return in, err
				}
				errs = append(errs, rop.GetErrors(err)...)
				continue
			}
			current = out
		}

		if len(errs) > 0 {
			return in, errors.Join(errs...)
		}
		return current, nil
	}
}

// NotZero fails when the value equals its type's zero value.
func NotZero[T comparable](errMsg string) func(ctx context.Context, in T) (T, error) {
	return Check(func(ctx context.Context, in T) (bool, string) {
		var zero T
		return in != zero, errMsg
	})
}
