package pipe

import (
	"context"

	"github.com/ib-77/ropchain/pkg/rop/chain"
)

// Steps folds same-typed steps into one function by seeding a chain with the
// input and reducing with Try. The first failing step short-circuits the
// rest.
func Steps[T any](steps ...func(ctx context.Context, in T) (T, error)) func(ctx context.Context, in T) (T, error) {
	return func(ctx context.Context, in T) (T, error) {
		c := chain.FromValue(ctx, in)
		for _, step := range steps {
			c = c.Try(step)
		}
		return c.Unwrap()
	}
}

// Two composes two steps across a type change.
func Two[A, B, C any](first func(ctx context.Context, in A) (B, error),
	second func(ctx context.Context, in B) (C, error)) func(ctx context.Context, in A) (C, error) {

	return func(ctx context.Context, in A) (C, error) {
		return chain.Try(chain.Try(chain.FromValue(ctx, in), first), second).Unwrap()
	}
}

// Three composes three steps across type changes.
func Three[A, B, C, D any](first func(ctx context.Context, in A) (B, error),
	second func(ctx context.Context, in B) (C, error),
	third func(ctx context.Context, in C) (D, error)) func(ctx context.Context, in A) (D, error) {

	return func(ctx context.Context, in A) (D, error) {
		return chain.Try(chain.Try(chain.Try(chain.FromValue(ctx, in), first), second), third).Unwrap()
	}
}
