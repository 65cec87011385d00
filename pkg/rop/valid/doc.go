// Package valid builds validation steps for chains: plain (T, error)
// functions suitable for Chain.Try. Check adapts a predicate, All folds
// several steps with optional error accumulation, NotZero rejects zero
// values.
package valid
